package tgbind_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind"
	"github.com/prilive-com/tgbind/internal/testutil"
	"github.com/prilive-com/tgbind/sender"
	"github.com/prilive-com/tgbind/tg"
)

func testOptions(api *testutil.MockAPI) []sender.Option {
	return []sender.Option{
		sender.WithBaseURL(api.BaseURL()),
		sender.WithRetries(0),
		sender.WithLogger(testutil.QuietLogger()),
		sender.WithCircuitBreakerSettings(testutil.BreakerNeverTrip()),
	}
}

func TestNew_InvalidToken(t *testing.T) {
	_, err := tgbind.New("not-a-token")
	assert.ErrorIs(t, err, tg.ErrInvalidToken)
}

func TestBot_Close_Idempotent(t *testing.T) {
	bot, err := tgbind.New(testutil.TestToken)
	require.NoError(t, err)

	assert.NoError(t, bot.Close())
	assert.NoError(t, bot.Close())
}

func TestBot_MeIsCached(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getMe", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyUser(w)
	})
	bot, err := tgbind.New(testutil.TestToken, testOptions(api)...)
	require.NoError(t, err)
	defer bot.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := bot.Me(ctx)
			assert.NoError(t, err)
			assert.Equal(t, testutil.TestBotID, u.ID)
		}()
	}
	wg.Wait()

	name, err := bot.Username(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutil.TestBotUsername, name)
	assert.Equal(t, 1, api.CaptureCount())

	api.ResetCaptures()
	_, err = bot.Me(ctx)
	require.NoError(t, err)
	assert.Zero(t, api.CaptureCount(), "cached identity must not call getMe")

	bot.Forget()
	_, err = bot.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.CaptureCount())
}

func TestBot_MeErrorNotCached(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.Sequence("getMe",
		func(w http.ResponseWriter, r *http.Request) { testutil.ReplyError(w, 401, "Unauthorized", nil) },
		func(w http.ResponseWriter, r *http.Request) { testutil.ReplyUser(w) },
	)
	bot, err := tgbind.New(testutil.TestToken, testOptions(api)...)
	require.NoError(t, err)
	defer bot.Close()

	_, err = bot.Me(context.Background())
	assert.ErrorIs(t, err, tg.ErrUnauthorized)

	u, err := bot.Me(context.Background())
	require.NoError(t, err)
	assert.True(t, u.IsBot)
}

func TestBot_MeSurvivesFirstCallerCancel(t *testing.T) {
	api := testutil.NewMockAPI(t)
	arrived := make(chan struct{})
	release := make(chan struct{})
	api.On("getMe", func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		testutil.ReplyUser(w)
	})
	bot, err := tgbind.New(testutil.TestToken, testOptions(api)...)
	require.NoError(t, err)
	defer bot.Close()

	ctx, cancel := context.WithCancel(context.Background())
	type result struct {
		u   *tg.User
		err error
	}
	done := make(chan result, 1)
	go func() {
		u, err := bot.Me(ctx)
		done <- result{u, err}
	}()

	<-arrived
	cancel()
	close(release)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, testutil.TestBotID, res.u.ID)

	u, err := bot.Me(context.Background())
	require.NoError(t, err)
	assert.Same(t, res.u, u)
	assert.Equal(t, 1, api.CaptureCount())
}

func TestBot_ModelsAreBound(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, 10)
	})
	bot, err := tgbind.New(testutil.TestToken, testOptions(api)...)
	require.NoError(t, err)
	defer bot.Close()

	msg, err := bot.SendMessage(context.Background(), testutil.TestChatID, "hello")
	require.NoError(t, err)
	require.NoError(t, msg.Delete(context.Background()))

	c := api.LastCapture()
	c.AssertAPIMethod(t, "deleteMessage")
	c.AssertParam(t, "message_id", float64(10))
	assert.Same(t, bot.Client, bot.Sender())
}

func TestFromEnv(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getMe", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyUser(w)
	})

	t.Setenv("TELEGRAM_BOT_TOKEN", testutil.TestToken)
	t.Cleanup(func() {
		os.Unsetenv("TELEGRAM_API_BASE_URL")
		os.Unsetenv("MAX_RETRIES")
	})

	env := filepath.Join(t.TempDir(), "bot.env")
	require.NoError(t, os.WriteFile(env, []byte(
		"TELEGRAM_BOT_TOKEN=999:overridden\n"+
			"TELEGRAM_API_BASE_URL="+api.BaseURL()+"\n"+
			"MAX_RETRIES=0\n"), 0o600))

	bot, err := tgbind.FromEnv([]string{env, filepath.Join(t.TempDir(), "missing.env")},
		sender.WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	defer bot.Close()

	u, err := bot.Me(context.Background())
	require.NoError(t, err, "token from the environment must win over the file")
	assert.Equal(t, testutil.TestBotID, u.ID)
	assert.Equal(t, "/bot"+testutil.TestToken+"/getMe", api.LastCapture().Path)
}

func TestFromEnv_MalformedFile(t *testing.T) {
	env := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(env, []byte("BAD-KEY=1\n"), 0o600))

	_, err := tgbind.FromEnv([]string{env})
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	api := testutil.NewMockAPI(t)
	path := filepath.Join(t.TempDir(), "bot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"token: \""+testutil.TestToken+"\"\nbase_url: "+api.BaseURL()+"\nretry:\n  max_retries: 0\n"), 0o600))

	bot, err := tgbind.FromFile(path, sender.WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	defer bot.Close()

	require.NoError(t, bot.LeaveChat(context.Background(), testutil.TestGroupID))
	api.LastCapture().AssertAPIMethod(t, "leaveChat")
}
