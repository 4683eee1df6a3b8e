package engine_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/ratelimit"

	"github.com/prilive-com/tgbind"
	"github.com/prilive-com/tgbind/cmd/tgbind-smoke/engine"
	"github.com/prilive-com/tgbind/internal/testutil"
	"github.com/prilive-com/tgbind/sender"
)

func newRuntime(t *testing.T, api *testutil.MockAPI) *engine.Runtime {
	t.Helper()
	bot, err := tgbind.New(testutil.TestToken,
		sender.WithBaseURL(api.BaseURL()),
		sender.WithRetries(0),
		sender.WithLogger(testutil.QuietLogger()),
		sender.WithCircuitBreakerSettings(testutil.BreakerNeverTrip()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bot.Close() })
	return engine.NewRuntime(bot, testutil.TestChatID)
}

func sequentialMessages(api *testutil.MockAPI, first int) {
	var next atomic.Int64
	next.Store(int64(first))
	api.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, int(next.Add(1)-1))
	})
}

func TestRunner_CleansUpSentMessages(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getMe", func(w http.ResponseWriter, r *http.Request) { testutil.ReplyUser(w) })
	sequentialMessages(api, 10)
	api.On("copyMessage", func(w http.ResponseWriter, r *http.Request) { testutil.ReplyMessageID(w, 20) })

	rt := newRuntime(t, api)
	runner := engine.NewRunner(rt, ratelimit.NewUnlimited(), 10, testutil.QuietLogger())

	result := runner.Run(context.Background(), engine.Scenario{
		Name: "test",
		Steps: []engine.Step{
			&engine.GetMeStep{},
			&engine.SendMessageStep{Text: "one"},
			&engine.CopyStep{},
		},
	})

	require.True(t, result.Success, result.Error)
	require.Len(t, result.Steps, 3)
	assert.Equal(t, []int{10}, result.Steps[1].MessageIDs)
	assert.Equal(t, 2, runner.MessageCount())

	last := api.LastCapture()
	last.AssertAPIMethod(t, "deleteMessages")
	last.AssertParam(t, "message_ids", []any{float64(10), float64(20)})
	assert.Empty(t, rt.Created)
}

func TestRunner_MessageBudget(t *testing.T) {
	api := testutil.NewMockAPI(t)
	sequentialMessages(api, 1)

	rt := newRuntime(t, api)
	runner := engine.NewRunner(rt, ratelimit.NewUnlimited(), 1, testutil.QuietLogger())

	result := runner.Run(context.Background(), engine.Scenario{
		Name: "budget",
		Steps: []engine.Step{
			&engine.SendMessageStep{Text: "one"},
			&engine.SendMessageStep{Text: "two"},
		},
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "budget")
	assert.Len(t, result.Steps, 1)
	api.LastCapture().AssertAPIMethod(t, "deleteMessages")
}

func TestRunner_StepFailure(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyBadRequest(w, "Bad Request: chat not found")
	})

	rt := newRuntime(t, api)
	runner := engine.NewRunner(rt, ratelimit.NewUnlimited(), 5, testutil.QuietLogger())

	result := runner.Run(context.Background(), engine.Scenario{
		Name:  "failing",
		Steps: []engine.Step{&engine.SendMessageStep{Text: "x"}, &engine.ReplyStep{Text: "y"}},
	})

	assert.False(t, result.Success)
	require.Len(t, result.Steps, 1)
	assert.False(t, result.Steps[0].Success)
	assert.Contains(t, result.Steps[0].Error, "chat not found")
	assert.Equal(t, 1, api.CaptureCount(), "nothing to clean up")
}

func TestRunner_StepsNeedMessage(t *testing.T) {
	api := testutil.NewMockAPI(t)
	rt := newRuntime(t, api)
	runner := engine.NewRunner(rt, ratelimit.NewUnlimited(), 5, testutil.QuietLogger())

	result := runner.Run(context.Background(), engine.Scenario{
		Name:  "orphan",
		Steps: []engine.Step{&engine.EditTextStep{Text: "x"}},
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "no message")
	assert.Zero(t, api.CaptureCount())
}

func TestRuntime_DeleteStepUntracks(t *testing.T) {
	api := testutil.NewMockAPI(t)
	sequentialMessages(api, 5)

	rt := newRuntime(t, api)
	ctx := context.Background()

	_, err := (&engine.SendMessageStep{Text: "keep"}).Execute(ctx, rt)
	require.NoError(t, err)
	_, err = (&engine.SendMessageStep{Text: "drop"}).Execute(ctx, rt)
	require.NoError(t, err)
	_, err = (&engine.DeleteStep{}).Execute(ctx, rt)
	require.NoError(t, err)

	api.LastCapture().AssertAPIMethod(t, "deleteMessage")
	assert.Equal(t, []int{5}, rt.Created)
	assert.Nil(t, rt.Last)

	deleted, failed := rt.Cleanup(ctx)
	assert.Equal(t, 1, deleted)
	assert.Zero(t, failed)
}
