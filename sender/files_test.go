package sender_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/internal/testutil"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

func TestRaw_ConvertsKeyCase(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getMe", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyUser(w)
	})
	api.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, 5)
	})
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	me, err := client.Raw(ctx, "getMe", nil)
	require.NoError(t, err)
	m := me.(map[string]any)
	assert.Equal(t, true, m["isBot"])
	assert.Equal(t, "Test Bot", m["firstName"])
	assert.NotContains(t, m, "is_bot")

	res, err := client.Raw(ctx, "sendMessage", payload.Data{
		payload.Key("chatId"):              testutil.TestChatID,
		payload.Key("text"):                "raw",
		payload.Key("disableNotification"): true,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(5), res.(map[string]any)["messageId"])

	c := api.LastCapture()
	c.AssertParam(t, "chat_id", float64(testutil.TestChatID))
	c.AssertParam(t, "disable_notification", true)
	c.AssertParamAbsent(t, "chatId")
}

func TestRaw_RejectsBadMethod(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)

	for _, method := range []string{"", "send/Message", "../getMe"} {
		_, err := client.Raw(context.Background(), method, nil)
		var vErr *tg.ValidationError
		assert.ErrorAs(t, err, &vErr, method)
	}
	assert.Zero(t, api.CaptureCount())
}

func TestDecodeUpdate_BindsClient(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)

	body, err := json.Marshal(testutil.CallbackUpdateJSON(10, "yes", ""))
	require.NoError(t, err)

	u, err := client.DecodeUpdate(bytes.NewReader(body))
	require.NoError(t, err)
	require.NotNil(t, u.CallbackQuery)
	assert.Equal(t, "yes", u.CallbackQuery.Data)

	require.NoError(t, u.CallbackQuery.Answer(context.Background(), "done"))

	c := api.LastCapture()
	c.AssertAPIMethod(t, "answerCallbackQuery")
	c.AssertParam(t, "callback_query_id", "cb_1")
	c.AssertParam(t, "text", "done")
}

func TestDecodeUpdate_Malformed(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)

	_, err := client.DecodeUpdate(bytes.NewReader([]byte("{not json")))
	require.Error(t, err)
}

func TestDownload(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getFile", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyFile(w, "f1", "photos/file_1.jpg")
	})
	api.OnPath(http.MethodGet, "/file/bot"+testutil.TestToken+"/photos/file_1.jpg", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg bytes"))
	})
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	f, err := client.GetFile(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, api.BaseURL()+"/file/bot"+testutil.TestToken+"/photos/file_1.jpg", client.FileURL(f))

	var buf bytes.Buffer
	n, err := client.Download(ctx, f, &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
	assert.Equal(t, "jpeg bytes", buf.String())
}

func TestDownload_NotFound(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.OnPath(http.MethodGet, "/file/bot"+testutil.TestToken+"/gone.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := testutil.NewTestClient(t, api)

	_, err := client.Download(context.Background(), &tg.File{FileID: "x", FilePath: "gone.jpg"}, &bytes.Buffer{})
	var apiErr *tg.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}

func TestDownload_RequiresPath(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)

	_, err := client.Download(context.Background(), &tg.File{FileID: "x"}, &bytes.Buffer{})
	var vErr *tg.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "file_path", vErr.Field)
	assert.Zero(t, api.CaptureCount())
}
