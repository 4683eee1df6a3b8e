package sender_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/internal/testutil"
	"github.com/prilive-com/tgbind/tg"
)

func TestEditMessageText_ChatMessage(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("editMessageText", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyOK(w, testutil.MessageJSON(7, "edited"))
	})
	client := testutil.NewTestClient(t, api)

	msg, err := client.EditMessageText(context.Background(),
		tg.StoredMessage{MsgID: 7, ChatID: testutil.TestChatID}, "edited")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "edited", msg.Text)

	c := api.LastCapture()
	c.AssertParam(t, "chat_id", float64(testutil.TestChatID))
	c.AssertParam(t, "message_id", float64(7))
	c.AssertParamAbsent(t, "inline_message_id")
}

func TestEditMessageText_InlineMessage(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)

	msg, err := client.EditMessageText(context.Background(), tg.InlineMessage{InlineMessageID: "inl-1"}, "edited")
	require.NoError(t, err)
	assert.Nil(t, msg)

	c := api.LastCapture()
	c.AssertParam(t, "inline_message_id", "inl-1")
	c.AssertParamAbsent(t, "chat_id")
	c.AssertParamAbsent(t, "message_id")
}

func TestEditMessageReplyMarkup_FromCallback(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("editMessageReplyMarkup", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, 7)
	})
	client := testutil.NewTestClient(t, api)

	q := &tg.CallbackQuery{ID: "cb", Message: testutil.TestMessage(7, "Pick one")}
	_, err := client.EditMessageReplyMarkup(context.Background(), q, tg.Confirm("y", "n"))
	require.NoError(t, err)

	c := api.LastCapture()
	c.AssertParam(t, "message_id", float64(7))
	assert.Contains(t, c.Params(t), "reply_markup")
}

func TestEditMessageCaption_EmptyRemoves(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)

	_, err := client.EditMessageCaption(context.Background(), tg.InlineMessage{InlineMessageID: "x"}, "")
	require.NoError(t, err)
	api.LastCapture().AssertParamAbsent(t, "caption")
}

func TestEditMessageMedia_Upload(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("editMessageMedia", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, 7)
	})
	client := testutil.NewTestClient(t, api)

	_, err := client.EditMessageMedia(context.Background(),
		tg.StoredMessage{MsgID: 7, ChatID: testutil.TestChatID},
		tg.InputMediaDocument{Media: tg.FileFromBytes("new.pdf", []byte("%PDF"))},
	)
	require.NoError(t, err)

	c := api.LastCapture()
	require.True(t, c.IsMultipart())
	c.AssertFile(t, "file0", "new.pdf", "%PDF")
	media := c.Params(t)["media"].(map[string]any)
	assert.Equal(t, "document", media["type"])
	assert.Equal(t, "attach://file0", media["media"])
}

func TestStopPollAndDelete(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("stopPoll", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyOK(w, map[string]any{
			"id":                "p1",
			"question":          "Q?",
			"options":           []any{map[string]any{"text": "a", "voter_count": 2}},
			"total_voter_count": 2,
			"is_closed":         true,
			"is_anonymous":      true,
			"type":              "regular",
		})
	})
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	poll, err := client.StopPoll(ctx, testutil.TestChatID, 3)
	require.NoError(t, err)
	assert.True(t, poll.IsClosed)
	assert.Equal(t, 2, poll.Options[0].VoterCount)

	require.NoError(t, client.DeleteMessages(ctx, testutil.TestChatID, []int{1, 2, 3}))
	api.LastCapture().AssertAPIMethod(t, "deleteMessages")
}
