package tg_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

func boundMessage(t *testing.T, result string) (*tg.Message, *fakeCaller) {
	t.Helper()
	msg := decodeMessage(t)
	fc := &fakeCaller{result: result}
	tg.Bind(msg, fc)
	return msg, fc
}

func TestMessage_Reply(t *testing.T) {
	msg, fc := boundMessage(t, messageJSON)

	_, err := msg.Reply(context.Background(), "pong", payload.Silent(), payload.WithParseMode(tg.ParseModeHTML))
	require.NoError(t, err)

	assert.Equal(t, "sendMessage", fc.method)
	assert.Equal(t, int64(123456789), fc.data[payload.ChatID])
	assert.Equal(t, "pong", fc.data[payload.Text])
	assert.Equal(t, tg.ReplyParameters{MessageID: 42}, fc.data[payload.ReplyParameters])
	assert.Equal(t, true, fc.data[payload.DisableNotification])
	assert.Equal(t, tg.ParseModeHTML, fc.data[payload.ParseMode])
	assert.False(t, fc.data.Has(payload.MessageThreadID))
}

func TestMessage_ReplyKeepsTopic(t *testing.T) {
	msg, fc := boundMessage(t, messageJSON)
	msg.IsTopicMessage = true
	msg.MessageThreadID = 7

	_, err := msg.Reply(context.Background(), "in topic")
	require.NoError(t, err)
	assert.Equal(t, 7, fc.data[payload.MessageThreadID])
}

func TestMessage_ReplyPhotoUpload(t *testing.T) {
	msg, fc := boundMessage(t, messageJSON)

	_, err := msg.ReplyPhoto(context.Background(), tg.FileFromBytes("cat.jpg", []byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, "sendPhoto", fc.method)

	enc, err := fc.data.Encode()
	require.NoError(t, err)
	require.True(t, enc.Multipart())
	assert.Equal(t, "photo", enc.Files[0].Field)
	assert.Equal(t, "cat.jpg", enc.Files[0].Name)
	assert.NotContains(t, enc.Params, "photo")
}

func TestMessage_WithoutChat(t *testing.T) {
	msg := &tg.Message{MessageID: 1}
	tg.Bind(msg, &fakeCaller{})

	_, err := msg.Reply(context.Background(), "x")
	var verr *tg.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "chat", verr.Field)
}

func TestMessage_EditAndForward(t *testing.T) {
	msg, fc := boundMessage(t, messageJSON)
	ctx := context.Background()

	_, err := msg.EditText(ctx, "edited")
	require.NoError(t, err)
	assert.Equal(t, "editMessageText", fc.method)
	assert.Equal(t, 42, fc.data[payload.MessageID])

	_, err = msg.EditReplyMarkup(ctx, tg.Confirm("y", "n"))
	require.NoError(t, err)
	assert.Equal(t, "editMessageReplyMarkup", fc.method)

	_, err = msg.Forward(ctx, "@channel")
	require.NoError(t, err)
	assert.Equal(t, "forwardMessage", fc.method)
	assert.Equal(t, "@channel", fc.data[payload.ChatID])
	assert.Equal(t, int64(123456789), fc.data[payload.FromChatID])

	fc.result = `{"message_id": 99}`
	id, err := msg.Copy(ctx, int64(555))
	require.NoError(t, err)
	assert.Equal(t, 99, id.MessageID)
	assert.Equal(t, "copyMessage", fc.method)
}

func TestMessage_React(t *testing.T) {
	msg, fc := boundMessage(t, `true`)

	require.NoError(t, msg.React(context.Background(), tg.ReactionEmoji("👍")))
	assert.Equal(t, "setMessageReaction", fc.method)
	assert.Equal(t, []tg.ReactionType{{Type: "emoji", Emoji: "👍"}}, fc.data[payload.Reaction])

	require.NoError(t, msg.React(context.Background()))
	assert.Equal(t, []tg.ReactionType{}, fc.data[payload.Reaction])
}

func TestMessage_GameScores(t *testing.T) {
	msg, fc := boundMessage(t, `[{"position":1,"user":{"id":7,"first_name":"G"},"score":300}]`)

	scores, err := msg.HighScores(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 300, scores[0].Score)
	assert.Equal(t, "getGameHighScores", fc.method)
	assert.Equal(t, int64(7), fc.data[payload.UserID])
}

func TestMessage_Command(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		length   int
		wantName string
		wantArgs string
	}{
		{"plain", "/start", 6, "start", ""},
		{"with args", "/start deep-link", 6, "start", "deep-link"},
		{"addressed", "/help@my_bot topic", 12, "help", "topic"},
		{"zero length", "", 0, "", ""},
		{"entity past text", "/", 8, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &tg.Message{
				Text:     tt.text,
				Entities: []tg.MessageEntity{{Type: "bot_command", Offset: 0, Length: tt.length}},
			}
			require.True(t, msg.IsCommand())
			name, args := msg.Command()
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}

	plain := &tg.Message{Text: "hello"}
	assert.False(t, plain.IsCommand())
}

func TestMessage_BindNestedModels(t *testing.T) {
	var msg tg.Message
	require.NoError(t, json.Unmarshal([]byte(`{
		"message_id": 7,
		"date": 1700000000,
		"chat": {"id": -100500, "type": "supergroup", "title": "G"},
		"text": "hi Ann",
		"entities": [{"type": "text_mention", "offset": 3, "length": 3, "user": {"id": 55, "is_bot": false, "first_name": "Ann"}}],
		"external_reply": {
			"origin": {"type": "user", "date": 1699999999, "sender_user": {"id": 66, "is_bot": false, "first_name": "Bo"}},
			"chat": {"id": -100600, "type": "supergroup", "title": "Other"},
			"message_id": 3
		}
	}`), &msg))

	fc := &fakeCaller{result: messageJSON}
	tg.Bind(&msg, fc)
	ctx := context.Background()

	_, err := msg.Entities[0].User.Send(ctx, "dm")
	require.NoError(t, err)
	assert.Equal(t, int64(55), fc.data[payload.ChatID])

	_, err = msg.ExternalReply.Chat.Send(ctx, "cross-post")
	require.NoError(t, err)
	assert.Equal(t, int64(-100600), fc.data[payload.ChatID])

	_, err = msg.ExternalReply.Origin.SenderUser.Send(ctx, "origin")
	require.NoError(t, err)
	assert.Equal(t, int64(66), fc.data[payload.ChatID])
	assert.Equal(t, 3, fc.calls)
}

func TestCallbackQuery_EditText(t *testing.T) {
	t.Run("inline message", func(t *testing.T) {
		fc := &fakeCaller{result: `true`}
		q := &tg.CallbackQuery{ID: "1", InlineMessageID: "inl-1"}
		tg.Bind(q, fc)

		msg, err := q.EditText(context.Background(), "new")
		require.NoError(t, err)
		assert.Nil(t, msg)
		assert.Equal(t, "inl-1", fc.data[payload.InlineMessageID])
		assert.False(t, fc.data.Has(payload.ChatID))
	})

	t.Run("chat message", func(t *testing.T) {
		fc := &fakeCaller{result: messageJSON}
		q := &tg.CallbackQuery{ID: "1", Message: decodeMessage(t)}
		tg.Bind(q, fc)

		msg, err := q.EditText(context.Background(), "new")
		require.NoError(t, err)
		require.NotNil(t, msg)
		assert.Equal(t, int64(123456789), fc.data[payload.ChatID])
		assert.Equal(t, 42, fc.data[payload.MessageID])
	})
}

func TestEditTarget(t *testing.T) {
	d, err := tg.EditTarget(tg.StoredMessage{MsgID: 3, ChatID: 10})
	require.NoError(t, err)
	assert.Equal(t, payload.Data{payload.ChatID: int64(10), payload.MessageID: 3}, d)

	d, err = tg.EditTarget(tg.InlineMessage{InlineMessageID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, payload.Data{payload.InlineMessageID: "abc"}, d)

	_, err = tg.EditTarget(tg.InlineMessage{})
	var verr *tg.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestChat_Operations(t *testing.T) {
	var chat tg.Chat
	require.NoError(t, json.Unmarshal([]byte(`{"id": -1001, "type": "supergroup", "title": "Devs"}`), &chat))
	fc := &fakeCaller{result: `true`}
	tg.Bind(&chat, fc)
	ctx := context.Background()

	require.NoError(t, chat.Action(ctx, tg.ActionTyping))
	assert.Equal(t, "sendChatAction", fc.method)
	assert.Equal(t, tg.ActionTyping, fc.data[payload.Action])

	require.NoError(t, chat.Ban(ctx, 77, payload.With(payload.RevokeMessages, true)))
	assert.Equal(t, "banChatMember", fc.method)
	assert.Equal(t, int64(77), fc.data[payload.UserID])
	assert.Equal(t, true, fc.data[payload.RevokeMessages])

	require.NoError(t, chat.Restrict(ctx, 77, tg.NoPermissions()))
	assert.Equal(t, tg.NoPermissions(), fc.data[payload.Permissions])

	require.NoError(t, chat.Promote(ctx, 77, tg.ModeratorRights()))
	assert.Equal(t, "promoteChatMember", fc.method)
	assert.Equal(t, true, fc.data[payload.Key("canDeleteMessages")])
	assert.Equal(t, false, fc.data[payload.Key("canPromoteMembers")])

	fc.result = `15`
	n, err := chat.MemberCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	fc.result = `"https://t.me/+abc"`
	link, err := chat.ExportInviteLink(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/+abc", link)
}

func TestChatFullInfo_EmbedsChat(t *testing.T) {
	var info tg.ChatFullInfo
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": -100, "type": "channel", "title": "News", "username": "news",
		"accent_color_id": 1, "max_reaction_count": 11,
		"description": "daily"
	}`), &info))

	assert.Equal(t, int64(-100), info.ID)
	assert.Equal(t, "daily", info.Description)
	assert.Equal(t, "@news", info.Ref())

	fc := &fakeCaller{result: `true`}
	tg.Bind(&info, fc)
	require.NoError(t, info.SetTitle(context.Background(), "Old news"))
	assert.Equal(t, "setChatTitle", fc.method)
	assert.Equal(t, int64(-100), fc.data[payload.ChatID])
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCaller{result: `true`}

	pcq := &tg.PreCheckoutQuery{ID: "pcq"}
	tg.Bind(pcq, fc)
	require.NoError(t, pcq.Fail(ctx, "sold out"))
	assert.Equal(t, "answerPreCheckoutQuery", fc.method)
	assert.Equal(t, false, fc.data[payload.OK])
	assert.Equal(t, "sold out", fc.data[payload.ErrorMessage])

	sq := &tg.ShippingQuery{ID: "sq"}
	tg.Bind(sq, fc)
	opts := []tg.ShippingOption{{ID: "post", Title: "Post", Prices: []tg.LabeledPrice{{Label: "Post", Amount: 500}}}}
	require.NoError(t, sq.Ok(ctx, opts))
	assert.Equal(t, "answerShippingQuery", fc.method)
	assert.Equal(t, opts, fc.data[payload.ShippingOptions])

	iq := &tg.InlineQuery{ID: "iq"}
	tg.Bind(iq, fc)
	require.NoError(t, iq.Answer(ctx, nil, payload.With(payload.CacheTime, 0)))
	assert.Equal(t, "answerInlineQuery", fc.method)
	assert.Equal(t, []tg.InlineQueryResult{}, fc.data[payload.Results])

	req := &tg.ChatJoinRequest{Chat: &tg.Chat{ID: -5}, From: &tg.User{ID: 9}}
	tg.Bind(req, fc)
	require.NoError(t, req.Approve(ctx))
	assert.Equal(t, "approveChatJoinRequest", fc.method)
	assert.Equal(t, int64(-5), fc.data[payload.ChatID])
	assert.Equal(t, int64(9), fc.data[payload.UserID])
}

func TestStickerOperations(t *testing.T) {
	var set tg.StickerSet
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "pack_by_bot", "title": "Pack", "sticker_type": "regular",
		"stickers": [{"file_id": "s1", "file_unique_id": "u1", "type": "regular", "width": 512, "height": 512, "is_animated": false, "is_video": true}]
	}`), &set))

	fc := &fakeCaller{result: `true`}
	tg.Bind(&set, fc)

	st := &set.Stickers[0]
	assert.Equal(t, tg.StickerVideo, st.Format())

	require.NoError(t, st.SetPosition(context.Background(), 0))
	assert.Equal(t, "setStickerPositionInSet", fc.method)
	assert.Equal(t, "s1", fc.data[payload.Sticker])

	require.NoError(t, st.SetEmojiList(context.Background(), "😀", "😎"))
	assert.Equal(t, []string{"😀", "😎"}, fc.data[payload.EmojiList])

	require.NoError(t, set.Delete(context.Background()))
	assert.Equal(t, "deleteStickerSet", fc.method)
	assert.Equal(t, "pack_by_bot", fc.data[payload.Name])
}
