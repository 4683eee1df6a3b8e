package tg

import (
	"context"
	"strconv"

	"github.com/prilive-com/tgbind/payload"
)

// target returns a payload addressed to the message's chat, keeping the
// topic and business connection so replies land in the same place.
func (m *Message) target() (payload.Data, error) {
	if m.Chat == nil {
		return nil, NewValidationError("chat", "message has no chat")
	}
	d := payload.Data{payload.ChatID: m.Chat.ID}
	if m.IsTopicMessage && m.MessageThreadID != 0 {
		d.Set(payload.MessageThreadID, m.MessageThreadID)
	}
	if m.BusinessConnectionID != "" {
		d.Set(payload.BusinessConnectionID, m.BusinessConnectionID)
	}
	return d, nil
}

// ref returns a payload that identifies this message.
func (m *Message) ref() (payload.Data, error) {
	if m.Chat == nil {
		return nil, NewValidationError("chat", "message has no chat")
	}
	d := payload.Data{payload.ChatID: m.Chat.ID, payload.MessageID: m.MessageID}
	if m.BusinessConnectionID != "" {
		d.Set(payload.BusinessConnectionID, m.BusinessConnectionID)
	}
	return d, nil
}

func (m *Message) replyParameters() ReplyParameters {
	return ReplyParameters{MessageID: m.MessageID}
}

// Reply sends text as a reply to the message.
func (m *Message) Reply(ctx context.Context, text string, opts ...payload.Option) (*Message, error) {
	d, err := m.target()
	if err != nil {
		return nil, err
	}
	d.Set(payload.Text, text).Set(payload.ReplyParameters, m.replyParameters())
	return invoke[*Message](ctx, m.api, "sendMessage", d.Apply(opts...))
}

// ReplyPhoto sends a photo as a reply to the message.
func (m *Message) ReplyPhoto(ctx context.Context, photo InputFile, opts ...payload.Option) (*Message, error) {
	d, err := m.target()
	if err != nil {
		return nil, err
	}
	d.Set(payload.Photo, photo).Set(payload.ReplyParameters, m.replyParameters())
	return invoke[*Message](ctx, m.api, "sendPhoto", d.Apply(opts...))
}

// EditText replaces the message text.
func (m *Message) EditText(ctx context.Context, text string, opts ...payload.Option) (*Message, error) {
	d, err := m.ref()
	if err != nil {
		return nil, err
	}
	d.Set(payload.Text, text)
	return invoke[*Message](ctx, m.api, "editMessageText", d.Apply(opts...))
}

// EditCaption replaces the caption of a media message.
func (m *Message) EditCaption(ctx context.Context, caption string, opts ...payload.Option) (*Message, error) {
	d, err := m.ref()
	if err != nil {
		return nil, err
	}
	d.Set(payload.Caption, caption)
	return invoke[*Message](ctx, m.api, "editMessageCaption", d.Apply(opts...))
}

// EditReplyMarkup replaces the inline keyboard. A nil markup removes it.
func (m *Message) EditReplyMarkup(ctx context.Context, markup *InlineKeyboardMarkup, opts ...payload.Option) (*Message, error) {
	d, err := m.ref()
	if err != nil {
		return nil, err
	}
	d.Set(payload.ReplyMarkup, markup)
	return invoke[*Message](ctx, m.api, "editMessageReplyMarkup", d.Apply(opts...))
}

// Delete deletes the message.
func (m *Message) Delete(ctx context.Context) error {
	d, err := m.ref()
	if err != nil {
		return err
	}
	return exec(ctx, m.api, "deleteMessage", d)
}

// Forward forwards the message to another chat.
func (m *Message) Forward(ctx context.Context, to ChatID, opts ...payload.Option) (*Message, error) {
	if m.Chat == nil {
		return nil, NewValidationError("chat", "message has no chat")
	}
	d := payload.Data{
		payload.ChatID:     to,
		payload.FromChatID: m.Chat.ID,
		payload.MessageID:  m.MessageID,
	}
	return invoke[*Message](ctx, m.api, "forwardMessage", d.Apply(opts...))
}

// Copy sends a copy of the message, without a link to the original, to
// another chat.
func (m *Message) Copy(ctx context.Context, to ChatID, opts ...payload.Option) (*MessageID, error) {
	if m.Chat == nil {
		return nil, NewValidationError("chat", "message has no chat")
	}
	d := payload.Data{
		payload.ChatID:     to,
		payload.FromChatID: m.Chat.ID,
		payload.MessageID:  m.MessageID,
	}
	return invoke[*MessageID](ctx, m.api, "copyMessage", d.Apply(opts...))
}

// Pin pins the message in its chat.
func (m *Message) Pin(ctx context.Context, opts ...payload.Option) error {
	d, err := m.ref()
	if err != nil {
		return err
	}
	return exec(ctx, m.api, "pinChatMessage", d.Apply(opts...))
}

// Unpin unpins the message.
func (m *Message) Unpin(ctx context.Context) error {
	d, err := m.ref()
	if err != nil {
		return err
	}
	return exec(ctx, m.api, "unpinChatMessage", d)
}

// React replaces the bot's reactions on the message. No reactions clears them.
func (m *Message) React(ctx context.Context, reactions ...ReactionType) error {
	d, err := m.ref()
	if err != nil {
		return err
	}
	if reactions == nil {
		reactions = []ReactionType{}
	}
	d.Set(payload.Reaction, reactions)
	return exec(ctx, m.api, "setMessageReaction", d)
}

// StopPoll closes the poll in the message.
func (m *Message) StopPoll(ctx context.Context, opts ...payload.Option) (*Poll, error) {
	d, err := m.ref()
	if err != nil {
		return nil, err
	}
	return invoke[*Poll](ctx, m.api, "stopPoll", d.Apply(opts...))
}

// StopLiveLocation stops updating the live location in the message.
func (m *Message) StopLiveLocation(ctx context.Context, opts ...payload.Option) (*Message, error) {
	d, err := m.ref()
	if err != nil {
		return nil, err
	}
	return invoke[*Message](ctx, m.api, "stopMessageLiveLocation", d.Apply(opts...))
}

// SetScore sets a user's score in the game sent in this message.
func (m *Message) SetScore(ctx context.Context, userID int64, score int, opts ...payload.Option) (*Message, error) {
	d, err := m.ref()
	if err != nil {
		return nil, err
	}
	d.Set(payload.UserID, userID).Set(payload.Score, score)
	return invoke[*Message](ctx, m.api, "setGameScore", d.Apply(opts...))
}

// HighScores returns the high score table of the game sent in this message,
// around the given user.
func (m *Message) HighScores(ctx context.Context, userID int64) ([]GameHighScore, error) {
	d, err := m.ref()
	if err != nil {
		return nil, err
	}
	d.Set(payload.UserID, userID)
	return invoke[[]GameHighScore](ctx, m.api, "getGameHighScores", d)
}

// EditTarget returns the payload keys that address e in edit methods:
// inline_message_id for inline messages, chat_id and message_id otherwise.
func EditTarget(e Editable) (payload.Data, error) {
	if e == nil {
		return nil, NewValidationError("message", "is required")
	}
	id, chatID := e.MessageSig()
	if id == "" {
		return nil, NewValidationError("message", "has no identifier")
	}
	if chatID == 0 {
		return payload.Data{payload.InlineMessageID: id}, nil
	}
	msgID, err := strconv.Atoi(id)
	if err != nil {
		return nil, NewValidationError("message_id", "must be numeric")
	}
	return payload.Data{payload.ChatID: chatID, payload.MessageID: msgID}, nil
}
