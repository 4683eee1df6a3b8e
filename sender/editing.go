package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// Edit methods address their message through tg.Editable: a received
// *tg.Message, a *tg.CallbackQuery, a tg.StoredMessage or a tg.InlineMessage.
// Inline messages are not returned by the API, so the message result is nil
// for them.

// edit runs an edit method that returns the edited message, or true for
// inline messages.
func (c *Client) edit(ctx context.Context, method string, target tg.Editable, d payload.Data) (*tg.Message, error) {
	ref, err := tg.EditTarget(target)
	if err != nil {
		return nil, err
	}
	for k, v := range ref {
		d.Set(k, v)
	}
	if ref.Has(payload.InlineMessageID) {
		return nil, exec(ctx, c, method, d)
	}
	return call[*tg.Message](ctx, c, method, d)
}

// EditMessageText replaces the text of a message.
func (c *Client) EditMessageText(ctx context.Context, target tg.Editable, text string, opts ...payload.Option) (*tg.Message, error) {
	if err := c.validateText(text); err != nil {
		return nil, err
	}
	return c.edit(ctx, "editMessageText", target, payload.Data{payload.Text: text}.Apply(opts...))
}

// EditMessageCaption replaces the caption of a media message. An empty
// caption removes it.
func (c *Client) EditMessageCaption(ctx context.Context, target tg.Editable, caption string, opts ...payload.Option) (*tg.Message, error) {
	if err := validate.Caption(caption, c.config.MaxCaptionLength); err != nil {
		return nil, err
	}
	d := payload.New(opts...)
	if caption != "" {
		d.Set(payload.Caption, caption)
	}
	return c.edit(ctx, "editMessageCaption", target, d)
}

// EditMessageMedia replaces the media of a message. Uploads are sent as
// multipart.
func (c *Client) EditMessageMedia(ctx context.Context, target tg.Editable, media tg.InputMedia, opts ...payload.Option) (*tg.Message, error) {
	if media == nil {
		return nil, tg.NewValidationError("media", "is required")
	}
	return c.edit(ctx, "editMessageMedia", target, payload.Data{payload.Media: media}.Apply(opts...))
}

// EditMessageLiveLocation moves a live location.
func (c *Client) EditMessageLiveLocation(ctx context.Context, target tg.Editable, latitude, longitude float64, opts ...payload.Option) (*tg.Message, error) {
	d := payload.Data{payload.Latitude: latitude, payload.Longitude: longitude}
	return c.edit(ctx, "editMessageLiveLocation", target, d.Apply(opts...))
}

// StopMessageLiveLocation stops a live location before its live period ends.
func (c *Client) StopMessageLiveLocation(ctx context.Context, target tg.Editable, opts ...payload.Option) (*tg.Message, error) {
	return c.edit(ctx, "stopMessageLiveLocation", target, payload.New(opts...))
}

// EditMessageReplyMarkup replaces the inline keyboard. A nil markup removes it.
func (c *Client) EditMessageReplyMarkup(ctx context.Context, target tg.Editable, markup *tg.InlineKeyboardMarkup, opts ...payload.Option) (*tg.Message, error) {
	d := payload.New(opts...)
	if markup != nil {
		d.Set(payload.ReplyMarkup, markup)
	}
	return c.edit(ctx, "editMessageReplyMarkup", target, d)
}

// StopPoll closes a poll and returns its final state.
func (c *Client) StopPoll(ctx context.Context, chatID tg.ChatID, messageID int, opts ...payload.Option) (*tg.Poll, error) {
	if err := validateChatMessage(chatID, messageID); err != nil {
		return nil, err
	}
	d := payload.Data{payload.ChatID: chatID, payload.MessageID: messageID}
	return call[*tg.Poll](ctx, c, "stopPoll", d.Apply(opts...))
}

// DeleteMessage deletes a message. Messages older than 48 hours can only be
// deleted in some chats.
func (c *Client) DeleteMessage(ctx context.Context, chatID tg.ChatID, messageID int) error {
	if err := validateChatMessage(chatID, messageID); err != nil {
		return err
	}
	return exec(ctx, c, "deleteMessage", payload.Data{payload.ChatID: chatID, payload.MessageID: messageID})
}

// DeleteMessages deletes up to 100 messages. Missing messages are skipped.
func (c *Client) DeleteMessages(ctx context.Context, chatID tg.ChatID, messageIDs []int) error {
	if err := validate.First(validateChat(chatID), validate.MessageIDs(messageIDs)); err != nil {
		return err
	}
	return exec(ctx, c, "deleteMessages", payload.Data{payload.ChatID: chatID, payload.MessageIDs: messageIDs})
}
