package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

func topicData(chatID tg.ChatID, threadID int) (payload.Data, error) {
	if err := validateChat(chatID); err != nil {
		return nil, err
	}
	if threadID <= 0 {
		return nil, tg.NewValidationError("message_thread_id", "must be positive")
	}
	return payload.Data{payload.ChatID: chatID, payload.MessageThreadID: threadID}, nil
}

// CreateForumTopic creates a topic in a forum supergroup.
// Set payload.IconColor to one of the tg.ForumColor constants.
func (c *Client) CreateForumTopic(ctx context.Context, chatID tg.ChatID, name string, opts ...payload.Option) (*tg.ForumTopic, error) {
	if err := validate.First(validateChat(chatID), validate.Required("name", name)); err != nil {
		return nil, err
	}
	if len([]rune(name)) > 128 {
		return nil, tg.NewValidationError("name", "must be at most 128 characters")
	}
	d := payload.Data{payload.ChatID: chatID, payload.Name: name}
	return call[*tg.ForumTopic](ctx, c, "createForumTopic", d.Apply(opts...))
}

// EditForumTopic changes a topic's name or icon. Pass payload.Name and
// payload.IconCustomEmojiID through opts.
func (c *Client) EditForumTopic(ctx context.Context, chatID tg.ChatID, threadID int, opts ...payload.Option) error {
	d, err := topicData(chatID, threadID)
	if err != nil {
		return err
	}
	return exec(ctx, c, "editForumTopic", d.Apply(opts...))
}

// CloseForumTopic closes an open topic.
func (c *Client) CloseForumTopic(ctx context.Context, chatID tg.ChatID, threadID int) error {
	return c.topicCall(ctx, "closeForumTopic", chatID, threadID)
}

// ReopenForumTopic reopens a closed topic.
func (c *Client) ReopenForumTopic(ctx context.Context, chatID tg.ChatID, threadID int) error {
	return c.topicCall(ctx, "reopenForumTopic", chatID, threadID)
}

// DeleteForumTopic deletes a topic with all its messages.
func (c *Client) DeleteForumTopic(ctx context.Context, chatID tg.ChatID, threadID int) error {
	return c.topicCall(ctx, "deleteForumTopic", chatID, threadID)
}

// UnpinAllForumTopicMessages clears the pinned messages of a topic.
func (c *Client) UnpinAllForumTopicMessages(ctx context.Context, chatID tg.ChatID, threadID int) error {
	return c.topicCall(ctx, "unpinAllForumTopicMessages", chatID, threadID)
}

// GetForumTopicIconStickers returns the custom emoji stickers usable as topic icons.
func (c *Client) GetForumTopicIconStickers(ctx context.Context) ([]tg.Sticker, error) {
	return call[[]tg.Sticker](ctx, c, "getForumTopicIconStickers", nil)
}

func (c *Client) topicCall(ctx context.Context, method string, chatID tg.ChatID, threadID int) error {
	d, err := topicData(chatID, threadID)
	if err != nil {
		return err
	}
	return exec(ctx, c, method, d)
}
