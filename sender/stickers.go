package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// SendSticker sends a static, animated or video sticker.
func (c *Client) SendSticker(ctx context.Context, chatID tg.ChatID, sticker tg.InputFile, opts ...payload.Option) (*tg.Message, error) {
	return c.sendFile(ctx, "sendSticker", payload.Sticker, chatID, sticker, opts)
}

// GetStickerSet returns a sticker set by name.
func (c *Client) GetStickerSet(ctx context.Context, name string) (*tg.StickerSet, error) {
	if err := validate.Required("name", name); err != nil {
		return nil, err
	}
	return call[*tg.StickerSet](ctx, c, "getStickerSet", payload.Data{payload.Name: name})
}

// GetCustomEmojiStickers returns up to 200 custom emoji stickers by ID.
func (c *Client) GetCustomEmojiStickers(ctx context.Context, ids ...string) ([]tg.Sticker, error) {
	if err := validate.NotEmpty("custom_emoji_ids", ids); err != nil {
		return nil, err
	}
	if len(ids) > 200 {
		return nil, tg.NewValidationError("custom_emoji_ids", "cannot exceed 200 items")
	}
	return call[[]tg.Sticker](ctx, c, "getCustomEmojiStickers", payload.Data{payload.CustomEmojiIDs: ids})
}

// UploadStickerFile uploads a file for later use in sticker set methods.
// format is tg.StickerStatic, tg.StickerAnimated or tg.StickerVideo.
func (c *Client) UploadStickerFile(ctx context.Context, userID int64, sticker tg.InputFile, format string) (*tg.File, error) {
	if err := validate.First(validate.UserID(userID), validate.File("sticker", sticker), validateStickerFormat(format)); err != nil {
		return nil, err
	}
	d := payload.Data{
		payload.UserID:        userID,
		payload.Sticker:       sticker,
		payload.StickerFormat: format,
	}
	return call[*tg.File](ctx, c, "uploadStickerFile", d)
}

// CreateNewStickerSet creates a set owned by userID with 1 to 50 stickers.
// Set names must end in "_by_<bot_username>".
func (c *Client) CreateNewStickerSet(ctx context.Context, userID int64, name, title string, stickers []tg.InputSticker, opts ...payload.Option) error {
	if err := validate.First(validate.UserID(userID), validate.Required("name", name), validate.Required("title", title)); err != nil {
		return err
	}
	if len(stickers) == 0 || len(stickers) > 50 {
		return tg.NewValidationError("stickers", "must contain 1-50 items")
	}
	for _, s := range stickers {
		if err := validateInputSticker(s); err != nil {
			return err
		}
	}
	d := payload.Data{
		payload.UserID:   userID,
		payload.Name:     name,
		payload.Title:    title,
		payload.Stickers: stickers,
	}
	return exec(ctx, c, "createNewStickerSet", d.Apply(opts...))
}

// AddStickerToSet adds a sticker to a set created by the bot.
func (c *Client) AddStickerToSet(ctx context.Context, userID int64, name string, sticker tg.InputSticker) error {
	if err := validate.First(validate.UserID(userID), validate.Required("name", name), validateInputSticker(sticker)); err != nil {
		return err
	}
	d := payload.Data{payload.UserID: userID, payload.Name: name, payload.Sticker: sticker}
	return exec(ctx, c, "addStickerToSet", d)
}

// SetStickerPositionInSet moves a sticker to a zero-based position.
func (c *Client) SetStickerPositionInSet(ctx context.Context, sticker string, position int) error {
	if err := validate.Required("sticker", sticker); err != nil {
		return err
	}
	if position < 0 {
		return tg.NewValidationError("position", "cannot be negative")
	}
	return exec(ctx, c, "setStickerPositionInSet", payload.Data{payload.Sticker: sticker, payload.Position: position})
}

// DeleteStickerFromSet removes a sticker from a set created by the bot.
func (c *Client) DeleteStickerFromSet(ctx context.Context, sticker string) error {
	if err := validate.Required("sticker", sticker); err != nil {
		return err
	}
	return exec(ctx, c, "deleteStickerFromSet", payload.Data{payload.Sticker: sticker})
}

// ReplaceStickerInSet replaces oldSticker with sticker, keeping its position.
func (c *Client) ReplaceStickerInSet(ctx context.Context, userID int64, name, oldSticker string, sticker tg.InputSticker) error {
	if err := validate.First(
		validate.UserID(userID),
		validate.Required("name", name),
		validate.Required("old_sticker", oldSticker),
		validateInputSticker(sticker),
	); err != nil {
		return err
	}
	d := payload.Data{
		payload.UserID:     userID,
		payload.Name:       name,
		payload.OldSticker: oldSticker,
		payload.Sticker:    sticker,
	}
	return exec(ctx, c, "replaceStickerInSet", d)
}

// SetStickerEmojiList changes the 1 to 20 emoji of a regular or custom emoji sticker.
func (c *Client) SetStickerEmojiList(ctx context.Context, sticker string, emoji []string) error {
	if err := validate.First(validate.Required("sticker", sticker), validateEmojiList(emoji)); err != nil {
		return err
	}
	return exec(ctx, c, "setStickerEmojiList", payload.Data{payload.Sticker: sticker, payload.EmojiList: emoji})
}

// SetStickerKeywords changes the search keywords of a sticker. No keywords
// clears them.
func (c *Client) SetStickerKeywords(ctx context.Context, sticker string, keywords []string) error {
	if err := validate.Required("sticker", sticker); err != nil {
		return err
	}
	if len(keywords) > 20 {
		return tg.NewValidationError("keywords", "cannot exceed 20 items")
	}
	if keywords == nil {
		keywords = []string{}
	}
	return exec(ctx, c, "setStickerKeywords", payload.Data{payload.Sticker: sticker, payload.Keywords: keywords})
}

// SetStickerMaskPosition changes the mask position of a mask sticker. nil
// removes it.
func (c *Client) SetStickerMaskPosition(ctx context.Context, sticker string, position *tg.MaskPosition) error {
	if err := validate.Required("sticker", sticker); err != nil {
		return err
	}
	d := payload.Data{payload.Sticker: sticker}.Set(payload.MaskPosition, position)
	return exec(ctx, c, "setStickerMaskPosition", d)
}

// SetStickerSetTitle renames a set created by the bot.
func (c *Client) SetStickerSetTitle(ctx context.Context, name, title string) error {
	if err := validate.First(validate.Required("name", name), validate.Required("title", title)); err != nil {
		return err
	}
	return exec(ctx, c, "setStickerSetTitle", payload.Data{payload.Name: name, payload.Title: title})
}

// SetStickerSetThumbnail sets the thumbnail of a regular or mask set. Pass
// payload.Thumbnail through opts; without it the first sticker is used.
func (c *Client) SetStickerSetThumbnail(ctx context.Context, name string, userID int64, format string, opts ...payload.Option) error {
	if err := validate.First(validate.Required("name", name), validate.UserID(userID), validateStickerFormat(format)); err != nil {
		return err
	}
	d := payload.Data{
		payload.Name:   name,
		payload.UserID: userID,
		payload.Format: format,
	}
	return exec(ctx, c, "setStickerSetThumbnail", d.Apply(opts...))
}

// SetCustomEmojiStickerSetThumbnail sets a custom emoji set's thumbnail. An
// empty customEmojiID uses the first sticker.
func (c *Client) SetCustomEmojiStickerSetThumbnail(ctx context.Context, name, customEmojiID string) error {
	if err := validate.Required("name", name); err != nil {
		return err
	}
	d := payload.Data{payload.Name: name}
	if customEmojiID != "" {
		d.Set(payload.CustomEmojiID, customEmojiID)
	}
	return exec(ctx, c, "setCustomEmojiStickerSetThumbnail", d)
}

// DeleteStickerSet deletes a set created by the bot.
func (c *Client) DeleteStickerSet(ctx context.Context, name string) error {
	if err := validate.Required("name", name); err != nil {
		return err
	}
	return exec(ctx, c, "deleteStickerSet", payload.Data{payload.Name: name})
}

func validateStickerFormat(format string) error {
	switch format {
	case tg.StickerStatic, tg.StickerAnimated, tg.StickerVideo:
		return nil
	}
	return tg.NewValidationError("sticker_format", "must be static, animated or video")
}

func validateEmojiList(emoji []string) error {
	if len(emoji) == 0 || len(emoji) > 20 {
		return tg.NewValidationError("emoji_list", "must contain 1-20 items")
	}
	return nil
}

func validateInputSticker(s tg.InputSticker) error {
	return validate.First(validate.File("sticker", s.Sticker), validateStickerFormat(s.Format), validateEmojiList(s.EmojiList))
}
