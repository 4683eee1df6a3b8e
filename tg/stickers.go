package tg

import (
	"context"

	"github.com/prilive-com/tgbind/payload"
)

// Sticker formats and types.
const (
	StickerStatic   = "static"
	StickerAnimated = "animated"
	StickerVideo    = "video"

	StickerTypeRegular     = "regular"
	StickerTypeMask        = "mask"
	StickerTypeCustomEmoji = "custom_emoji"
)

// Sticker is a sticker.
type Sticker struct {
	FileID           string        `json:"file_id"`
	FileUniqueID     string        `json:"file_unique_id"`
	Type             string        `json:"type"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	IsAnimated       bool          `json:"is_animated"`
	IsVideo          bool          `json:"is_video"`
	Thumbnail        *PhotoSize    `json:"thumbnail,omitempty"`
	Emoji            string        `json:"emoji,omitempty"`
	SetName          string        `json:"set_name,omitempty"`
	PremiumAnimation *File         `json:"premium_animation,omitempty"`
	MaskPosition     *MaskPosition `json:"mask_position,omitempty"`
	CustomEmojiID    string        `json:"custom_emoji_id,omitempty"`
	NeedsRepainting  bool          `json:"needs_repainting,omitempty"`
	FileSize         int64         `json:"file_size,omitempty"`

	api Caller
}

// Bind implements Bindable.
func (s *Sticker) Bind(c Caller) {
	if s == nil {
		return
	}
	s.api = c
	s.PremiumAnimation.Bind(c)
}

// Format returns "static", "animated" or "video".
func (s *Sticker) Format() string {
	switch {
	case s.IsAnimated:
		return StickerAnimated
	case s.IsVideo:
		return StickerVideo
	}
	return StickerStatic
}

func (s *Sticker) data() payload.Data {
	return payload.Data{payload.Sticker: s.FileID}
}

// Delete removes the sticker from the set the bot created.
func (s *Sticker) Delete(ctx context.Context) error {
	return exec(ctx, s.api, "deleteStickerFromSet", s.data())
}

// SetPosition moves the sticker to a zero-based position in its set.
func (s *Sticker) SetPosition(ctx context.Context, position int) error {
	return exec(ctx, s.api, "setStickerPositionInSet", s.data().Set(payload.Position, position))
}

// SetEmojiList changes the emoji associated with the sticker.
func (s *Sticker) SetEmojiList(ctx context.Context, emoji ...string) error {
	return exec(ctx, s.api, "setStickerEmojiList", s.data().Set(payload.EmojiList, emoji))
}

// StickerSet is a named set of stickers.
type StickerSet struct {
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	StickerType string     `json:"sticker_type"`
	Stickers    []Sticker  `json:"stickers"`
	Thumbnail   *PhotoSize `json:"thumbnail,omitempty"`

	api Caller
}

// Bind implements Bindable.
func (s *StickerSet) Bind(c Caller) {
	if s == nil {
		return
	}
	s.api = c
	bindAll(s.Stickers, c)
}

// Delete deletes the set.
func (s *StickerSet) Delete(ctx context.Context) error {
	return exec(ctx, s.api, "deleteStickerSet", payload.Data{payload.Name: s.Name})
}

// SetTitle renames the set.
func (s *StickerSet) SetTitle(ctx context.Context, title string) error {
	d := payload.Data{payload.Name: s.Name, payload.Title: title}
	return exec(ctx, s.api, "setStickerSetTitle", d)
}

// MaskPosition places a mask on a face.
type MaskPosition struct {
	Point  string  `json:"point"`
	XShift float64 `json:"x_shift"`
	YShift float64 `json:"y_shift"`
	Scale  float64 `json:"scale"`
}

// InputSticker is a sticker to add to a set.
type InputSticker struct {
	Sticker      InputFile     `json:"sticker"`
	Format       string        `json:"format"`
	EmojiList    []string      `json:"emoji_list"`
	MaskPosition *MaskPosition `json:"mask_position,omitempty"`
	Keywords     []string      `json:"keywords,omitempty"`
}

// Attach implements payload.Attacher. Stickers are sent inside JSON, so
// uploads are always referenced with attach://.
func (s InputSticker) Attach(files *payload.Files, _ string) any {
	s.Sticker = s.Sticker.attached(files)
	return s
}

var _ payload.Attacher = InputSticker{}
