package tg

import (
	"encoding/json"

	"github.com/prilive-com/tgbind/payload"
)

// InputMedia is an element of sendMediaGroup or the new content of
// editMessageMedia. Implementations: InputMediaPhoto, InputMediaVideo,
// InputMediaAnimation, InputMediaAudio and InputMediaDocument.
type InputMedia interface {
	payload.Attacher
	MediaType() string
}

// InputMediaPhoto is a photo to send.
type InputMediaPhoto struct {
	Media                 InputFile       `json:"media"`
	Caption               string          `json:"caption,omitempty"`
	ParseMode             ParseMode       `json:"parse_mode,omitempty"`
	CaptionEntities       []MessageEntity `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool            `json:"show_caption_above_media,omitempty"`
	HasSpoiler            bool            `json:"has_spoiler,omitempty"`
}

// InputMediaVideo is a video to send.
type InputMediaVideo struct {
	Media                 InputFile       `json:"media"`
	Thumbnail             *InputFile      `json:"thumbnail,omitempty"`
	Cover                 *InputFile      `json:"cover,omitempty"`
	StartTimestamp        int             `json:"start_timestamp,omitempty"`
	Caption               string          `json:"caption,omitempty"`
	ParseMode             ParseMode       `json:"parse_mode,omitempty"`
	CaptionEntities       []MessageEntity `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool            `json:"show_caption_above_media,omitempty"`
	Width                 int             `json:"width,omitempty"`
	Height                int             `json:"height,omitempty"`
	Duration              int             `json:"duration,omitempty"`
	SupportsStreaming     bool            `json:"supports_streaming,omitempty"`
	HasSpoiler            bool            `json:"has_spoiler,omitempty"`
}

// InputMediaAnimation is an animation to send.
type InputMediaAnimation struct {
	Media                 InputFile       `json:"media"`
	Thumbnail             *InputFile      `json:"thumbnail,omitempty"`
	Caption               string          `json:"caption,omitempty"`
	ParseMode             ParseMode       `json:"parse_mode,omitempty"`
	CaptionEntities       []MessageEntity `json:"caption_entities,omitempty"`
	ShowCaptionAboveMedia bool            `json:"show_caption_above_media,omitempty"`
	Width                 int             `json:"width,omitempty"`
	Height                int             `json:"height,omitempty"`
	Duration              int             `json:"duration,omitempty"`
	HasSpoiler            bool            `json:"has_spoiler,omitempty"`
}

// InputMediaAudio is an audio file to send.
type InputMediaAudio struct {
	Media           InputFile       `json:"media"`
	Thumbnail       *InputFile      `json:"thumbnail,omitempty"`
	Caption         string          `json:"caption,omitempty"`
	ParseMode       ParseMode       `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	Duration        int             `json:"duration,omitempty"`
	Performer       string          `json:"performer,omitempty"`
	Title           string          `json:"title,omitempty"`
}

// InputMediaDocument is a general file to send.
type InputMediaDocument struct {
	Media                       InputFile       `json:"media"`
	Thumbnail                   *InputFile      `json:"thumbnail,omitempty"`
	Caption                     string          `json:"caption,omitempty"`
	ParseMode                   ParseMode       `json:"parse_mode,omitempty"`
	CaptionEntities             []MessageEntity `json:"caption_entities,omitempty"`
	DisableContentTypeDetection bool            `json:"disable_content_type_detection,omitempty"`
}

func attachThumb(f *InputFile, files *payload.Files) *InputFile {
	if f == nil {
		return nil
	}
	a := f.attached(files)
	return &a
}

func (m InputMediaPhoto) MediaType() string { return "photo" }

// Attach implements payload.Attacher.
func (m InputMediaPhoto) Attach(files *payload.Files, _ string) any {
	m.Media = m.Media.attached(files)
	return m
}

// MarshalJSON adds the type discriminator.
func (m InputMediaPhoto) MarshalJSON() ([]byte, error) {
	type alias InputMediaPhoto
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{m.MediaType(), alias(m)})
}

func (m InputMediaVideo) MediaType() string { return "video" }

// Attach implements payload.Attacher.
func (m InputMediaVideo) Attach(files *payload.Files, _ string) any {
	m.Media = m.Media.attached(files)
	m.Thumbnail = attachThumb(m.Thumbnail, files)
	m.Cover = attachThumb(m.Cover, files)
	return m
}

// MarshalJSON adds the type discriminator.
func (m InputMediaVideo) MarshalJSON() ([]byte, error) {
	type alias InputMediaVideo
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{m.MediaType(), alias(m)})
}

func (m InputMediaAnimation) MediaType() string { return "animation" }

// Attach implements payload.Attacher.
func (m InputMediaAnimation) Attach(files *payload.Files, _ string) any {
	m.Media = m.Media.attached(files)
	m.Thumbnail = attachThumb(m.Thumbnail, files)
	return m
}

// MarshalJSON adds the type discriminator.
func (m InputMediaAnimation) MarshalJSON() ([]byte, error) {
	type alias InputMediaAnimation
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{m.MediaType(), alias(m)})
}

func (m InputMediaAudio) MediaType() string { return "audio" }

// Attach implements payload.Attacher.
func (m InputMediaAudio) Attach(files *payload.Files, _ string) any {
	m.Media = m.Media.attached(files)
	m.Thumbnail = attachThumb(m.Thumbnail, files)
	return m
}

// MarshalJSON adds the type discriminator.
func (m InputMediaAudio) MarshalJSON() ([]byte, error) {
	type alias InputMediaAudio
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{m.MediaType(), alias(m)})
}

func (m InputMediaDocument) MediaType() string { return "document" }

// Attach implements payload.Attacher.
func (m InputMediaDocument) Attach(files *payload.Files, _ string) any {
	m.Media = m.Media.attached(files)
	m.Thumbnail = attachThumb(m.Thumbnail, files)
	return m
}

// MarshalJSON adds the type discriminator.
func (m InputMediaDocument) MarshalJSON() ([]byte, error) {
	type alias InputMediaDocument
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{m.MediaType(), alias(m)})
}

var (
	_ InputMedia = InputMediaPhoto{}
	_ InputMedia = InputMediaVideo{}
	_ InputMedia = InputMediaAnimation{}
	_ InputMedia = InputMediaAudio{}
	_ InputMedia = InputMediaDocument{}
)
