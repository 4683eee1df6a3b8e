package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// SendMessage sends a text message.
//
//	msg, err := client.SendMessage(ctx, chatID, "Hello", payload.WithParseMode(tg.ParseModeHTML))
func (c *Client) SendMessage(ctx context.Context, chatID tg.ChatID, text string, opts ...payload.Option) (*tg.Message, error) {
	if err := validateChat(chatID); err != nil {
		return nil, err
	}
	if err := c.validateText(text); err != nil {
		return nil, err
	}
	d := payload.Data{payload.ChatID: chatID, payload.Text: text}
	return call[*tg.Message](ctx, c, "sendMessage", d.Apply(opts...))
}

// ForwardMessage forwards a message.
func (c *Client) ForwardMessage(ctx context.Context, chatID, fromChatID tg.ChatID, messageID int, opts ...payload.Option) (*tg.Message, error) {
	if err := validate.First(validateChat(chatID), validate.ChatID("from_chat_id", fromChatID), validate.MessageID(messageID)); err != nil {
		return nil, err
	}
	d := payload.Data{
		payload.ChatID:     chatID,
		payload.FromChatID: fromChatID,
		payload.MessageID:  messageID,
	}
	return call[*tg.Message](ctx, c, "forwardMessage", d.Apply(opts...))
}

// ForwardMessages forwards up to 100 messages, preserving their order.
func (c *Client) ForwardMessages(ctx context.Context, chatID, fromChatID tg.ChatID, messageIDs []int, opts ...payload.Option) ([]tg.MessageID, error) {
	if err := validate.First(validateChat(chatID), validate.ChatID("from_chat_id", fromChatID), validate.MessageIDs(messageIDs)); err != nil {
		return nil, err
	}
	d := payload.Data{
		payload.ChatID:     chatID,
		payload.FromChatID: fromChatID,
		payload.MessageIDs: messageIDs,
	}
	return call[[]tg.MessageID](ctx, c, "forwardMessages", d.Apply(opts...))
}

// CopyMessage copies a message without a link to the original.
func (c *Client) CopyMessage(ctx context.Context, chatID, fromChatID tg.ChatID, messageID int, opts ...payload.Option) (*tg.MessageID, error) {
	if err := validate.First(validateChat(chatID), validate.ChatID("from_chat_id", fromChatID), validate.MessageID(messageID)); err != nil {
		return nil, err
	}
	d := payload.Data{
		payload.ChatID:     chatID,
		payload.FromChatID: fromChatID,
		payload.MessageID:  messageID,
	}.Apply(opts...)
	if err := c.validateCaption(d); err != nil {
		return nil, err
	}
	return call[*tg.MessageID](ctx, c, "copyMessage", d)
}

// CopyMessages copies up to 100 messages. Album grouping is kept.
func (c *Client) CopyMessages(ctx context.Context, chatID, fromChatID tg.ChatID, messageIDs []int, opts ...payload.Option) ([]tg.MessageID, error) {
	if err := validate.First(validateChat(chatID), validate.ChatID("from_chat_id", fromChatID), validate.MessageIDs(messageIDs)); err != nil {
		return nil, err
	}
	d := payload.Data{
		payload.ChatID:     chatID,
		payload.FromChatID: fromChatID,
		payload.MessageIDs: messageIDs,
	}
	return call[[]tg.MessageID](ctx, c, "copyMessages", d.Apply(opts...))
}

// sendFile is the shared body of the single-file send methods.
func (c *Client) sendFile(ctx context.Context, method string, key payload.Key, chatID tg.ChatID, f tg.InputFile, opts []payload.Option) (*tg.Message, error) {
	if err := validate.First(validateChat(chatID), validate.File(key.Wire(), f)); err != nil {
		return nil, err
	}
	d := payload.Data{payload.ChatID: chatID, key: f}.Apply(opts...)
	if err := c.validateCaption(d); err != nil {
		return nil, err
	}
	return call[*tg.Message](ctx, c, method, d)
}

// SendPhoto sends a photo by file ID, URL or upload.
func (c *Client) SendPhoto(ctx context.Context, chatID tg.ChatID, photo tg.InputFile, opts ...payload.Option) (*tg.Message, error) {
	return c.sendFile(ctx, "sendPhoto", payload.Photo, chatID, photo, opts)
}

// SendAudio sends an audio file to be shown in the music player.
func (c *Client) SendAudio(ctx context.Context, chatID tg.ChatID, audio tg.InputFile, opts ...payload.Option) (*tg.Message, error) {
	return c.sendFile(ctx, "sendAudio", payload.Audio, chatID, audio, opts)
}

// SendDocument sends a general file.
func (c *Client) SendDocument(ctx context.Context, chatID tg.ChatID, document tg.InputFile, opts ...payload.Option) (*tg.Message, error) {
	return c.sendFile(ctx, "sendDocument", payload.Document, chatID, document, opts)
}

// SendVideo sends a video.
func (c *Client) SendVideo(ctx context.Context, chatID tg.ChatID, video tg.InputFile, opts ...payload.Option) (*tg.Message, error) {
	return c.sendFile(ctx, "sendVideo", payload.Video, chatID, video, opts)
}

// SendAnimation sends a GIF or a silent H.264 video.
func (c *Client) SendAnimation(ctx context.Context, chatID tg.ChatID, animation tg.InputFile, opts ...payload.Option) (*tg.Message, error) {
	return c.sendFile(ctx, "sendAnimation", payload.Animation, chatID, animation, opts)
}

// SendVoice sends an OGG/OPUS, MP3 or M4A voice message.
func (c *Client) SendVoice(ctx context.Context, chatID tg.ChatID, voice tg.InputFile, opts ...payload.Option) (*tg.Message, error) {
	return c.sendFile(ctx, "sendVoice", payload.Voice, chatID, voice, opts)
}

// SendVideoNote sends a rounded square video message.
func (c *Client) SendVideoNote(ctx context.Context, chatID tg.ChatID, note tg.InputFile, opts ...payload.Option) (*tg.Message, error) {
	return c.sendFile(ctx, "sendVideoNote", payload.VideoNote, chatID, note, opts)
}

// SendMediaGroup sends 2 to 10 photos, videos, documents or audios as an album.
func (c *Client) SendMediaGroup(ctx context.Context, chatID tg.ChatID, media []tg.InputMedia, opts ...payload.Option) ([]tg.Message, error) {
	if err := validateChat(chatID); err != nil {
		return nil, err
	}
	if len(media) < 2 || len(media) > 10 {
		return nil, tg.NewValidationError("media", "must contain 2-10 items")
	}
	for _, m := range media {
		if m == nil {
			return nil, tg.NewValidationError("media", "must not contain nil items")
		}
	}
	d := payload.Data{payload.ChatID: chatID, payload.Media: media}
	return call[[]tg.Message](ctx, c, "sendMediaGroup", d.Apply(opts...))
}

// SendLocation sends a point on the map. Set payload.LivePeriod to share a
// live location.
func (c *Client) SendLocation(ctx context.Context, chatID tg.ChatID, latitude, longitude float64, opts ...payload.Option) (*tg.Message, error) {
	if err := validateChat(chatID); err != nil {
		return nil, err
	}
	d := payload.Data{
		payload.ChatID:    chatID,
		payload.Latitude:  latitude,
		payload.Longitude: longitude,
	}
	return call[*tg.Message](ctx, c, "sendLocation", d.Apply(opts...))
}

// SendVenue sends information about a venue.
func (c *Client) SendVenue(ctx context.Context, chatID tg.ChatID, latitude, longitude float64, title, address string, opts ...payload.Option) (*tg.Message, error) {
	if err := validate.First(validateChat(chatID), validate.Required("title", title), validate.Required("address", address)); err != nil {
		return nil, err
	}
	d := payload.Data{
		payload.ChatID:    chatID,
		payload.Latitude:  latitude,
		payload.Longitude: longitude,
		payload.Title:     title,
		payload.Address:   address,
	}
	return call[*tg.Message](ctx, c, "sendVenue", d.Apply(opts...))
}

// SendContact sends a phone contact.
func (c *Client) SendContact(ctx context.Context, chatID tg.ChatID, phoneNumber, firstName string, opts ...payload.Option) (*tg.Message, error) {
	if err := validate.First(validateChat(chatID), validate.Required("phone_number", phoneNumber), validate.Required("first_name", firstName)); err != nil {
		return nil, err
	}
	d := payload.Data{
		payload.ChatID:      chatID,
		payload.PhoneNumber: phoneNumber,
		payload.FirstName:   firstName,
	}
	return call[*tg.Message](ctx, c, "sendContact", d.Apply(opts...))
}

// SendPoll sends a native poll with 2 to 10 options. Use Quiz for quizzes.
func (c *Client) SendPoll(ctx context.Context, chatID tg.ChatID, question string, options []tg.InputPollOption, opts ...payload.Option) (*tg.Message, error) {
	if err := validate.First(validateChat(chatID), validate.Required("question", question)); err != nil {
		return nil, err
	}
	if len(options) < 2 || len(options) > 10 {
		return nil, tg.NewValidationError("options", "must contain 2-10 items")
	}
	d := payload.Data{
		payload.ChatID:   chatID,
		payload.Question: question,
		payload.Options:  options,
	}.Apply(opts...)
	if id, ok := d[payload.CorrectOptionID].(int); ok {
		if err := validate.InRange("correct_option_id", id, 0, len(options)-1); err != nil {
			return nil, err
		}
	}
	return call[*tg.Message](ctx, c, "sendPoll", d)
}

// PollOptions builds poll options from plain strings.
func PollOptions(texts ...string) []tg.InputPollOption {
	out := make([]tg.InputPollOption, len(texts))
	for i, t := range texts {
		out[i] = tg.InputPollOption{Text: t}
	}
	return out
}

// SendDice sends an animated emoji with a random value. An empty emoji means 🎲.
func (c *Client) SendDice(ctx context.Context, chatID tg.ChatID, emoji string, opts ...payload.Option) (*tg.Message, error) {
	if err := validateChat(chatID); err != nil {
		return nil, err
	}
	d := payload.Data{payload.ChatID: chatID}
	if emoji != "" {
		d.Set(payload.Emoji, emoji)
	}
	return call[*tg.Message](ctx, c, "sendDice", d.Apply(opts...))
}

// SendChatAction shows a status such as "typing" for up to 5 seconds.
func (c *Client) SendChatAction(ctx context.Context, chatID tg.ChatID, action tg.ChatAction, opts ...payload.Option) error {
	if err := validate.First(validateChat(chatID), validate.Required("action", string(action))); err != nil {
		return err
	}
	d := payload.Data{payload.ChatID: chatID, payload.Action: action}
	return exec(ctx, c, "sendChatAction", d.Apply(opts...))
}

// SetMessageReaction replaces the bot's reactions on a message. No reactions
// clears them.
func (c *Client) SetMessageReaction(ctx context.Context, chatID tg.ChatID, messageID int, reactions []tg.ReactionType, opts ...payload.Option) error {
	if err := validateChatMessage(chatID, messageID); err != nil {
		return err
	}
	if reactions == nil {
		reactions = []tg.ReactionType{}
	}
	d := payload.Data{
		payload.ChatID:    chatID,
		payload.MessageID: messageID,
		payload.Reaction:  reactions,
	}
	return exec(ctx, c, "setMessageReaction", d.Apply(opts...))
}

// GetUserProfilePhotos returns a user's profile pictures.
func (c *Client) GetUserProfilePhotos(ctx context.Context, userID int64, opts ...payload.Option) (*tg.UserProfilePhotos, error) {
	if err := validate.UserID(userID); err != nil {
		return nil, err
	}
	d := payload.Data{payload.UserID: userID}
	return call[*tg.UserProfilePhotos](ctx, c, "getUserProfilePhotos", d.Apply(opts...))
}

// GetFile prepares a file for download. Use FileURL or Download on the result.
func (c *Client) GetFile(ctx context.Context, fileID string) (*tg.File, error) {
	if err := validate.Required("file_id", fileID); err != nil {
		return nil, err
	}
	return call[*tg.File](ctx, c, "getFile", payload.Data{payload.FileID: fileID})
}
