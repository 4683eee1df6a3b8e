package sender

import (
	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// validateMethod rejects method names that would escape the /bot<token>/ path.
func validateMethod(method string) error {
	if method == "" {
		return tg.NewValidationError("method", "is required")
	}
	for _, r := range method {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return tg.NewValidationError("method", "must be alphanumeric")
		}
	}
	return nil
}

func validateChat(chatID tg.ChatID) error {
	return validate.ChatID("chat_id", chatID)
}

func validateChatMessage(chatID tg.ChatID, messageID int) error {
	return validate.First(validate.ChatID("chat_id", chatID), validate.MessageID(messageID))
}

func validateChatUser(chatID tg.ChatID, userID int64) error {
	return validate.First(validate.ChatID("chat_id", chatID), validate.UserID(userID))
}

func (c *Client) validateText(text string) error {
	return validate.Text(text, c.config.MaxTextLength)
}

// validateCaption checks a caption set through options.
func (c *Client) validateCaption(d payload.Data) error {
	if caption, ok := d[payload.Caption].(string); ok {
		return validate.Caption(caption, c.config.MaxCaptionLength)
	}
	return nil
}
