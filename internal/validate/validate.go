// Package validate checks request arguments before they reach the network.
// Every failure is a *tg.ValidationError naming the wire field.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prilive-com/tgbind/tg"
)

// Telegram limits, in characters.
const (
	MaxTextLength         = 4096
	MaxCaptionLength      = 1024
	MaxCallbackTextLength = 200
	MaxCallbackDataBytes  = 64
	MaxBulkMessages       = 100
)

func newf(field, format string, args ...any) error {
	return tg.NewValidationError(field, fmt.Sprintf(format, args...))
}

// Token validates a Telegram bot token format.
// Format: {bot_id}:{secret} where bot_id is numeric.
func Token(token string) error {
	if token == "" {
		return tg.NewValidationError("token", "cannot be empty")
	}
	botID, secret, ok := strings.Cut(token, ":")
	if !ok {
		return tg.NewValidationError("token", "invalid format, expected {bot_id}:{secret}")
	}
	if _, err := strconv.ParseUint(botID, 10, 64); err != nil {
		return tg.NewValidationError("token", "bot_id must be numeric")
	}
	if secret == "" {
		return tg.NewValidationError("token", "secret cannot be empty")
	}
	return nil
}

// ChatID validates a chat identifier under field.
// Valid: a non-zero integer, a numeric string, or an @username.
func ChatID(field string, chatID tg.ChatID) error {
	switch v := chatID.(type) {
	case nil:
		return tg.NewValidationError(field, "is required")
	case int64:
		if v == 0 {
			return tg.NewValidationError(field, "cannot be zero")
		}
	case int:
		if v == 0 {
			return tg.NewValidationError(field, "cannot be zero")
		}
	case string:
		if v == "" {
			return tg.NewValidationError(field, "cannot be empty")
		}
		if strings.HasPrefix(v, "@") {
			return nil
		}
		if id, err := strconv.ParseInt(v, 10, 64); err != nil || id == 0 {
			return tg.NewValidationError(field, "string chat_id must be numeric or start with @")
		}
	default:
		return newf(field, "invalid type %T, expected int64 or string", chatID)
	}
	return nil
}

// UserID validates a user identifier.
func UserID(id int64) error {
	if id <= 0 {
		return newf("user_id", "must be positive, got %d", id)
	}
	return nil
}

// MessageID validates a message identifier.
func MessageID(id int) error {
	if id <= 0 {
		return newf("message_id", "must be positive, got %d", id)
	}
	return nil
}

// MessageIDs validates a list of message identifiers for bulk operations.
func MessageIDs(ids []int) error {
	if len(ids) == 0 {
		return tg.NewValidationError("message_ids", "cannot be empty")
	}
	if len(ids) > MaxBulkMessages {
		return newf("message_ids", "cannot exceed %d messages, got %d", MaxBulkMessages, len(ids))
	}
	for i, id := range ids {
		if id <= 0 {
			return newf("message_ids", "element %d must be positive, got %d", i, id)
		}
	}
	return nil
}

// Text validates message text.
func Text(text string, maxLen int) error {
	if strings.TrimSpace(text) == "" {
		return tg.NewValidationError("text", "cannot be empty")
	}
	if n := utf8.RuneCountInString(text); n > maxLen {
		return newf("text", "exceeds maximum length of %d characters, got %d", maxLen, n)
	}
	return nil
}

// Caption validates media caption.
func Caption(caption string, maxLen int) error {
	if n := utf8.RuneCountInString(caption); n > maxLen {
		return newf("caption", "exceeds maximum length of %d characters, got %d", maxLen, n)
	}
	return nil
}

// CallbackData validates inline keyboard callback data.
func CallbackData(data string) error {
	if data == "" {
		return tg.NewValidationError("callback_data", "cannot be empty")
	}
	if len(data) > MaxCallbackDataBytes {
		return newf("callback_data", "exceeds maximum length of %d bytes", MaxCallbackDataBytes)
	}
	return nil
}

// WebhookURL validates a webhook URL (must be HTTPS).
func WebhookURL(url string) error {
	if url == "" {
		return tg.NewValidationError("url", "cannot be empty")
	}
	if !strings.HasPrefix(url, "https://") {
		return tg.NewValidationError("url", "webhook URL must use HTTPS")
	}
	return nil
}

// File validates that an input file references something.
func File(field string, f tg.InputFile) error {
	if f.IsZero() {
		return tg.NewValidationError(field, "is required")
	}
	return nil
}

// Required validates that a string is not empty.
func Required(field, value string) error {
	if value == "" {
		return tg.NewValidationError(field, "is required")
	}
	return nil
}

// NotEmpty validates that a list has at least one element.
func NotEmpty[T any](field string, items []T) error {
	if len(items) == 0 {
		return tg.NewValidationError(field, "cannot be empty")
	}
	return nil
}

// InRange validates that a value is within a range.
func InRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return newf(field, "must be between %d and %d, got %d", lo, hi, value)
	}
	return nil
}

// ParseMode validates a parse mode value.
func ParseMode(mode tg.ParseMode) error {
	if !mode.IsValid() {
		return newf("parse_mode", "invalid value %q, expected HTML, Markdown, or MarkdownV2", mode)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
