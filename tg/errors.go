package tg

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors - use with errors.Is()
var (
	// HTTP-level API errors
	ErrUnauthorized    = errors.New("tgbind: unauthorized (invalid token)")
	ErrForbidden       = errors.New("tgbind: forbidden")
	ErrNotFound        = errors.New("tgbind: not found")
	ErrConflict        = errors.New("tgbind: conflict")
	ErrTooManyRequests = errors.New("tgbind: too many requests")

	// Messages
	ErrMessageNotFound      = errors.New("tgbind: message not found")
	ErrMessageNotModified   = errors.New("tgbind: message not modified")
	ErrMessageCantBeEdited  = errors.New("tgbind: message can't be edited")
	ErrMessageCantBeDeleted = errors.New("tgbind: message can't be deleted")
	ErrMessageTooOld        = errors.New("tgbind: message too old")
	ErrMessageTooLong       = errors.New("tgbind: message too long")

	// Chats and users
	ErrBotBlocked      = errors.New("tgbind: bot blocked by user")
	ErrBotKicked       = errors.New("tgbind: bot kicked from chat")
	ErrChatNotFound    = errors.New("tgbind: chat not found")
	ErrUserNotFound    = errors.New("tgbind: user not found")
	ErrUserDeactivated = errors.New("tgbind: user deactivated")
	ErrNoRights        = errors.New("tgbind: not enough rights")
	ErrChatMigrated    = errors.New("tgbind: group migrated to supergroup")

	// Callbacks and inline
	ErrCallbackExpired     = errors.New("tgbind: callback query expired")
	ErrInvalidCallbackData = errors.New("tgbind: invalid callback data")

	// Stickers and files
	ErrStickerSetInvalid = errors.New("tgbind: sticker set invalid")
	ErrFileTooBig        = errors.New("tgbind: file too big")

	// Client-side
	ErrUnbound          = errors.New("tgbind: model is not bound to a client")
	ErrCircuitOpen      = errors.New("tgbind: circuit breaker open")
	ErrMaxRetries       = errors.New("tgbind: max retries exceeded")
	ErrResponseTooLarge = errors.New("tgbind: response too large")
	ErrInvalidToken     = errors.New("tgbind: invalid bot token format")
	ErrInvalidConfig    = errors.New("tgbind: invalid configuration")
)

// ResponseParameters explains why a request was unsuccessful.
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

// APIError is an {ok: false} response from the Bot API.
// Use errors.As() to read the details and errors.Is() to match sentinels.
type APIError struct {
	Method      string
	Code        int
	Description string
	RetryAfter  time.Duration
	Parameters  *ResponseParameters
	cause       error
}

func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("tgbind: %s failed: %s (code=%d, retry_after=%s)",
			e.Method, e.Description, e.Code, e.RetryAfter)
	}
	return fmt.Sprintf("tgbind: %s failed: %s (code=%d)", e.Method, e.Description, e.Code)
}

// Unwrap returns the matched sentinel, if any.
func (e *APIError) Unwrap() error { return e.cause }

// IsRetryable reports whether the same request may succeed later.
func (e *APIError) IsRetryable() bool {
	return e.Code == 429 || (e.Code >= 500 && e.Code <= 504)
}

// MigratedTo returns the supergroup ID a group moved to, or 0.
func (e *APIError) MigratedTo() int64 {
	if e.Parameters == nil {
		return 0
	}
	return e.Parameters.MigrateToChatID
}

// NewAPIError builds an APIError and detects its sentinel.
func NewAPIError(method string, code int, description string, params *ResponseParameters) *APIError {
	e := &APIError{
		Method:      method,
		Code:        code,
		Description: description,
		Parameters:  params,
		cause:       DetectSentinel(code, description),
	}
	if params != nil {
		if params.RetryAfter > 0 {
			e.RetryAfter = time.Duration(params.RetryAfter) * time.Second
		}
		if params.MigrateToChatID != 0 && e.cause == nil {
			e.cause = ErrChatMigrated
		}
	}
	return e
}

// descriptionSentinels is checked in order; the first matching fragment wins.
var descriptionSentinels = []struct {
	fragment string
	err      error
}{
	{"message is not modified", ErrMessageNotModified},
	{"message to edit not found", ErrMessageNotFound},
	{"message to delete not found", ErrMessageNotFound},
	{"message to reply not found", ErrMessageNotFound},
	{"message not found", ErrMessageNotFound},
	{"message can't be edited", ErrMessageCantBeEdited},
	{"message can't be deleted", ErrMessageCantBeDeleted},
	{"message is too old", ErrMessageTooOld},
	{"message is too long", ErrMessageTooLong},
	{"bot was blocked", ErrBotBlocked},
	{"bot was kicked", ErrBotKicked},
	{"chat not found", ErrChatNotFound},
	{"user not found", ErrUserNotFound},
	{"user is deactivated", ErrUserDeactivated},
	{"not enough rights", ErrNoRights},
	{"group chat was upgraded", ErrChatMigrated},
	{"query is too old", ErrCallbackExpired},
	{"button_data_invalid", ErrInvalidCallbackData},
	{"stickerset_invalid", ErrStickerSetInvalid},
	{"file is too big", ErrFileTooBig},
}

// DetectSentinel maps an error code and description to a sentinel error.
// Descriptions are more specific than codes, so they are checked first.
func DetectSentinel(code int, desc string) error {
	lower := strings.ToLower(desc)
	for _, ds := range descriptionSentinels {
		if strings.Contains(lower, ds.fragment) {
			return ds.err
		}
	}

	switch code {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	case 429:
		return ErrTooManyRequests
	}
	return nil
}

// ValidationError is returned before any network I/O when a required
// argument is missing or malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tgbind: validation: %s - %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConfigError is a configuration problem.
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tgbind: config: %s - %s", e.Key, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidConfig) match.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// NewConfigError creates a ConfigError.
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}
