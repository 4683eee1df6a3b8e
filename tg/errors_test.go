package tg_test

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prilive-com/tgbind/tg"
)

func TestDetectSentinel(t *testing.T) {
	tests := []struct {
		code int
		desc string
		want error
	}{
		{400, "Bad Request: message is not modified: specified new message content is the same", tg.ErrMessageNotModified},
		{400, "Bad Request: message to edit not found", tg.ErrMessageNotFound},
		{400, "Bad Request: message can't be deleted for everyone", tg.ErrMessageCantBeDeleted},
		{400, "Bad Request: chat not found", tg.ErrChatNotFound},
		{400, "Bad Request: query is too old and response timeout expired", tg.ErrCallbackExpired},
		{400, "Bad Request: STICKERSET_INVALID", tg.ErrStickerSetInvalid},
		{403, "Forbidden: bot was blocked by the user", tg.ErrBotBlocked},
		{403, "Forbidden: bot was kicked from the supergroup chat", tg.ErrBotKicked},
		{403, "Forbidden: something else", tg.ErrForbidden},
		{401, "Unauthorized", tg.ErrUnauthorized},
		{404, "Not Found", tg.ErrNotFound},
		{409, "Conflict: terminated by other getUpdates request", tg.ErrConflict},
		{429, "Too Many Requests: retry after 5", tg.ErrTooManyRequests},
		{400, "Bad Request: something unusual", nil},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, tg.DetectSentinel(tt.code, tt.desc))
		})
	}
}

func TestAPIError(t *testing.T) {
	err := tg.NewAPIError("sendMessage", 403, "Forbidden: bot was blocked by the user", nil)

	assert.ErrorIs(t, err, tg.ErrBotBlocked)
	assert.False(t, err.IsRetryable())
	assert.Equal(t, "tgbind: sendMessage failed: Forbidden: bot was blocked by the user (code=403)", err.Error())

	var wrapped error = fmt.Errorf("notify: %w", err)
	var apiErr *tg.APIError
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, "sendMessage", apiErr.Method)
}

func TestAPIError_RetryAfter(t *testing.T) {
	err := tg.NewAPIError("sendMessage", 429, "Too Many Requests: retry after 3", &tg.ResponseParameters{RetryAfter: 3})

	assert.True(t, err.IsRetryable())
	assert.Equal(t, 3*time.Second, err.RetryAfter)
	assert.ErrorIs(t, err, tg.ErrTooManyRequests)
	assert.Contains(t, err.Error(), "retry_after=3s")
}

func TestAPIError_Migrated(t *testing.T) {
	err := tg.NewAPIError("sendMessage", 400, "Bad Request: group chat was upgraded to a supergroup chat",
		&tg.ResponseParameters{MigrateToChatID: -1001234})

	assert.ErrorIs(t, err, tg.ErrChatMigrated)
	assert.Equal(t, int64(-1001234), err.MigratedTo())
}

func TestConfigError_IsInvalidConfig(t *testing.T) {
	err := tg.NewConfigError("MAX_RETRIES", "must be >= 0")
	assert.ErrorIs(t, err, tg.ErrInvalidConfig)
	assert.Equal(t, "tgbind: config: MAX_RETRIES - must be >= 0", err.Error())
}

func TestSecretToken_Redacts(t *testing.T) {
	token := tg.SecretToken("123456:ABC-DEF")

	assert.Equal(t, "123456:ABC-DEF", token.Value())
	assert.Equal(t, "123456", token.BotID())
	assert.False(t, token.IsEmpty())

	for _, s := range []string{
		fmt.Sprint(token),
		fmt.Sprintf("%v %+v %#v %s", token, token, token, token),
	} {
		assert.NotContains(t, s, "ABC-DEF")
	}

	text, err := token.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "[REDACTED]", string(text))

	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("starting", "token", token)
	assert.NotContains(t, buf.String(), "ABC-DEF")
	assert.Contains(t, buf.String(), "[REDACTED]")
}

func TestParseMode_IsValid(t *testing.T) {
	assert.True(t, tg.ParseModeMarkdownV2.IsValid())
	assert.True(t, tg.ParseMode("").IsValid())
	assert.False(t, tg.ParseMode("html").IsValid())
	assert.True(t, tg.ChatTypeSupergroup.IsGroup())
	assert.False(t, tg.ChatTypeChannel.IsGroup())
}
