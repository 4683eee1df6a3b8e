package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/tg"
)

func field(t *testing.T, err error) string {
	t.Helper()
	var vErr *tg.ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Field
}

func TestToken(t *testing.T) {
	assert.NoError(t, validate.Token("123456:ABC-def"))
	for _, bad := range []string{"", "123456", "abc:def", "123456:"} {
		assert.Error(t, validate.Token(bad), bad)
	}
}

func TestChatID(t *testing.T) {
	valid := []tg.ChatID{int64(42), int64(-1001234567890), 7, "@channel", "-100123"}
	for _, id := range valid {
		assert.NoError(t, validate.ChatID("chat_id", id), "%v", id)
	}

	invalid := []tg.ChatID{nil, int64(0), 0, "", "channel", "0", 3.5}
	for _, id := range invalid {
		err := validate.ChatID("from_chat_id", id)
		assert.Equal(t, "from_chat_id", field(t, err), "%v", id)
	}
}

func TestText(t *testing.T) {
	assert.NoError(t, validate.Text("hi", 10))
	assert.Equal(t, "text", field(t, validate.Text("  \n", 10)))
	assert.Error(t, validate.Text(strings.Repeat("я", 11), 10))
	assert.NoError(t, validate.Text(strings.Repeat("я", 10), 10), "length counts characters, not bytes")
}

func TestCaption(t *testing.T) {
	assert.NoError(t, validate.Caption("", validate.MaxCaptionLength))
	assert.Equal(t, "caption", field(t, validate.Caption(strings.Repeat("a", 5), 4)))
}

func TestCallbackData(t *testing.T) {
	assert.NoError(t, validate.CallbackData("vote:1"))
	assert.Error(t, validate.CallbackData(""))
	assert.Error(t, validate.CallbackData(strings.Repeat("é", 33)), "limit is in bytes")
}

func TestMessageIDs(t *testing.T) {
	assert.NoError(t, validate.MessageIDs([]int{1, 2, 3}))
	assert.Error(t, validate.MessageIDs(nil))
	assert.Error(t, validate.MessageIDs([]int{1, 0}))
	assert.Error(t, validate.MessageIDs(make([]int, validate.MaxBulkMessages+1)))
}

func TestWebhookURL(t *testing.T) {
	assert.NoError(t, validate.WebhookURL("https://example.com/hook"))
	assert.Error(t, validate.WebhookURL("http://example.com/hook"))
	assert.Error(t, validate.WebhookURL(""))
}

func TestFile(t *testing.T) {
	assert.NoError(t, validate.File("photo", tg.FileFromID("AgAD")))
	assert.Equal(t, "photo", field(t, validate.File("photo", tg.InputFile{})))
}

func TestInRangeAndFirst(t *testing.T) {
	assert.NoError(t, validate.InRange("limit", 1, 1, 100))
	assert.NoError(t, validate.InRange("limit", 100, 1, 100))
	assert.Error(t, validate.InRange("limit", 101, 1, 100))

	first := validate.First(nil, validate.Required("a", ""), validate.Required("b", ""))
	assert.Equal(t, "a", field(t, first))
	assert.NoError(t, validate.First())
}

func TestParseMode(t *testing.T) {
	assert.NoError(t, validate.ParseMode(tg.ParseModeHTML))
	assert.Error(t, validate.ParseMode("BBCode"))
}
