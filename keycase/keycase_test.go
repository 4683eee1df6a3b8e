package keycase_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/prilive-com/tgbind/keycase"
)

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"":                      "",
		"chatId":                "chat_id",
		"text":                  "text",
		"replyMarkup":           "reply_markup",
		"showCaptionAboveMedia": "show_caption_above_media",
		"inlineMessageId":       "inline_message_id",
		"xShift":                "x_shift",
		"already_snake":         "already_snake",
		"customEmojiIds":        "custom_emoji_ids",
		"h264Video":             "h264_video",
	}
	for in, want := range cases {
		if got := keycase.ToSnake(in); got != want {
			t.Errorf("ToSnake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToCamel(t *testing.T) {
	cases := map[string]string{
		"":                         "",
		"chat_id":                  "chatId",
		"text":                     "text",
		"reply_markup":             "replyMarkup",
		"show_caption_above_media": "showCaptionAboveMedia",
		"x_shift":                  "xShift",
		"alreadyCamel":             "alreadyCamel",
		"sha_256_hash":             "sha256Hash",
	}
	for in, want := range cases {
		if got := keycase.ToCamel(in); got != want {
			t.Errorf("ToCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	keys := []string{
		"chat_id", "message_thread_id", "link_preview_options", "is_flexible",
		"need_shipping_address", "send_phone_number_to_provider", "old_sticker",
		"until_date", "can_manage_video_chats", "x_shift", "y_shift",
	}
	for _, k := range keys {
		if got := keycase.ToSnake(keycase.ToCamel(k)); got != k {
			t.Errorf("round trip of %q gave %q", k, got)
		}
	}

	// Digit-led segments merge into the previous word.
	if got := keycase.ToSnake(keycase.ToCamel("a_1")); got != "a1" {
		t.Errorf("round trip of %q gave %q", "a_1", got)
	}
}

func TestCamelKeys(t *testing.T) {
	in := map[string]any{
		"message_id": 1,
		"chat": map[string]any{
			"id":         int64(-100),
			"first_name": "Ann",
		},
		"entities": []any{
			map[string]any{"type": "bold", "custom_emoji_id": "x"},
			"leaf",
		},
	}
	want := map[string]any{
		"messageId": 1,
		"chat": map[string]any{
			"id":        int64(-100),
			"firstName": "Ann",
		},
		"entities": []any{
			map[string]any{"type": "bold", "customEmojiId": "x"},
			"leaf",
		},
	}

	got := keycase.CamelKeys(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CamelKeys mismatch (-want +got):\n%s", diff)
	}

	// Input must not be mutated.
	if _, ok := in["message_id"]; !ok {
		t.Error("CamelKeys mutated its input")
	}
}

func TestSnakeKeys(t *testing.T) {
	in := map[string]any{
		"replyMarkup": map[string]any{
			"inlineKeyboard": []any{[]any{map[string]any{"text": "a", "callbackData": "b"}}},
		},
		"rows": []map[string]any{{"userId": 7}},
	}
	want := map[string]any{
		"reply_markup": map[string]any{
			"inline_keyboard": []any{[]any{map[string]any{"text": "a", "callback_data": "b"}}},
		},
		"rows": []any{map[string]any{"user_id": 7}},
	}

	if diff := cmp.Diff(want, keycase.SnakeKeys(in)); diff != "" {
		t.Errorf("SnakeKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestKeys_Scalars(t *testing.T) {
	for _, v := range []any{nil, 1, "str", true, 1.5} {
		if diff := cmp.Diff(v, keycase.SnakeKeys(v)); diff != "" {
			t.Errorf("SnakeKeys(%v) changed a scalar: %s", v, diff)
		}
	}
}
