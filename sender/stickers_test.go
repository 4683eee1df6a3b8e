package sender_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/internal/testutil"
	"github.com/prilive-com/tgbind/tg"
)

func TestGetStickerSet(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getStickerSet", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyOK(w, map[string]any{
			"name":         "pack_by_testbot",
			"title":        "Pack",
			"sticker_type": "regular",
			"stickers": []map[string]any{
				{"file_id": "stk_1", "file_unique_id": "u1", "type": "regular", "width": 512, "height": 512, "is_animated": false, "is_video": false},
				{"file_id": "stk_2", "file_unique_id": "u2", "type": "regular", "width": 512, "height": 512, "is_animated": false, "is_video": true},
			},
		})
	})
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	set, err := client.GetStickerSet(ctx, "pack_by_testbot")
	require.NoError(t, err)
	require.Len(t, set.Stickers, 2)
	assert.Equal(t, "Pack", set.Title)
	assert.Equal(t, tg.StickerVideo, set.Stickers[1].Format())
	api.LastCapture().AssertParam(t, "name", "pack_by_testbot")

	require.NoError(t, set.Stickers[1].SetPosition(ctx, 0))
	c := api.LastCapture()
	c.AssertAPIMethod(t, "setStickerPositionInSet")
	c.AssertParam(t, "sticker", "stk_2")
	c.AssertParam(t, "position", float64(0))

	_, err = client.GetStickerSet(ctx, "")
	assertInvalid(t, err, "name")
	assert.Equal(t, 2, api.CaptureCount())
}

func TestSetStickerPositionInSet(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	require.NoError(t, client.SetStickerPositionInSet(ctx, "stk_1", 3))
	c := api.LastCapture()
	c.AssertParam(t, "sticker", "stk_1")
	c.AssertParam(t, "position", float64(3))

	assertInvalid(t, client.SetStickerPositionInSet(ctx, "stk_1", -1), "position")
	assertInvalid(t, client.SetStickerPositionInSet(ctx, "", 0), "sticker")
	assert.Equal(t, 1, api.CaptureCount())
}

func TestReplaceStickerInSet(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	sticker := tg.InputSticker{Sticker: tg.FileFromID("stk_new"), Format: tg.StickerStatic, EmojiList: []string{"🙂"}}
	require.NoError(t, client.ReplaceStickerInSet(ctx, testutil.TestUserID, "pack_by_testbot", "stk_old", sticker))

	c := api.LastCapture()
	c.AssertAPIMethod(t, "replaceStickerInSet")
	require.False(t, c.IsMultipart())
	c.AssertParam(t, "user_id", float64(testutil.TestUserID))
	c.AssertParam(t, "old_sticker", "stk_old")
	c.AssertParam(t, "sticker", map[string]any{
		"sticker":    "stk_new",
		"format":     "static",
		"emoji_list": []any{"🙂"},
	})

	upload := tg.InputSticker{Sticker: tg.FileFromBytes("s.webp", []byte("webp")), Format: tg.StickerStatic, EmojiList: []string{"🙂"}}
	require.NoError(t, client.ReplaceStickerInSet(ctx, testutil.TestUserID, "pack_by_testbot", "stk_old", upload))
	c = api.LastCapture()
	c.AssertFile(t, "file0", "s.webp", "webp")
	assert.Equal(t, "attach://file0", c.Params(t)["sticker"].(map[string]any)["sticker"])

	err := client.ReplaceStickerInSet(ctx, testutil.TestUserID, "pack_by_testbot", "", sticker)
	assertInvalid(t, err, "old_sticker")
	sticker.EmojiList = nil
	err = client.ReplaceStickerInSet(ctx, testutil.TestUserID, "pack_by_testbot", "stk_old", sticker)
	assertInvalid(t, err, "emoji_list")
	assert.Equal(t, 2, api.CaptureCount())
}
