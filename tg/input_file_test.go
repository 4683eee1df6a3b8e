package tg_test

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

func TestInputFile_References(t *testing.T) {
	d := payload.Data{
		payload.Photo:    tg.FileFromID("AgADBAAD"),
		payload.Document: tg.FileFromURL("https://example.com/a.pdf"),
	}
	enc, err := d.Encode()
	require.NoError(t, err)

	assert.False(t, enc.Multipart())
	assert.Equal(t, "AgADBAAD", enc.Params["photo"])
	assert.Equal(t, "https://example.com/a.pdf", enc.Params["document"])
}

func TestInputFile_TopLevelUploadAndThumbnail(t *testing.T) {
	d := payload.Data{
		payload.Video:     tg.FileFromBytes("clip.mp4", []byte("video")),
		payload.Thumbnail: tg.FileFromBytes("thumb.jpg", []byte("thumb")),
	}
	enc, err := d.Encode()
	require.NoError(t, err)
	require.Len(t, enc.Files, 2)

	assert.Equal(t, "attach://file0", enc.Params["thumbnail"])
	assert.NotContains(t, enc.Params, "video")

	assert.Equal(t, "file0", enc.Files[0].Field)
	assert.Equal(t, "thumb.jpg", enc.Files[0].Name)
	assert.Equal(t, "video", enc.Files[1].Field)

	body, err := io.ReadAll(enc.Files[1].Open())
	require.NoError(t, err)
	assert.Equal(t, "video", string(body))
}

func TestInputFile_MediaGroup(t *testing.T) {
	media := []tg.InputMedia{
		tg.InputMediaPhoto{Media: tg.FileFromBytes("a.jpg", []byte("a")), Caption: "first"},
		tg.InputMediaPhoto{Media: tg.FileFromID("AgAD")},
		tg.InputMediaVideo{
			Media:     tg.FileFromBytes("b.mp4", []byte("b")),
			Thumbnail: &tg.InputFile{FileID: "thumb-id"},
		},
	}
	enc, err := payload.Data{payload.Media: media}.Encode()
	require.NoError(t, err)

	want := []any{
		map[string]any{"type": "photo", "media": "attach://file0", "caption": "first"},
		map[string]any{"type": "photo", "media": "AgAD"},
		map[string]any{"type": "video", "media": "attach://file1", "thumbnail": "thumb-id"},
	}
	assert.Equal(t, want, enc.Params["media"])
	require.Len(t, enc.Files, 2)
	assert.Equal(t, "file0", enc.Files[0].Field)
	assert.Equal(t, "b.mp4", enc.Files[1].Name)
}

func TestInputFile_EditMediaIsNested(t *testing.T) {
	d := payload.Data{payload.Media: tg.InputMediaDocument{Media: tg.FileFromBytes("r.pdf", []byte("%PDF"))}}
	enc, err := d.Encode()
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"type": "document", "media": "attach://file0"}, enc.Params["media"])
	require.Len(t, enc.Files, 1)
}

func TestInputFile_Stickers(t *testing.T) {
	stickers := []tg.InputSticker{
		{Sticker: tg.FileFromBytes("s.webp", []byte("webp")), Format: tg.StickerStatic, EmojiList: []string{"🙂"}},
	}
	enc, err := payload.Data{payload.Stickers: stickers}.Encode()
	require.NoError(t, err)

	got := enc.Params["stickers"].([]any)[0].(map[string]any)
	assert.Equal(t, "attach://file0", got["sticker"])
	assert.Equal(t, "static", got["format"])
}

func TestInputFile_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("from disk"), 0o600))

	f := tg.FileFromPath(path)
	assert.True(t, f.IsUpload())
	assert.Equal(t, "note.txt", f.Name)

	enc, err := payload.Data{payload.Document: f}.Encode()
	require.NoError(t, err)
	require.Len(t, enc.Files, 1)

	r := enc.Files[0].Open()
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "from disk", string(body))
	if c, ok := r.(io.Closer); ok {
		assert.NoError(t, c.Close())
	}
}

func TestInputFile_FromPathMissing(t *testing.T) {
	var files payload.Files
	v := tg.FileFromPath(filepath.Join(t.TempDir(), "missing.bin")).Attach(&files, "document")
	assert.Nil(t, v)
	require.Len(t, files.Parts(), 1)

	_, err := io.ReadAll(files.Parts()[0].Open())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInputFile_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Photo tg.InputFile `json:"photo"`
	}{tg.FileFromID("xyz")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"photo":"xyz"}`, string(b))
}
