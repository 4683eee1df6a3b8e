// Package fixtures generates the media the smoke suites upload.
package fixtures

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// Photo returns a 320x320 PNG with a diagonal gradient.
func Photo() []byte {
	const size = 320
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / size), G: uint8(y * 255 / size), B: 160, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Document returns a small text document.
func Document() []byte {
	return []byte("tgbind-smoke test document\n\nUploaded by the smoke runner.\n")
}
