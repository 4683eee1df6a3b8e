package tg

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/prilive-com/tgbind/payload"
)

// InputFile is a file passed to a send method: an existing file_id, an HTTP
// URL for the API to fetch, or content to upload.
type InputFile struct {
	FileID string
	URL    string
	Name   string
	open   func() io.Reader
	ref    string
}

// FileFromID reuses a file already stored on the API servers.
func FileFromID(id string) InputFile { return InputFile{FileID: id} }

// FileFromURL lets the API download the file itself.
func FileFromURL(url string) InputFile { return InputFile{URL: url} }

// FileFromBytes uploads b. The upload can be retried.
func FileFromBytes(name string, b []byte) InputFile {
	return InputFile{Name: name, open: func() io.Reader { return bytes.NewReader(b) }}
}

// FileFromReader uploads the content of r. r is consumed by the first
// attempt, so a retried request sends whatever is left of it; prefer
// FileFromBytes or FileFromPath when retries are enabled.
func FileFromReader(name string, r io.Reader) InputFile {
	return InputFile{Name: name, open: func() io.Reader { return r }}
}

// FileFromPath uploads a local file. The file is opened for each attempt and
// closed by the transport once it has been sent.
func FileFromPath(path string) InputFile {
	return InputFile{Name: filepath.Base(path), open: func() io.Reader { return &lazyFile{path: path} }}
}

// IsUpload reports whether the file has content to upload.
func (f InputFile) IsUpload() bool {
	return f.FileID == "" && f.URL == "" && f.open != nil
}

// IsZero reports whether no source is set.
func (f InputFile) IsZero() bool {
	return f.FileID == "" && f.URL == "" && f.open == nil
}

func (f InputFile) value() string {
	switch {
	case f.ref != "":
		return f.ref
	case f.FileID != "":
		return f.FileID
	}
	return f.URL
}

// Attach implements payload.Attacher. Thumbnails and video covers are always
// sent as attach:// references; other top-level uploads become a part named
// after the field.
func (f InputFile) Attach(files *payload.Files, field string) any {
	if !f.IsUpload() {
		if v := f.value(); v != "" {
			return v
		}
		return nil
	}
	if field == "" || field == payload.Thumbnail.Wire() || field == payload.Cover.Wire() {
		return files.Attach(f.fileName(), f.open)
	}
	files.Add(field, f.fileName(), f.open)
	return nil
}

// attached returns a copy of f that marshals as its attach:// reference.
func (f InputFile) attached(files *payload.Files) InputFile {
	if !f.IsUpload() {
		return f
	}
	return InputFile{ref: files.Attach(f.fileName(), f.open)}
}

func (f InputFile) fileName() string {
	if f.Name == "" {
		return "file"
	}
	return f.Name
}

// MarshalJSON encodes the file as the string the API expects in JSON
// objects: a file_id, URL or attach:// reference.
func (f InputFile) MarshalJSON() ([]byte, error) {
	v := f.value()
	if v == "" {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// lazyFile opens path on first read.
type lazyFile struct {
	path string
	f    *os.File
	err  error
}

func (l *lazyFile) Read(p []byte) (int, error) {
	if l.f == nil && l.err == nil {
		l.f, l.err = os.Open(l.path)
	}
	if l.err != nil {
		return 0, l.err
	}
	return l.f.Read(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}

var _ payload.Attacher = InputFile{}
