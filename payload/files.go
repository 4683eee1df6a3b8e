package payload

import (
	"io"
	"strconv"
)

// File is a file part of a multipart request.
type File struct {
	// Field is the multipart field name.
	Field string
	// Name is the file name reported to the API.
	Name string
	// Open returns a fresh reader for each request attempt.
	Open func() io.Reader
}

// Files collects uploads while a payload is encoded.
type Files struct {
	parts []File
	seq   int
}

// Add registers an upload posted directly under field.
func (f *Files) Add(field, name string, open func() io.Reader) {
	f.parts = append(f.parts, File{Field: field, Name: name, Open: open})
}

// Attach registers an upload under a generated field name and returns the
// attach:// reference that points at it.
func (f *Files) Attach(name string, open func() io.Reader) string {
	field := "file" + strconv.Itoa(f.seq)
	f.seq++
	f.Add(field, name, open)
	return "attach://" + field
}

// Parts returns the collected uploads.
func (f *Files) Parts() []File {
	return f.parts
}

// Attacher is implemented by values that may carry file uploads.
//
// Attach registers uploads with f and returns the value to encode in the
// value's place. field is the wire key when the value sits directly in the
// payload and empty when it is nested (slice element, struct field).
// Returning nil omits the key; the upload itself is then the parameter.
type Attacher interface {
	Attach(f *Files, field string) any
}
