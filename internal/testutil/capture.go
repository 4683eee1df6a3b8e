package testutil

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Capture is a request received by MockAPI.
type Capture struct {
	Method      string
	Path        string
	APIMethod   string
	Headers     http.Header
	Body        []byte
	ContentType string
	Timestamp   time.Time

	// Form and Files are set for multipart requests.
	Form  map[string]string
	Files map[string]UploadedFile
}

// UploadedFile is a file part of a multipart request.
type UploadedFile struct {
	Name    string
	Content []byte
}

// IsMultipart reports whether the request was sent as multipart/form-data.
func (c *Capture) IsMultipart() bool {
	return c.Form != nil
}

// Params returns the request parameters. Multipart fields that hold JSON are
// decoded, so both encodings compare the same way.
func (c *Capture) Params(t *testing.T) map[string]any {
	t.Helper()
	if c.IsMultipart() {
		out := make(map[string]any, len(c.Form))
		for k, v := range c.Form {
			var decoded any
			if json.Unmarshal([]byte(v), &decoded) == nil {
				out[k] = decoded
			} else {
				out[k] = v
			}
		}
		return out
	}
	var m map[string]any
	require.NoError(t, json.Unmarshal(c.Body, &m), "failed to decode JSON body")
	return m
}

// AssertAPIMethod verifies the Bot API method name.
func (c *Capture) AssertAPIMethod(t *testing.T, expected string) {
	t.Helper()
	assert.Equal(t, expected, c.APIMethod, "unexpected api method")
}

// AssertContentType verifies the Content-Type header contains expected value.
func (c *Capture) AssertContentType(t *testing.T, expected string) {
	t.Helper()
	assert.Contains(t, c.ContentType, expected, "unexpected content-type")
}

// AssertParam verifies a request parameter. JSON numbers decode as float64.
func (c *Capture) AssertParam(t *testing.T, key string, expected any) {
	t.Helper()
	assert.Equal(t, expected, c.Params(t)[key], "unexpected value for param: "+key)
}

// AssertParamAbsent verifies a parameter was not sent.
func (c *Capture) AssertParamAbsent(t *testing.T, key string) {
	t.Helper()
	assert.NotContains(t, c.Params(t), key, "param should be absent: "+key)
}

// AssertFile verifies an uploaded file part.
func (c *Capture) AssertFile(t *testing.T, field, name, content string) {
	t.Helper()
	f, ok := c.Files[field]
	require.True(t, ok, "file part should exist: "+field)
	assert.Equal(t, name, f.Name)
	assert.Equal(t, content, string(f.Content))
}

// Decode decodes the parameters into target through JSON.
func (c *Capture) Decode(t *testing.T, target any) {
	t.Helper()
	b, err := json.Marshal(c.Params(t))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, target), "failed to decode params")
}
