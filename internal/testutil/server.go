package testutil

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// MockAPI is a fake Bot API server. Every request is captured; methods
// without a registered handler answer {"ok":true,"result":true}.
type MockAPI struct {
	*httptest.Server
	t        *testing.T
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	captures []Capture
}

// NewMockAPI starts a mock server that is closed when the test completes.
func NewMockAPI(t *testing.T) *MockAPI {
	t.Helper()

	m := &MockAPI{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
	}

	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Server.Close)
	return m
}

func (m *MockAPI) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	c := Capture{
		Method:      r.Method,
		Path:        r.URL.Path,
		APIMethod:   r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:],
		Headers:     r.Header.Clone(),
		Body:        body,
		ContentType: r.Header.Get("Content-Type"),
		Timestamp:   time.Now(),
	}
	if err := c.parseMultipart(); err != nil {
		m.t.Errorf("mock api: bad multipart body: %v", err)
	}

	m.mu.Lock()
	m.captures = append(m.captures, c)
	handler, ok := m.handlers[r.Method+":"+r.URL.Path]
	m.mu.Unlock()

	if ok {
		handler(w, r)
		return
	}
	ReplyOK(w, true)
}

// parseMultipart fills Form and Files for multipart/form-data requests.
func (c *Capture) parseMultipart() error {
	mediaType, params, err := mime.ParseMediaType(c.ContentType)
	if err != nil || mediaType != "multipart/form-data" {
		return nil
	}
	c.Form = make(map[string]string)
	c.Files = make(map[string]UploadedFile)

	mr := multipart.NewReader(bytes.NewReader(c.Body), params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return err
		}
		if part.FileName() != "" {
			c.Files[part.FormName()] = UploadedFile{Name: part.FileName(), Content: data}
			continue
		}
		c.Form[part.FormName()] = string(data)
	}
}

// On registers a handler for a Bot API method called with TestToken.
//
//	api.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
//	    testutil.ReplyMessage(w, 123)
//	})
func (m *MockAPI) On(method string, handler http.HandlerFunc) {
	m.OnPath(http.MethodPost, "/bot"+TestToken+"/"+method, handler)
}

// OnPath registers a handler for an HTTP method and raw path, such as file downloads.
func (m *MockAPI) OnPath(httpMethod, path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[httpMethod+":"+path] = handler
}

// Sequence registers handlers that answer consecutive calls of method in
// order. The last handler answers every call after that.
func (m *MockAPI) Sequence(method string, handlers ...http.HandlerFunc) {
	var (
		mu sync.Mutex
		n  int
	)
	m.On(method, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		h := handlers[min(n, len(handlers)-1)]
		n++
		mu.Unlock()
		h(w, r)
	})
}

// Captures returns all captured requests.
func (m *MockAPI) Captures() []Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Capture{}, m.captures...)
}

// LastCapture returns the most recent captured request.
func (m *MockAPI) LastCapture() *Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.captures) == 0 {
		return nil
	}
	c := m.captures[len(m.captures)-1]
	return &c
}

// CaptureCount returns the total number of captured requests.
func (m *MockAPI) CaptureCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.captures)
}

// ResetCaptures clears captures, keeping handlers.
func (m *MockAPI) ResetCaptures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.captures = m.captures[:0]
}

// BaseURL returns the server URL to pass to sender.WithBaseURL.
func (m *MockAPI) BaseURL() string {
	return m.Server.URL
}
