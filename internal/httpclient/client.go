// Package httpclient builds the HTTP client used for Bot API calls.
package httpclient

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"time"
)

// UserAgent is set on requests that do not carry one.
const UserAgent = "tgbind/1 (+https://github.com/prilive-com/tgbind)"

// Settings tune the client. Zero fields take defaults.
type Settings struct {
	Timeout     time.Duration // whole request, long polls included
	DialTimeout time.Duration
	KeepAlive   time.Duration
	IdleConns   int
	IdleTimeout time.Duration
}

func (s Settings) withDefaults() Settings {
	if s.Timeout <= 0 {
		s.Timeout = 60 * time.Second
	}
	if s.DialTimeout <= 0 {
		s.DialTimeout = 10 * time.Second
	}
	if s.KeepAlive <= 0 {
		s.KeepAlive = 30 * time.Second
	}
	if s.IdleConns <= 0 {
		s.IdleConns = 100
	}
	if s.IdleTimeout <= 0 {
		s.IdleTimeout = 90 * time.Second
	}
	return s
}

// New returns a client for a single API host. TLS 1.2 is the minimum.
func New(s Settings) *http.Client {
	s = s.withDefaults()
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   s.DialTimeout,
			KeepAlive: s.KeepAlive,
		}).DialContext,
		TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
		TLSHandshakeTimeout:   s.DialTimeout,
		MaxIdleConns:          s.IdleConns,
		MaxIdleConnsPerHost:   s.IdleConns, // every call goes to the same host
		IdleConnTimeout:       s.IdleTimeout,
		ExpectContinueTimeout: time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{Transport: agent{tr}, Timeout: s.Timeout}
}

type agent struct {
	next *http.Transport
}

func (a agent) RoundTrip(r *http.Request) (*http.Response, error) {
	if r.Header.Get("User-Agent") == "" {
		r = r.Clone(r.Context())
		r.Header.Set("User-Agent", UserAgent)
	}
	return a.next.RoundTrip(r)
}

func (a agent) CloseIdleConnections() { a.next.CloseIdleConnections() }

// Post sends body and asks for JSON back. The caller closes the response body.
func Post(ctx context.Context, c *http.Client, url, contentType string, body io.Reader) (*http.Response, error) {
	return do(ctx, c, http.MethodPost, url, body, func(h http.Header) {
		h.Set("Content-Type", contentType)
		h.Set("Accept", "application/json")
	})
}

// Get fetches url. The caller closes the response body.
func Get(ctx context.Context, c *http.Client, url string) (*http.Response, error) {
	return do(ctx, c, http.MethodGet, url, nil, nil)
}

func do(ctx context.Context, c *http.Client, method, url string, body io.Reader, header func(http.Header)) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if header != nil {
		header(req.Header)
	}
	return c.Do(req)
}
