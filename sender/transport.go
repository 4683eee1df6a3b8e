package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/prilive-com/tgbind/internal/httpclient"
	"github.com/prilive-com/tgbind/internal/resilience"
	"github.com/prilive-com/tgbind/internal/scrub"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// apiResponse is the Bot API envelope.
type apiResponse struct {
	OK          bool                   `json:"ok"`
	Result      json.RawMessage        `json:"result,omitempty"`
	ErrorCode   int                    `json:"error_code,omitempty"`
	Description string                 `json:"description,omitempty"`
	Parameters  *tg.ResponseParameters `json:"parameters,omitempty"`
}

// Call POSTs data to the Bot API method and decodes the result into out,
// binding the client into every model it contains. out may be nil when the
// result is not needed.
//
// The request waits on the global rate limiter, and on the per-chat one for
// methods that post or change messages. It runs through the circuit breaker
// and is retried on 429, 5xx and timeouts.
func (c *Client) Call(ctx context.Context, method string, data payload.Data, out any) error {
	d := c.withDefaults(data)

	enc, err := d.Encode()
	if err != nil {
		return fmt.Errorf("tgbind: %s: %w", method, err)
	}

	var chat string
	if perChatLimited(method) {
		chat = chatKey(d[payload.ChatID])
	}
	start := time.Now()

	resp, err := resilience.Do(ctx, c.retrier(method), func(attempt int) (*apiResponse, error) {
		if err := c.limiter.Wait(ctx, chat); err != nil {
			return nil, err
		}
		r, err := c.breaker.Execute(func() (*apiResponse, error) {
			return c.doRequest(ctx, method, enc)
		})
		if resilience.IsBreakerError(err) {
			err = fmt.Errorf("%w: %w", tg.ErrCircuitOpen, err)
		}
		c.logger.Debug("bot api call",
			"method", method,
			"attempt", attempt,
			"duration", time.Since(start),
			"multipart", enc.Multipart(),
		)
		return r, err
	})
	if err != nil {
		var exhausted *resilience.ExhaustedError
		if errors.As(err, &exhausted) {
			err = fmt.Errorf("%w: %w", tg.ErrMaxRetries, exhausted.Err)
		}
		c.logger.Warn("bot api call failed", "method", method, "error", err)
		c.report(ctx, method, err)
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("tgbind: %s: failed to parse result: %w", method, err)
	}
	tg.Bind(out, c)
	return nil
}

// call is the typed form of Call.
func call[T any](ctx context.Context, c *Client, method string, d payload.Data) (T, error) {
	var out T
	err := c.Call(ctx, method, d, &out)
	return out, err
}

// exec runs a method whose result is a plain true.
func exec(ctx context.Context, c *Client, method string, d payload.Data) error {
	_, err := call[bool](ctx, c, method, d)
	return err
}

func (c *Client) withDefaults(d payload.Data) payload.Data {
	if len(c.defaults) == 0 {
		return d
	}
	merged := payload.New(c.defaults...)
	for k, v := range d {
		merged[k] = v
	}
	return merged
}

func (c *Client) retrier(method string) resilience.Retrier {
	return resilience.Retrier{
		Config: resilience.RetryConfig{
			MaxRetries: c.config.MaxRetries,
			BaseWait:   c.config.RetryBaseWait,
			MaxWait:    c.config.RetryMaxWait,
			Multiplier: c.config.RetryFactor,
			Jitter:     0.2,
		},
		Sleeper:  c.sleeper,
		Classify: classify,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			c.logger.Warn("retrying bot api call",
				"method", method,
				"attempt", attempt,
				"wait", wait,
				"error", err,
			)
		},
	}
}

func (c *Client) report(ctx context.Context, method string, err error) {
	if c.errorHook == nil || errors.Is(err, context.Canceled) {
		return
	}
	c.errorHook(ctx, method, err)
}

func (c *Client) methodURL(method string) string {
	return c.config.BaseURL + "/bot" + c.config.Token.Value() + "/" + method
}

func (c *Client) doRequest(ctx context.Context, method string, enc *payload.Encoded) (*apiResponse, error) {
	var (
		body        io.Reader
		contentType string
		pr          *io.PipeReader
	)

	if enc.Multipart() {
		// Uploads are streamed; the body is written while the request is sent.
		var pw *io.PipeWriter
		pr, pw = io.Pipe()
		mw := multipart.NewWriter(pw)
		contentType = mw.FormDataContentType()
		go func() {
			pw.CloseWithError(writeMultipart(mw, enc))
		}()
		body = pr
	} else {
		b, err := json.Marshal(enc.Params)
		if err != nil {
			return nil, fmt.Errorf("tgbind: %s: failed to marshal request: %w", method, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	resp, err := httpclient.Post(ctx, c.httpClient, c.methodURL(method), contentType, body)
	if pr != nil {
		// Unblocks the writer goroutine if the request ended early.
		pr.Close()
	}
	if err != nil {
		return nil, scrub.TokenFromError(fmt.Errorf("tgbind: %s: request failed: %w", method, err), c.config.Token)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, scrub.TokenFromError(fmt.Errorf("tgbind: %s: failed to read response: %w", method, err), c.config.Token)
	}
	if int64(len(raw)) > maxResponseSize {
		return nil, tg.ErrResponseTooLarge
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		if resp.StatusCode >= 400 {
			// Proxies and gateways answer with HTML.
			return nil, tg.NewAPIError(method, resp.StatusCode, http.StatusText(resp.StatusCode), nil)
		}
		return nil, fmt.Errorf("tgbind: %s: failed to parse response: %w", method, err)
	}

	if !apiResp.OK {
		return nil, tg.NewAPIError(method, apiResp.ErrorCode, apiResp.Description, responseParameters(&apiResp, resp))
	}
	return &apiResp, nil
}

// writeMultipart writes params as form fields and streams every upload.
// Strings are sent as is, everything else as JSON.
func writeMultipart(mw *multipart.Writer, enc *payload.Encoded) error {
	for _, key := range slices.Sorted(maps.Keys(enc.Params)) {
		var value string
		switch v := enc.Params[key].(type) {
		case string:
			value = v
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("encode field %s: %w", key, err)
			}
			value = string(b)
		}
		if err := mw.WriteField(key, value); err != nil {
			return err
		}
	}

	for _, f := range enc.Files {
		if err := copyPart(mw, f); err != nil {
			return err
		}
	}
	return mw.Close()
}

func copyPart(mw *multipart.Writer, f payload.File) error {
	part, err := mw.CreateFormFile(f.Field, f.Name)
	if err != nil {
		return err
	}
	r := f.Open()
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("upload %s: %w", f.Name, err)
	}
	return nil
}

// responseParameters reads retry_after from the JSON body and falls back to
// the Retry-After header.
func responseParameters(apiResp *apiResponse, httpResp *http.Response) *tg.ResponseParameters {
	params := apiResp.Parameters
	if params != nil && params.RetryAfter > 0 {
		return params
	}
	if h := httpResp.Header.Get("Retry-After"); h != "" {
		if seconds, err := strconv.Atoi(h); err == nil && seconds > 0 {
			if params == nil {
				params = &tg.ResponseParameters{}
			}
			params.RetryAfter = seconds
		}
	}
	return params
}

// classify decides whether a failed attempt is retried.
func classify(err error) resilience.Decision {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return resilience.Decision{}
	}

	// Circuit breaker errors are not retryable
	if errors.Is(err, tg.ErrCircuitOpen) {
		return resilience.Decision{}
	}

	var apiErr *tg.APIError
	if errors.As(err, &apiErr) {
		return resilience.Decision{Retry: apiErr.IsRetryable(), Wait: apiErr.RetryAfter}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return resilience.Decision{Retry: true}
	}

	return resilience.Decision{}
}

// isBreakerSuccess determines if an error should count as a circuit breaker failure.
// Only server errors (5xx) and network errors trip the breaker.
// Client errors (4xx) including 429 are not breaker failures; 429 is handled via retry_after.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *tg.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code >= 400 && apiErr.Code < 500
	}
	// Context cancellation is not a service failure
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, tg.ErrResponseTooLarge) {
		return true
	}
	return false
}

// perChatLimited reports whether method posts or changes messages in a
// chat. Reads and admin calls only count against the global limit.
func perChatLimited(method string) bool {
	switch method {
	case "sendChatAction":
		return false
	case "forwardMessage", "forwardMessages", "copyMessage", "copyMessages",
		"deleteMessage", "deleteMessages", "stopPoll", "stopMessageLiveLocation":
		return true
	}
	return strings.HasPrefix(method, "send") || strings.HasPrefix(method, "editMessage")
}

// chatKey returns the per-chat limiter key for a chat_id value.
func chatKey(v any) string {
	switch id := v.(type) {
	case int64:
		return strconv.FormatInt(id, 10)
	case int:
		return strconv.Itoa(id)
	case string:
		return id
	default:
		return ""
	}
}
