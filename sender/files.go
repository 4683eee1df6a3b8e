package sender

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/prilive-com/tgbind/internal/httpclient"
	"github.com/prilive-com/tgbind/internal/scrub"
	"github.com/prilive-com/tgbind/keycase"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// Raw calls a method the client has no typed wrapper for. data keys are
// camelCase and are sent as snake_case; the result tree comes back with
// camelCase keys.
func (c *Client) Raw(ctx context.Context, method string, data payload.Data) (any, error) {
	if err := validateMethod(method); err != nil {
		return nil, err
	}
	var out any
	if err := c.Call(ctx, method, data, &out); err != nil {
		return nil, err
	}
	return keycase.CamelKeys(out), nil
}

// DecodeUpdate decodes a single update, such as a webhook body, and binds
// the client to it.
func (c *Client) DecodeUpdate(r io.Reader) (*tg.Update, error) {
	var u tg.Update
	dec := json.NewDecoder(io.LimitReader(r, maxResponseSize))
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("tgbind: decode update: %w", err)
	}
	tg.Bind(&u, c)
	return &u, nil
}

// FileURL returns the download URL for a file obtained with GetFile.
// The URL contains the bot token.
func (c *Client) FileURL(f *tg.File) string {
	return c.config.BaseURL + "/file/bot" + c.config.Token.Value() + "/" + f.FilePath
}

// Download streams the content of f into w and returns the number of bytes written.
func (c *Client) Download(ctx context.Context, f *tg.File, w io.Writer) (int64, error) {
	if f == nil || f.FilePath == "" {
		return 0, tg.NewValidationError("file_path", "is empty, call GetFile first")
	}

	resp, err := httpclient.Get(ctx, c.httpClient, c.FileURL(f))
	if err != nil {
		return 0, scrub.TokenFromError(fmt.Errorf("tgbind: download %s: %w", f.FileID, err), c.config.Token)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, tg.NewAPIError("download", resp.StatusCode, http.StatusText(resp.StatusCode), nil)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, scrub.TokenFromError(fmt.Errorf("tgbind: download %s: %w", f.FileID, err), c.config.Token)
	}
	return n, nil
}
