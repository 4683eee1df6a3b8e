package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// GetUpdates receives incoming updates using long polling. Every returned
// update is bound to the client.
//
//	updates, err := client.GetUpdates(ctx, sender.WithOffset(next), sender.WithPollTimeout(25*time.Second))
func (c *Client) GetUpdates(ctx context.Context, opts ...payload.Option) ([]tg.Update, error) {
	d := payload.New(opts...)
	if limit, ok := d[payload.Limit].(int); ok {
		if err := validate.InRange("limit", limit, 1, 100); err != nil {
			return nil, err
		}
	}
	return call[[]tg.Update](ctx, c, "getUpdates", d)
}

// SetWebhook sets an HTTPS URL to receive updates on.
func (c *Client) SetWebhook(ctx context.Context, url string, opts ...payload.Option) error {
	if err := validate.WebhookURL(url); err != nil {
		return err
	}
	return exec(ctx, c, "setWebhook", payload.Data{payload.URL: url}.Apply(opts...))
}

// DeleteWebhook removes the webhook so GetUpdates can be used again.
func (c *Client) DeleteWebhook(ctx context.Context, opts ...payload.Option) error {
	return exec(ctx, c, "deleteWebhook", payload.New(opts...))
}

// GetWebhookInfo returns the current webhook status.
func (c *Client) GetWebhookInfo(ctx context.Context) (*tg.WebhookInfo, error) {
	return call[*tg.WebhookInfo](ctx, c, "getWebhookInfo", nil)
}
