package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// AnswerCallbackQuery stops the loading indicator of an inline button.
// A non-empty text is shown as a notification, or as an alert with Alert.
func (c *Client) AnswerCallbackQuery(ctx context.Context, queryID, text string, opts ...payload.Option) error {
	if err := validate.Required("callback_query_id", queryID); err != nil {
		return err
	}
	if n := len([]rune(text)); n > validate.MaxCallbackTextLength {
		return tg.NewValidationError("text", "exceeds maximum length of 200 characters")
	}
	d := payload.Data{payload.CallbackQueryID: queryID}
	if text != "" {
		d.Set(payload.Text, text)
	}
	return exec(ctx, c, "answerCallbackQuery", d.Apply(opts...))
}

// AnswerInlineQuery sends up to 50 results for an inline query.
func (c *Client) AnswerInlineQuery(ctx context.Context, queryID string, results []tg.InlineQueryResult, opts ...payload.Option) error {
	if err := validate.Required("inline_query_id", queryID); err != nil {
		return err
	}
	if len(results) > 50 {
		return tg.NewValidationError("results", "cannot exceed 50 results")
	}
	if results == nil {
		results = []tg.InlineQueryResult{}
	}
	d := payload.Data{payload.InlineQueryID: queryID, payload.Results: results}
	return exec(ctx, c, "answerInlineQuery", d.Apply(opts...))
}

// AnswerWebAppQuery sends a message on behalf of the user who opened a Web App.
func (c *Client) AnswerWebAppQuery(ctx context.Context, queryID string, result tg.InlineQueryResult) (*tg.SentWebAppMessage, error) {
	if err := validate.Required("web_app_query_id", queryID); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, tg.NewValidationError("result", "is required")
	}
	d := payload.Data{payload.WebAppQueryID: queryID, payload.Result: result}
	return call[*tg.SentWebAppMessage](ctx, c, "answerWebAppQuery", d)
}
