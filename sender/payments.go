package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// Invoice holds the required fields of sendInvoice and createInvoiceLink.
// ProviderToken is empty for payments in Telegram Stars.
type Invoice struct {
	Title         string
	Description   string
	Payload       string
	ProviderToken string
	Currency      string
	Prices        []tg.LabeledPrice
}

func (inv Invoice) data() (payload.Data, error) {
	if err := validate.First(
		validate.Required("title", inv.Title),
		validate.Required("description", inv.Description),
		validate.Required("payload", inv.Payload),
		validate.Required("currency", inv.Currency),
		validate.NotEmpty("prices", inv.Prices),
	); err != nil {
		return nil, err
	}
	if len(inv.Payload) > 128 {
		return nil, tg.NewValidationError("payload", "exceeds maximum length of 128 bytes")
	}
	if inv.Currency == tg.CurrencyStars && len(inv.Prices) != 1 {
		return nil, tg.NewValidationError("prices", "must contain exactly one item for Telegram Stars")
	}
	d := payload.Data{
		payload.Title:       inv.Title,
		payload.Description: inv.Description,
		payload.Payload:     inv.Payload,
		payload.Currency:    inv.Currency,
		payload.Prices:      inv.Prices,
	}
	if inv.ProviderToken != "" {
		d.Set(payload.ProviderToken, inv.ProviderToken)
	}
	return d, nil
}

// SendInvoice sends an invoice.
func (c *Client) SendInvoice(ctx context.Context, chatID tg.ChatID, inv Invoice, opts ...payload.Option) (*tg.Message, error) {
	if err := validateChat(chatID); err != nil {
		return nil, err
	}
	d, err := inv.data()
	if err != nil {
		return nil, err
	}
	d.Set(payload.ChatID, chatID)
	return call[*tg.Message](ctx, c, "sendInvoice", d.Apply(opts...))
}

// CreateInvoiceLink returns a link for an invoice.
func (c *Client) CreateInvoiceLink(ctx context.Context, inv Invoice, opts ...payload.Option) (string, error) {
	d, err := inv.data()
	if err != nil {
		return "", err
	}
	return call[string](ctx, c, "createInvoiceLink", d.Apply(opts...))
}

// AnswerShippingQuery replies to a shipping query. A failed answer needs an
// error message; a successful one needs shipping options.
func (c *Client) AnswerShippingQuery(ctx context.Context, queryID string, ok bool, options []tg.ShippingOption, errorMessage string) error {
	if err := validate.Required("shipping_query_id", queryID); err != nil {
		return err
	}
	d := payload.Data{payload.ShippingQueryID: queryID, payload.OK: ok}
	if ok {
		if err := validate.NotEmpty("shipping_options", options); err != nil {
			return err
		}
		d.Set(payload.ShippingOptions, options)
	} else {
		if err := validate.Required("error_message", errorMessage); err != nil {
			return err
		}
		d.Set(payload.ErrorMessage, errorMessage)
	}
	return exec(ctx, c, "answerShippingQuery", d)
}

// AnswerPreCheckoutQuery confirms or cancels an order. It must be called
// within 10 seconds of the query.
func (c *Client) AnswerPreCheckoutQuery(ctx context.Context, queryID string, ok bool, errorMessage string) error {
	if err := validate.Required("pre_checkout_query_id", queryID); err != nil {
		return err
	}
	d := payload.Data{payload.PreCheckoutQueryID: queryID, payload.OK: ok}
	if !ok {
		if err := validate.Required("error_message", errorMessage); err != nil {
			return err
		}
		d.Set(payload.ErrorMessage, errorMessage)
	}
	return exec(ctx, c, "answerPreCheckoutQuery", d)
}

// GetStarTransactions returns the bot's Telegram Star transactions. Page
// with WithOffset and WithLimit.
func (c *Client) GetStarTransactions(ctx context.Context, opts ...payload.Option) (*tg.StarTransactions, error) {
	return call[*tg.StarTransactions](ctx, c, "getStarTransactions", payload.New(opts...))
}

// RefundStarPayment refunds a successful Telegram Stars payment.
func (c *Client) RefundStarPayment(ctx context.Context, userID int64, chargeID string) error {
	if err := validate.First(validate.UserID(userID), validate.Required("telegram_payment_charge_id", chargeID)); err != nil {
		return err
	}
	d := payload.Data{payload.UserID: userID, payload.TelegramPaymentChargeID: chargeID}
	return exec(ctx, c, "refundStarPayment", d)
}
