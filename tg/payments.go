package tg

import (
	"context"

	"github.com/prilive-com/tgbind/payload"
)

// CurrencyStars is the currency of payments in Telegram Stars.
const CurrencyStars = "XTR"

// LabeledPrice is a portion of the price. Amount is in the smallest units of
// the currency.
type LabeledPrice struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// Invoice describes an invoice sent in a message.
type Invoice struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	StartParameter string `json:"start_parameter"`
	Currency       string `json:"currency"`
	TotalAmount    int    `json:"total_amount"`
}

// ShippingAddress is a delivery address.
type ShippingAddress struct {
	CountryCode string `json:"country_code"`
	State       string `json:"state"`
	City        string `json:"city"`
	StreetLine1 string `json:"street_line1"`
	StreetLine2 string `json:"street_line2"`
	PostCode    string `json:"post_code"`
}

// OrderInfo is what the user entered at checkout.
type OrderInfo struct {
	Name            string           `json:"name,omitempty"`
	PhoneNumber     string           `json:"phone_number,omitempty"`
	Email           string           `json:"email,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
}

// ShippingOption is a delivery method offered in answerShippingQuery.
type ShippingOption struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Prices []LabeledPrice `json:"prices"`
}

// SuccessfulPayment is the service message about a completed payment.
type SuccessfulPayment struct {
	Currency                   string     `json:"currency"`
	TotalAmount                int        `json:"total_amount"`
	InvoicePayload             string     `json:"invoice_payload"`
	SubscriptionExpirationDate int64      `json:"subscription_expiration_date,omitempty"`
	IsRecurring                bool       `json:"is_recurring,omitempty"`
	IsFirstRecurring           bool       `json:"is_first_recurring,omitempty"`
	ShippingOptionID           string     `json:"shipping_option_id,omitempty"`
	OrderInfo                  *OrderInfo `json:"order_info,omitempty"`
	TelegramPaymentChargeID    string     `json:"telegram_payment_charge_id"`
	ProviderPaymentChargeID    string     `json:"provider_payment_charge_id"`
}

// RefundedPayment is the service message about a refund.
type RefundedPayment struct {
	Currency                string `json:"currency"`
	TotalAmount             int    `json:"total_amount"`
	InvoicePayload          string `json:"invoice_payload"`
	TelegramPaymentChargeID string `json:"telegram_payment_charge_id"`
	ProviderPaymentChargeID string `json:"provider_payment_charge_id,omitempty"`
}

// ShippingQuery asks for delivery options for a flexible-price invoice.
type ShippingQuery struct {
	ID              string          `json:"id"`
	From            *User           `json:"from"`
	InvoicePayload  string          `json:"invoice_payload"`
	ShippingAddress ShippingAddress `json:"shipping_address"`

	api Caller
}

// Bind implements Bindable.
func (q *ShippingQuery) Bind(c Caller) {
	if q == nil {
		return
	}
	q.api = c
	q.From.Bind(c)
}

// Ok offers delivery options.
func (q *ShippingQuery) Ok(ctx context.Context, options []ShippingOption) error {
	d := payload.Data{
		payload.ShippingQueryID: q.ID,
		payload.OK:              true,
		payload.ShippingOptions: options,
	}
	return exec(ctx, q.api, "answerShippingQuery", d)
}

// Fail tells the user delivery to the address is impossible.
func (q *ShippingQuery) Fail(ctx context.Context, reason string) error {
	d := payload.Data{
		payload.ShippingQueryID: q.ID,
		payload.OK:              false,
		payload.ErrorMessage:    reason,
	}
	return exec(ctx, q.api, "answerShippingQuery", d)
}

// PreCheckoutQuery asks the bot to confirm an order before charging.
// It must be answered within 10 seconds.
type PreCheckoutQuery struct {
	ID               string     `json:"id"`
	From             *User      `json:"from"`
	Currency         string     `json:"currency"`
	TotalAmount      int        `json:"total_amount"`
	InvoicePayload   string     `json:"invoice_payload"`
	ShippingOptionID string     `json:"shipping_option_id,omitempty"`
	OrderInfo        *OrderInfo `json:"order_info,omitempty"`

	api Caller
}

// Bind implements Bindable.
func (q *PreCheckoutQuery) Bind(c Caller) {
	if q == nil {
		return
	}
	q.api = c
	q.From.Bind(c)
}

// Ok confirms the order.
func (q *PreCheckoutQuery) Ok(ctx context.Context) error {
	d := payload.Data{payload.PreCheckoutQueryID: q.ID, payload.OK: true}
	return exec(ctx, q.api, "answerPreCheckoutQuery", d)
}

// Fail cancels the order and shows reason to the user.
func (q *PreCheckoutQuery) Fail(ctx context.Context, reason string) error {
	d := payload.Data{
		payload.PreCheckoutQueryID: q.ID,
		payload.OK:                 false,
		payload.ErrorMessage:       reason,
	}
	return exec(ctx, q.api, "answerPreCheckoutQuery", d)
}

// StarTransactions is the result of getStarTransactions.
type StarTransactions struct {
	Transactions []StarTransaction `json:"transactions"`
}

// StarTransaction is a Telegram Stars movement. Source is set for incoming
// transactions and Receiver for outgoing ones.
type StarTransaction struct {
	ID             string              `json:"id"`
	Amount         int                 `json:"amount"`
	NanostarAmount int                 `json:"nanostar_amount,omitempty"`
	Date           int64               `json:"date"`
	Source         *TransactionPartner `json:"source,omitempty"`
	Receiver       *TransactionPartner `json:"receiver,omitempty"`
}

// TransactionPartner is the other side of a Stars transaction. Type is
// "user", "chat", "fragment", "telegram_ads", "telegram_api" or "other".
type TransactionPartner struct {
	Type           string `json:"type"`
	User           *User  `json:"user,omitempty"`
	Chat           *Chat  `json:"chat,omitempty"`
	InvoicePayload string `json:"invoice_payload,omitempty"`
	RequestCount   int    `json:"request_count,omitempty"`
}
