package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// SetPassportDataErrors tells a user that some Telegram Passport elements
// they provided contain errors. The user cannot resend the elements until
// the errors are fixed.
func (c *Client) SetPassportDataErrors(ctx context.Context, userID int64, errs []tg.PassportElementError) error {
	if err := validate.First(validate.UserID(userID), validate.NotEmpty("errors", errs)); err != nil {
		return err
	}
	for _, e := range errs {
		if err := validate.First(validate.Required("source", e.Source), validate.Required("type", e.Type)); err != nil {
			return err
		}
	}
	return exec(ctx, c, "setPassportDataErrors", payload.Data{payload.UserID: userID, payload.Errors: errs})
}
