package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// SendGame sends a game. Games can only be sent to private chats and groups
// by numeric ID.
func (c *Client) SendGame(ctx context.Context, chatID int64, shortName string, opts ...payload.Option) (*tg.Message, error) {
	if err := validate.First(validateChat(chatID), validate.Required("game_short_name", shortName)); err != nil {
		return nil, err
	}
	d := payload.Data{payload.ChatID: chatID, payload.GameShortName: shortName}
	return call[*tg.Message](ctx, c, "sendGame", d.Apply(opts...))
}

// SetGameScore sets a user's score in the game message. It fails when the
// new score is lower than the current one unless payload.Force is set.
func (c *Client) SetGameScore(ctx context.Context, target tg.Editable, userID int64, score int, opts ...payload.Option) (*tg.Message, error) {
	if err := validate.UserID(userID); err != nil {
		return nil, err
	}
	if score < 0 {
		return nil, tg.NewValidationError("score", "cannot be negative")
	}
	d := payload.Data{payload.UserID: userID, payload.Score: score}
	return c.edit(ctx, "setGameScore", target, d.Apply(opts...))
}

// GetGameHighScores returns the high score table around a user.
func (c *Client) GetGameHighScores(ctx context.Context, target tg.Editable, userID int64) ([]tg.GameHighScore, error) {
	if err := validate.UserID(userID); err != nil {
		return nil, err
	}
	ref, err := tg.EditTarget(target)
	if err != nil {
		return nil, err
	}
	return call[[]tg.GameHighScore](ctx, c, "getGameHighScores", ref.Set(payload.UserID, userID))
}
