package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// GetMe returns basic information about the bot.
func (c *Client) GetMe(ctx context.Context) (*tg.User, error) {
	return call[*tg.User](ctx, c, "getMe", nil)
}

// LogOut logs the bot out of the cloud Bot API server before moving it to a
// local server.
func (c *Client) LogOut(ctx context.Context) error {
	return exec(ctx, c, "logOut", nil)
}

// CloseBot closes the bot instance before moving it between local servers.
func (c *Client) CloseBot(ctx context.Context) error {
	return exec(ctx, c, "close", nil)
}

// SetMyCommands changes the bot's command list. Use ForScope and ForLanguage
// to target a subset of users.
func (c *Client) SetMyCommands(ctx context.Context, commands []tg.BotCommand, opts ...payload.Option) error {
	if err := validate.NotEmpty("commands", commands); err != nil {
		return err
	}
	for _, cmd := range commands {
		if err := validate.First(validate.Required("command", cmd.Command), validate.Required("description", cmd.Description)); err != nil {
			return err
		}
	}
	return exec(ctx, c, "setMyCommands", payload.Data{payload.Commands: commands}.Apply(opts...))
}

// GetMyCommands returns the command list for a scope and language.
func (c *Client) GetMyCommands(ctx context.Context, opts ...payload.Option) ([]tg.BotCommand, error) {
	return call[[]tg.BotCommand](ctx, c, "getMyCommands", payload.New(opts...))
}

// DeleteMyCommands removes the command list for a scope and language.
func (c *Client) DeleteMyCommands(ctx context.Context, opts ...payload.Option) error {
	return exec(ctx, c, "deleteMyCommands", payload.New(opts...))
}

// SetMyName changes the bot's name. An empty name removes the localized name.
func (c *Client) SetMyName(ctx context.Context, name string, opts ...payload.Option) error {
	return exec(ctx, c, "setMyName", payload.Data{payload.Name: name}.Apply(opts...))
}

// GetMyName returns the bot's name for a language.
func (c *Client) GetMyName(ctx context.Context, opts ...payload.Option) (*tg.BotName, error) {
	return call[*tg.BotName](ctx, c, "getMyName", payload.New(opts...))
}

// SetMyDescription changes the text shown in an empty chat with the bot.
func (c *Client) SetMyDescription(ctx context.Context, description string, opts ...payload.Option) error {
	return exec(ctx, c, "setMyDescription", payload.Data{payload.Description: description}.Apply(opts...))
}

// GetMyDescription returns the bot's description for a language.
func (c *Client) GetMyDescription(ctx context.Context, opts ...payload.Option) (*tg.BotDescription, error) {
	return call[*tg.BotDescription](ctx, c, "getMyDescription", payload.New(opts...))
}

// SetMyShortDescription changes the text shown on the bot's profile page.
func (c *Client) SetMyShortDescription(ctx context.Context, description string, opts ...payload.Option) error {
	return exec(ctx, c, "setMyShortDescription", payload.Data{payload.ShortDescription: description}.Apply(opts...))
}

// GetMyShortDescription returns the bot's short description for a language.
func (c *Client) GetMyShortDescription(ctx context.Context, opts ...payload.Option) (*tg.BotShortDescription, error) {
	return call[*tg.BotShortDescription](ctx, c, "getMyShortDescription", payload.New(opts...))
}

// SetChatMenuButton changes the menu button in a private chat (ForChat) or
// the default one.
func (c *Client) SetChatMenuButton(ctx context.Context, button tg.MenuButton, opts ...payload.Option) error {
	return exec(ctx, c, "setChatMenuButton", payload.Data{payload.MenuButton: button}.Apply(opts...))
}

// GetChatMenuButton returns the menu button of a private chat (ForChat) or the default one.
func (c *Client) GetChatMenuButton(ctx context.Context, opts ...payload.Option) (*tg.MenuButton, error) {
	return call[*tg.MenuButton](ctx, c, "getChatMenuButton", payload.New(opts...))
}

// SetMyDefaultAdministratorRights changes the rights suggested when the bot
// is added as an administrator. nil rights clears them.
func (c *Client) SetMyDefaultAdministratorRights(ctx context.Context, rights *tg.ChatAdministratorRights, opts ...payload.Option) error {
	return exec(ctx, c, "setMyDefaultAdministratorRights", payload.Data{payload.Rights: rights}.Apply(opts...))
}

// GetMyDefaultAdministratorRights returns the rights for groups, or for
// channels with ForChannels.
func (c *Client) GetMyDefaultAdministratorRights(ctx context.Context, opts ...payload.Option) (*tg.ChatAdministratorRights, error) {
	return call[*tg.ChatAdministratorRights](ctx, c, "getMyDefaultAdministratorRights", payload.New(opts...))
}
