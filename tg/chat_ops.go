package tg

import (
	"context"

	"github.com/prilive-com/tgbind/payload"
)

func (c *Chat) data() payload.Data {
	return payload.Data{payload.ChatID: c.ID}
}

func (c *Chat) member(userID int64) payload.Data {
	return payload.Data{payload.ChatID: c.ID, payload.UserID: userID}
}

// Send sends a text message to the chat.
func (c *Chat) Send(ctx context.Context, text string, opts ...payload.Option) (*Message, error) {
	d := c.data().Set(payload.Text, text)
	return invoke[*Message](ctx, c.api, "sendMessage", d.Apply(opts...))
}

// SendPhoto sends a photo to the chat.
func (c *Chat) SendPhoto(ctx context.Context, photo InputFile, opts ...payload.Option) (*Message, error) {
	d := c.data().Set(payload.Photo, photo)
	return invoke[*Message](ctx, c.api, "sendPhoto", d.Apply(opts...))
}

// Action shows a status such as "typing" for up to five seconds.
func (c *Chat) Action(ctx context.Context, action ChatAction, opts ...payload.Option) error {
	d := c.data().Set(payload.Action, action)
	return exec(ctx, c.api, "sendChatAction", d.Apply(opts...))
}

// Full fetches the complete chat information.
func (c *Chat) Full(ctx context.Context) (*ChatFullInfo, error) {
	return invoke[*ChatFullInfo](ctx, c.api, "getChat", c.data())
}

// Leave makes the bot leave the chat.
func (c *Chat) Leave(ctx context.Context) error {
	return exec(ctx, c.api, "leaveChat", c.data())
}

// Administrators lists the chat's administrators other than bots.
func (c *Chat) Administrators(ctx context.Context) ([]ChatMember, error) {
	return invoke[[]ChatMember](ctx, c.api, "getChatAdministrators", c.data())
}

// Member returns a user's membership in the chat.
func (c *Chat) Member(ctx context.Context, userID int64) (*ChatMember, error) {
	return invoke[*ChatMember](ctx, c.api, "getChatMember", c.member(userID))
}

// MemberCount returns the number of members.
func (c *Chat) MemberCount(ctx context.Context) (int, error) {
	return invoke[int](ctx, c.api, "getChatMemberCount", c.data())
}

// Ban removes a user from the chat and blocks them from returning.
func (c *Chat) Ban(ctx context.Context, userID int64, opts ...payload.Option) error {
	return exec(ctx, c.api, "banChatMember", c.member(userID).Apply(opts...))
}

// Unban lifts a ban. The user is not added back to the chat.
func (c *Chat) Unban(ctx context.Context, userID int64, opts ...payload.Option) error {
	d := c.member(userID).Set(payload.OnlyIfBanned, true)
	return exec(ctx, c.api, "unbanChatMember", d.Apply(opts...))
}

// Restrict changes what a member of a supergroup may do.
func (c *Chat) Restrict(ctx context.Context, userID int64, perms ChatPermissions, opts ...payload.Option) error {
	d := c.member(userID).Set(payload.Permissions, perms)
	return exec(ctx, c.api, "restrictChatMember", d.Apply(opts...))
}

// Promote grants administrator rights. Zero rights demote the user.
func (c *Chat) Promote(ctx context.Context, userID int64, rights ChatAdministratorRights, opts ...payload.Option) error {
	d := c.member(userID)
	if err := d.Merge(rights); err != nil {
		return err
	}
	return exec(ctx, c.api, "promoteChatMember", d.Apply(opts...))
}

// SetTitle renames the chat.
func (c *Chat) SetTitle(ctx context.Context, title string) error {
	return exec(ctx, c.api, "setChatTitle", c.data().Set(payload.Title, title))
}

// SetDescription changes the chat description.
func (c *Chat) SetDescription(ctx context.Context, description string) error {
	return exec(ctx, c.api, "setChatDescription", c.data().Set(payload.Description, description))
}

// UnpinAll clears the list of pinned messages.
func (c *Chat) UnpinAll(ctx context.Context) error {
	return exec(ctx, c.api, "unpinAllChatMessages", c.data())
}

// ExportInviteLink revokes the primary invite link and returns a new one.
func (c *Chat) ExportInviteLink(ctx context.Context) (string, error) {
	return invoke[string](ctx, c.api, "exportChatInviteLink", c.data())
}
