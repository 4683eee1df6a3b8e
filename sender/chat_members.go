package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

func memberData(chatID tg.ChatID, userID int64) payload.Data {
	return payload.Data{payload.ChatID: chatID, payload.UserID: userID}
}

// BanChatMember bans a user. In supergroups and channels the user cannot
// rejoin until unbanned.
//
//	err := client.BanChatMember(ctx, chatID, userID, sender.Until(time.Now().Add(24*time.Hour)), sender.WithRevokeMessages())
func (c *Client) BanChatMember(ctx context.Context, chatID tg.ChatID, userID int64, opts ...payload.Option) error {
	if err := validateChatUser(chatID, userID); err != nil {
		return err
	}
	return exec(ctx, c, "banChatMember", memberData(chatID, userID).Apply(opts...))
}

// UnbanChatMember lifts a ban. Without WithOnlyIfBanned, a current member is
// removed from the chat.
func (c *Client) UnbanChatMember(ctx context.Context, chatID tg.ChatID, userID int64, opts ...payload.Option) error {
	if err := validateChatUser(chatID, userID); err != nil {
		return err
	}
	return exec(ctx, c, "unbanChatMember", memberData(chatID, userID).Apply(opts...))
}

// RestrictChatMember replaces a supergroup member's permissions.
func (c *Client) RestrictChatMember(ctx context.Context, chatID tg.ChatID, userID int64, perms tg.ChatPermissions, opts ...payload.Option) error {
	if err := validateChatUser(chatID, userID); err != nil {
		return err
	}
	d := memberData(chatID, userID).Set(payload.Permissions, perms)
	return exec(ctx, c, "restrictChatMember", d.Apply(opts...))
}

// PromoteChatMember grants administrator rights. The rights are sent as flat
// parameters; zero rights demote the user.
func (c *Client) PromoteChatMember(ctx context.Context, chatID tg.ChatID, userID int64, rights tg.ChatAdministratorRights, opts ...payload.Option) error {
	if err := validateChatUser(chatID, userID); err != nil {
		return err
	}
	d := memberData(chatID, userID)
	if err := d.Merge(rights); err != nil {
		return err
	}
	return exec(ctx, c, "promoteChatMember", d.Apply(opts...))
}

// DemoteChatMember removes all administrator rights.
func (c *Client) DemoteChatMember(ctx context.Context, chatID tg.ChatID, userID int64) error {
	return c.PromoteChatMember(ctx, chatID, userID, tg.ChatAdministratorRights{})
}

// SetChatAdministratorCustomTitle sets an administrator's title (0-16 characters).
func (c *Client) SetChatAdministratorCustomTitle(ctx context.Context, chatID tg.ChatID, userID int64, title string) error {
	if err := validateChatUser(chatID, userID); err != nil {
		return err
	}
	if n := len([]rune(title)); n > 16 {
		return tg.NewValidationError("custom_title", "must be at most 16 characters")
	}
	return exec(ctx, c, "setChatAdministratorCustomTitle", memberData(chatID, userID).Set(payload.CustomTitle, title))
}

// BanChatSenderChat bans a channel chat from posting in a supergroup or channel.
func (c *Client) BanChatSenderChat(ctx context.Context, chatID tg.ChatID, senderChatID int64) error {
	if err := validate.First(validateChat(chatID), validate.ChatID("sender_chat_id", senderChatID)); err != nil {
		return err
	}
	return exec(ctx, c, "banChatSenderChat", payload.Data{payload.ChatID: chatID, payload.SenderChatID: senderChatID})
}

// UnbanChatSenderChat lifts a sender chat ban.
func (c *Client) UnbanChatSenderChat(ctx context.Context, chatID tg.ChatID, senderChatID int64) error {
	if err := validate.First(validateChat(chatID), validate.ChatID("sender_chat_id", senderChatID)); err != nil {
		return err
	}
	return exec(ctx, c, "unbanChatSenderChat", payload.Data{payload.ChatID: chatID, payload.SenderChatID: senderChatID})
}

// GetChatMember returns a member's status in a chat.
func (c *Client) GetChatMember(ctx context.Context, chatID tg.ChatID, userID int64) (*tg.ChatMember, error) {
	if err := validateChatUser(chatID, userID); err != nil {
		return nil, err
	}
	return call[*tg.ChatMember](ctx, c, "getChatMember", memberData(chatID, userID))
}

// GetChatMemberCount returns the number of members in a chat.
func (c *Client) GetChatMemberCount(ctx context.Context, chatID tg.ChatID) (int, error) {
	if err := validateChat(chatID); err != nil {
		return 0, err
	}
	return call[int](ctx, c, "getChatMemberCount", payload.Data{payload.ChatID: chatID})
}

// GetChatAdministrators returns the chat's non-bot administrators.
func (c *Client) GetChatAdministrators(ctx context.Context, chatID tg.ChatID) ([]tg.ChatMember, error) {
	if err := validateChat(chatID); err != nil {
		return nil, err
	}
	return call[[]tg.ChatMember](ctx, c, "getChatAdministrators", payload.Data{payload.ChatID: chatID})
}

// ApproveChatJoinRequest approves a join request.
func (c *Client) ApproveChatJoinRequest(ctx context.Context, chatID tg.ChatID, userID int64) error {
	if err := validateChatUser(chatID, userID); err != nil {
		return err
	}
	return exec(ctx, c, "approveChatJoinRequest", memberData(chatID, userID))
}

// DeclineChatJoinRequest declines a join request.
func (c *Client) DeclineChatJoinRequest(ctx context.Context, chatID tg.ChatID, userID int64) error {
	if err := validateChatUser(chatID, userID); err != nil {
		return err
	}
	return exec(ctx, c, "declineChatJoinRequest", memberData(chatID, userID))
}

// LeaveChat makes the bot leave a group, supergroup or channel.
func (c *Client) LeaveChat(ctx context.Context, chatID tg.ChatID) error {
	if err := validateChat(chatID); err != nil {
		return err
	}
	return exec(ctx, c, "leaveChat", payload.Data{payload.ChatID: chatID})
}
