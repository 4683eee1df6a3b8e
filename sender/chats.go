package sender

import (
	"context"

	"github.com/prilive-com/tgbind/internal/validate"
	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

func chatData(chatID tg.ChatID) payload.Data {
	return payload.Data{payload.ChatID: chatID}
}

// GetChat returns up-to-date information about a chat.
func (c *Client) GetChat(ctx context.Context, chatID tg.ChatID) (*tg.ChatFullInfo, error) {
	if err := validateChat(chatID); err != nil {
		return nil, err
	}
	return call[*tg.ChatFullInfo](ctx, c, "getChat", chatData(chatID))
}

// SetChatPermissions sets the default permissions of all members.
func (c *Client) SetChatPermissions(ctx context.Context, chatID tg.ChatID, perms tg.ChatPermissions, opts ...payload.Option) error {
	if err := validateChat(chatID); err != nil {
		return err
	}
	return exec(ctx, c, "setChatPermissions", chatData(chatID).Set(payload.Permissions, perms).Apply(opts...))
}

// ExportChatInviteLink revokes the primary invite link and returns a new one.
func (c *Client) ExportChatInviteLink(ctx context.Context, chatID tg.ChatID) (string, error) {
	if err := validateChat(chatID); err != nil {
		return "", err
	}
	return call[string](ctx, c, "exportChatInviteLink", chatData(chatID))
}

// CreateChatInviteLink creates an additional invite link.
func (c *Client) CreateChatInviteLink(ctx context.Context, chatID tg.ChatID, opts ...payload.Option) (*tg.ChatInviteLink, error) {
	if err := validateChat(chatID); err != nil {
		return nil, err
	}
	d := chatData(chatID).Apply(opts...)
	if err := validateInviteLimits(d); err != nil {
		return nil, err
	}
	return call[*tg.ChatInviteLink](ctx, c, "createChatInviteLink", d)
}

// EditChatInviteLink edits a non-primary invite link.
func (c *Client) EditChatInviteLink(ctx context.Context, chatID tg.ChatID, link string, opts ...payload.Option) (*tg.ChatInviteLink, error) {
	if err := validate.First(validateChat(chatID), validate.Required("invite_link", link)); err != nil {
		return nil, err
	}
	d := chatData(chatID).Set(payload.InviteLink, link).Apply(opts...)
	if err := validateInviteLimits(d); err != nil {
		return nil, err
	}
	return call[*tg.ChatInviteLink](ctx, c, "editChatInviteLink", d)
}

// RevokeChatInviteLink revokes an invite link created by the bot.
func (c *Client) RevokeChatInviteLink(ctx context.Context, chatID tg.ChatID, link string) (*tg.ChatInviteLink, error) {
	if err := validate.First(validateChat(chatID), validate.Required("invite_link", link)); err != nil {
		return nil, err
	}
	return call[*tg.ChatInviteLink](ctx, c, "revokeChatInviteLink", chatData(chatID).Set(payload.InviteLink, link))
}

// member_limit and creates_join_request are mutually exclusive.
func validateInviteLimits(d payload.Data) error {
	if limit, ok := d[payload.MemberLimit].(int); ok {
		if err := validate.InRange("member_limit", limit, 1, 99999); err != nil {
			return err
		}
		if d[payload.CreatesJoinRequest] == true {
			return tg.NewValidationError("member_limit", "cannot be combined with creates_join_request")
		}
	}
	return nil
}

// SetChatPhoto changes the chat photo. The photo must be an upload.
func (c *Client) SetChatPhoto(ctx context.Context, chatID tg.ChatID, photo tg.InputFile) error {
	if err := validateChat(chatID); err != nil {
		return err
	}
	if !photo.IsUpload() {
		return tg.NewValidationError("photo", "must be uploaded, file IDs and URLs are not accepted")
	}
	return exec(ctx, c, "setChatPhoto", chatData(chatID).Set(payload.Photo, photo))
}

// DeleteChatPhoto removes the chat photo.
func (c *Client) DeleteChatPhoto(ctx context.Context, chatID tg.ChatID) error {
	if err := validateChat(chatID); err != nil {
		return err
	}
	return exec(ctx, c, "deleteChatPhoto", chatData(chatID))
}

// SetChatTitle renames a chat (1-128 characters).
func (c *Client) SetChatTitle(ctx context.Context, chatID tg.ChatID, title string) error {
	if err := validate.First(validateChat(chatID), validate.Required("title", title)); err != nil {
		return err
	}
	if len([]rune(title)) > 128 {
		return tg.NewValidationError("title", "must be at most 128 characters")
	}
	return exec(ctx, c, "setChatTitle", chatData(chatID).Set(payload.Title, title))
}

// SetChatDescription changes the description (0-255 characters).
func (c *Client) SetChatDescription(ctx context.Context, chatID tg.ChatID, description string) error {
	if err := validateChat(chatID); err != nil {
		return err
	}
	if len([]rune(description)) > 255 {
		return tg.NewValidationError("description", "must be at most 255 characters")
	}
	return exec(ctx, c, "setChatDescription", chatData(chatID).Set(payload.Description, description))
}

// PinChatMessage pins a message. Use payload.Silent to pin without notifying members.
func (c *Client) PinChatMessage(ctx context.Context, chatID tg.ChatID, messageID int, opts ...payload.Option) error {
	if err := validateChatMessage(chatID, messageID); err != nil {
		return err
	}
	return exec(ctx, c, "pinChatMessage", chatData(chatID).Set(payload.MessageID, messageID).Apply(opts...))
}

// UnpinChatMessage unpins a message. A zero messageID unpins the most recent one.
func (c *Client) UnpinChatMessage(ctx context.Context, chatID tg.ChatID, messageID int, opts ...payload.Option) error {
	if err := validateChat(chatID); err != nil {
		return err
	}
	d := chatData(chatID)
	if messageID != 0 {
		if err := validate.MessageID(messageID); err != nil {
			return err
		}
		d.Set(payload.MessageID, messageID)
	}
	return exec(ctx, c, "unpinChatMessage", d.Apply(opts...))
}

// UnpinAllChatMessages clears the pinned messages list.
func (c *Client) UnpinAllChatMessages(ctx context.Context, chatID tg.ChatID) error {
	if err := validateChat(chatID); err != nil {
		return err
	}
	return exec(ctx, c, "unpinAllChatMessages", chatData(chatID))
}

// SetChatStickerSet sets the group sticker set of a supergroup.
func (c *Client) SetChatStickerSet(ctx context.Context, chatID tg.ChatID, name string) error {
	if err := validate.First(validateChat(chatID), validate.Required("sticker_set_name", name)); err != nil {
		return err
	}
	return exec(ctx, c, "setChatStickerSet", chatData(chatID).Set(payload.StickerSetName, name))
}

// DeleteChatStickerSet removes the group sticker set.
func (c *Client) DeleteChatStickerSet(ctx context.Context, chatID tg.ChatID) error {
	if err := validateChat(chatID); err != nil {
		return err
	}
	return exec(ctx, c, "deleteChatStickerSet", chatData(chatID))
}

// GetUserChatBoosts returns the boosts a user added to a chat.
func (c *Client) GetUserChatBoosts(ctx context.Context, chatID tg.ChatID, userID int64) (*tg.UserChatBoosts, error) {
	if err := validateChatUser(chatID, userID); err != nil {
		return nil, err
	}
	return call[*tg.UserChatBoosts](ctx, c, "getUserChatBoosts", memberData(chatID, userID))
}
