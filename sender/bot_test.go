package sender_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbind/internal/testutil"
	"github.com/prilive-com/tgbind/sender"
	"github.com/prilive-com/tgbind/tg"
)

func assertInvalid(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *tg.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, field, vErr.Field)
}

func TestSetMyCommands_ScopeAndLanguage(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)

	commands := []tg.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "help", Description: "Show help"},
	}
	err := client.SetMyCommands(context.Background(), commands,
		sender.ForScope(tg.ScopeChatAdministrators(testutil.TestGroupID)),
		sender.ForLanguage("de"),
	)
	require.NoError(t, err)

	var sent struct {
		Commands []tg.BotCommand `json:"commands"`
		Scope    struct {
			Type   string `json:"type"`
			ChatID int64  `json:"chat_id"`
		} `json:"scope"`
		LanguageCode string `json:"language_code"`
	}
	c := api.LastCapture()
	c.AssertAPIMethod(t, "setMyCommands")
	c.Decode(t, &sent)

	assert.Equal(t, commands, sent.Commands)
	assert.Equal(t, "chat_administrators", sent.Scope.Type)
	assert.Equal(t, testutil.TestGroupID, sent.Scope.ChatID)
	assert.Equal(t, "de", sent.LanguageCode)
}

func TestSetMyCommands_Validation(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	assertInvalid(t, client.SetMyCommands(ctx, nil), "commands")
	assertInvalid(t, client.SetMyCommands(ctx, []tg.BotCommand{{Command: "start"}}), "description")
	assertInvalid(t, client.SetMyCommands(ctx, []tg.BotCommand{{Description: "no name"}}), "command")
	assert.Zero(t, api.CaptureCount())
}

func TestGetMyCommands(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getMyCommands", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyOK(w, []map[string]any{{"command": "start", "description": "Start"}})
	})
	client := testutil.NewTestClient(t, api)

	cmds, err := client.GetMyCommands(context.Background(), sender.ForScope(tg.ScopeAllPrivateChats()))
	require.NoError(t, err)
	assert.Equal(t, []tg.BotCommand{{Command: "start", Description: "Start"}}, cmds)

	api.LastCapture().AssertParam(t, "scope", map[string]any{"type": "all_private_chats"})
}

func TestSetChatMenuButton(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	err := client.SetChatMenuButton(ctx, tg.MenuWebApp("Open", "https://example.com/app"), sender.ForChat(testutil.TestChatID))
	require.NoError(t, err)

	c := api.LastCapture()
	c.AssertAPIMethod(t, "setChatMenuButton")
	c.AssertParam(t, "chat_id", float64(testutil.TestChatID))
	c.AssertParam(t, "menu_button", map[string]any{
		"type":    "web_app",
		"text":    "Open",
		"web_app": map[string]any{"url": "https://example.com/app"},
	})

	require.NoError(t, client.SetChatMenuButton(ctx, tg.MenuCommands()))
	c = api.LastCapture()
	c.AssertParamAbsent(t, "chat_id")
	c.AssertParam(t, "menu_button", map[string]any{"type": "commands"})
}

func TestDefaultAdministratorRights(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getMyDefaultAdministratorRights", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyOK(w, map[string]any{"can_manage_chat": true, "can_delete_messages": true})
	})
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	rights := &tg.ChatAdministratorRights{CanManageChat: true, CanPromoteMembers: true}
	require.NoError(t, client.SetMyDefaultAdministratorRights(ctx, rights, sender.ForChannels()))

	c := api.LastCapture()
	c.AssertParam(t, "for_channels", true)
	sent := c.Params(t)["rights"].(map[string]any)
	assert.Equal(t, true, sent["can_manage_chat"])
	assert.Equal(t, true, sent["can_promote_members"])
	assert.Equal(t, false, sent["can_restrict_members"])

	require.NoError(t, client.SetMyDefaultAdministratorRights(ctx, nil))
	api.LastCapture().AssertParamAbsent(t, "rights")

	got, err := client.GetMyDefaultAdministratorRights(ctx, sender.ForChannels())
	require.NoError(t, err)
	assert.True(t, got.CanManageChat)
	assert.True(t, got.CanDeleteMessages)
	assert.False(t, got.CanPromoteMembers)
	api.LastCapture().AssertParam(t, "for_channels", true)
}

func TestGetUpdates(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getUpdates", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyUpdates(w, testutil.UpdateJSON(7, 1, "ping"), testutil.UpdateJSON(8, 2, "pong"))
	})
	api.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, 3)
	})
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	updates, err := client.GetUpdates(ctx,
		sender.WithOffset(7),
		sender.WithLimit(10),
		sender.WithPollTimeout(25*time.Second),
		sender.WithAllowedUpdates("message"),
	)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, 8, updates[1].UpdateID)
	assert.Equal(t, "pong", updates[1].Message.Text)

	c := api.LastCapture()
	c.AssertParam(t, "offset", float64(7))
	c.AssertParam(t, "limit", float64(10))
	c.AssertParam(t, "timeout", float64(25))
	c.AssertParam(t, "allowed_updates", []any{"message"})

	_, err = updates[0].Message.Reply(ctx, "ack")
	require.NoError(t, err)
	api.LastCapture().AssertAPIMethod(t, "sendMessage")
}

func TestGetUpdates_LimitRange(t *testing.T) {
	api := testutil.NewMockAPI(t)
	client := testutil.NewTestClient(t, api)
	ctx := context.Background()

	for _, limit := range []int{0, 101} {
		_, err := client.GetUpdates(ctx, sender.WithLimit(limit))
		assertInvalid(t, err, "limit")
	}
	assert.Zero(t, api.CaptureCount())

	api.On("getUpdates", func(w http.ResponseWriter, r *http.Request) { testutil.ReplyUpdates(w) })
	updates, err := client.GetUpdates(ctx, sender.WithLimit(100))
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestGetWebhookInfo(t *testing.T) {
	api := testutil.NewMockAPI(t)
	api.On("getWebhookInfo", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyOK(w, map[string]any{
			"url":                    "https://example.com/hook",
			"has_custom_certificate": false,
			"pending_update_count":   3,
			"allowed_updates":        []string{"message"},
		})
	})
	client := testutil.NewTestClient(t, api)

	info, err := client.GetWebhookInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/hook", info.URL)
	assert.Equal(t, 3, info.PendingUpdateCount)
	assert.Equal(t, []string{"message"}, info.AllowedUpdates)

	c := api.LastCapture()
	c.AssertContentType(t, "application/json")
	assert.Empty(t, c.Params(t))
}
