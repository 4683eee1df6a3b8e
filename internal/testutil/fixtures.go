package testutil

import "github.com/prilive-com/tgbind/tg"

// Shared test data.
const (
	TestToken       = "123456789:ABCdefGHIjklMNOpqrsTUVwxyz"
	TestChatID      = int64(123456789)
	TestGroupID     = int64(-1001234567890)
	TestUserID      = int64(987654321)
	TestBotID       = int64(123456789)
	TestUsername    = "testuser"
	TestBotUsername = "testbot"
)

// TestUser returns a user fixture.
func TestUser() *tg.User {
	return &tg.User{
		ID:        TestUserID,
		FirstName: "Test",
		LastName:  "User",
		Username:  TestUsername,
	}
}

// TestChat returns a private chat fixture.
func TestChat() *tg.Chat {
	return &tg.Chat{
		ID:        TestChatID,
		Type:      tg.ChatTypePrivate,
		FirstName: "Test",
		Username:  TestUsername,
	}
}

// TestMessage returns a message fixture in TestChat.
func TestMessage(messageID int, text string) *tg.Message {
	return &tg.Message{
		MessageID: messageID,
		Date:      1234567890,
		Chat:      TestChat(),
		From:      TestUser(),
		Text:      text,
	}
}

// UpdateJSON returns a raw message update as the API sends it.
func UpdateJSON(updateID, messageID int, text string) map[string]any {
	return map[string]any{
		"update_id": updateID,
		"message":   MessageJSON(messageID, text),
	}
}

// CallbackUpdateJSON returns a raw callback query update. An empty
// inlineMessageID attaches a message in TestChat instead.
func CallbackUpdateJSON(updateID int, data, inlineMessageID string) map[string]any {
	cb := map[string]any{
		"id":            "cb_1",
		"from":          map[string]any{"id": TestUserID, "is_bot": false, "first_name": "Test"},
		"chat_instance": "instance_1",
		"data":          data,
	}
	if inlineMessageID != "" {
		cb["inline_message_id"] = inlineMessageID
	} else {
		cb["message"] = MessageJSON(7, "Pick one")
	}
	return map[string]any{"update_id": updateID, "callback_query": cb}
}
