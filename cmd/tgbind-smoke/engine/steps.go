package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

var errNoMessage = errors.New("no message to work on")

// GetMeStep verifies bot identity.
type GetMeStep struct{}

func (s *GetMeStep) Name() string { return "getMe" }

func (s *GetMeStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	user, err := rt.Bot.Me(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsBot {
		return nil, fmt.Errorf("expected bot, got user %d", user.ID)
	}

	return &StepResult{
		Method: "getMe",
		Evidence: map[string]any{
			"username":   user.Username,
			"id":         user.ID,
			"first_name": user.FirstName,
		},
	}, nil
}

// SendMessageStep sends a text message.
type SendMessageStep struct {
	Text string
	Opts []payload.Option
}

func (s *SendMessageStep) Name() string { return "sendMessage" }

func (s *SendMessageStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	msg, err := rt.Bot.SendMessage(ctx, rt.ChatID, s.Text, s.Opts...)
	if err != nil {
		return nil, err
	}

	return &StepResult{
		Method:     "sendMessage",
		MessageIDs: rt.Track(msg),
		Evidence: map[string]any{
			"message_id": msg.MessageID,
			"text":       msg.Text,
		},
	}, nil
}

// ReplyStep replies to the current message through the bound model.
type ReplyStep struct {
	Text string
}

func (s *ReplyStep) Name() string { return "reply" }

func (s *ReplyStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if rt.Last == nil {
		return nil, errNoMessage
	}
	parent := rt.Last.MessageID
	msg, err := rt.Last.Reply(ctx, s.Text)
	if err != nil {
		return nil, err
	}
	if msg.ReplyToMessage != nil && msg.ReplyToMessage.MessageID != parent {
		return nil, fmt.Errorf("reply points at %d, want %d", msg.ReplyToMessage.MessageID, parent)
	}

	return &StepResult{
		Method:     "sendMessage",
		MessageIDs: rt.Track(msg),
		Evidence:   map[string]any{"reply_to": parent},
	}, nil
}

// EditTextStep edits the current message's text.
type EditTextStep struct {
	Text string
}

func (s *EditTextStep) Name() string { return "editMessageText" }

func (s *EditTextStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if rt.Last == nil {
		return nil, errNoMessage
	}
	msg, err := rt.Last.EditText(ctx, s.Text)
	if err != nil {
		return nil, err
	}
	if msg != nil {
		rt.Last = msg
	}

	return &StepResult{
		Method:   "editMessageText",
		Evidence: map[string]any{"new_text": s.Text},
	}, nil
}

// ForwardStep forwards the current message into the same chat.
type ForwardStep struct{}

func (s *ForwardStep) Name() string { return "forwardMessage" }

func (s *ForwardStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if rt.Last == nil {
		return nil, errNoMessage
	}
	from := rt.Last.MessageID
	msg, err := rt.Last.Forward(ctx, rt.ChatID)
	if err != nil {
		return nil, err
	}

	return &StepResult{
		Method:     "forwardMessage",
		MessageIDs: rt.Track(msg),
		Evidence: map[string]any{
			"from_message_id": from,
			"new_message_id":  msg.MessageID,
		},
	}, nil
}

// CopyStep copies the current message into the same chat.
type CopyStep struct{}

func (s *CopyStep) Name() string { return "copyMessage" }

func (s *CopyStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if rt.Last == nil {
		return nil, errNoMessage
	}
	id, err := rt.Last.Copy(ctx, rt.ChatID)
	if err != nil {
		return nil, err
	}
	rt.TrackID(id.MessageID)

	return &StepResult{
		Method:     "copyMessage",
		MessageIDs: []int{id.MessageID},
		Evidence:   map[string]any{"new_message_id": id.MessageID},
	}, nil
}

// PinStep pins and then unpins the current message.
type PinStep struct{}

func (s *PinStep) Name() string { return "pinChatMessage" }

func (s *PinStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if rt.Last == nil {
		return nil, errNoMessage
	}
	if err := rt.Last.Pin(ctx, payload.Silent()); err != nil {
		return nil, err
	}
	if err := rt.Last.Unpin(ctx); err != nil {
		return nil, fmt.Errorf("unpin: %w", err)
	}

	return &StepResult{
		Method:   "pinChatMessage",
		Evidence: map[string]any{"message_id": rt.Last.MessageID},
	}, nil
}

// ReactStep sets a reaction on the current message and clears it again.
type ReactStep struct {
	Emoji string
}

func (s *ReactStep) Name() string { return "setMessageReaction" }

func (s *ReactStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if rt.Last == nil {
		return nil, errNoMessage
	}
	if err := rt.Last.React(ctx, tg.ReactionEmoji(s.Emoji)); err != nil {
		return nil, err
	}
	if err := rt.Last.React(ctx); err != nil {
		return nil, fmt.Errorf("clear reaction: %w", err)
	}

	return &StepResult{
		Method:   "setMessageReaction",
		Evidence: map[string]any{"emoji": s.Emoji},
	}, nil
}

// ChatActionStep shows a chat action such as "typing".
type ChatActionStep struct {
	Action tg.ChatAction
}

func (s *ChatActionStep) Name() string { return "sendChatAction" }

func (s *ChatActionStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if err := rt.Bot.SendChatAction(ctx, rt.ChatID, s.Action); err != nil {
		return nil, err
	}
	return &StepResult{
		Method:   "sendChatAction",
		Evidence: map[string]any{"action": s.Action},
	}, nil
}

// KeyboardStep attaches an inline keyboard to the current message and then
// removes it.
type KeyboardStep struct{}

func (s *KeyboardStep) Name() string { return "editMessageReplyMarkup" }

func (s *KeyboardStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if rt.Last == nil {
		return nil, errNoMessage
	}
	msg, err := rt.Last.EditReplyMarkup(ctx, tg.Confirm("smoke:yes", "smoke:no"))
	if err != nil {
		return nil, err
	}
	if msg != nil && msg.ReplyMarkup == nil {
		return nil, errors.New("keyboard missing from edited message")
	}
	if _, err := rt.Last.EditReplyMarkup(ctx, nil); err != nil {
		return nil, fmt.Errorf("remove keyboard: %w", err)
	}

	return &StepResult{Method: "editMessageReplyMarkup"}, nil
}

// DeleteStep deletes the current message immediately.
type DeleteStep struct{}

func (s *DeleteStep) Name() string { return "deleteMessage" }

func (s *DeleteStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if rt.Last == nil {
		return nil, errNoMessage
	}
	id := rt.Last.MessageID
	if err := rt.Last.Delete(ctx); err != nil {
		return nil, err
	}
	rt.Untrack(id)

	return &StepResult{
		Method:   "deleteMessage",
		Evidence: map[string]any{"message_id": id},
	}, nil
}
