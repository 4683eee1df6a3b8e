package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/prilive-com/tgbind/payload"
	"github.com/prilive-com/tgbind/tg"
)

// smokeLanguage scopes command changes so the bot's real command list is untouched.
const smokeLanguage = "eo"

// CommandsStep sets, reads back and deletes a command list.
type CommandsStep struct {
	Commands []tg.BotCommand
}

func (s *CommandsStep) Name() string { return "setMyCommands" }

func (s *CommandsStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	lang := payload.With(payload.LanguageCode, smokeLanguage)
	if err := rt.Bot.SetMyCommands(ctx, s.Commands, lang); err != nil {
		return nil, err
	}
	got, err := rt.Bot.GetMyCommands(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("getMyCommands: %w", err)
	}
	if len(got) != len(s.Commands) {
		return nil, fmt.Errorf("got %d commands back, want %d", len(got), len(s.Commands))
	}
	if err := rt.Bot.DeleteMyCommands(ctx, lang); err != nil {
		return nil, fmt.Errorf("deleteMyCommands: %w", err)
	}

	return &StepResult{
		Method:   "setMyCommands",
		Evidence: map[string]any{"commands": len(got), "language": smokeLanguage},
	}, nil
}

// RawStep calls getMe through the untyped entry point.
type RawStep struct{}

func (s *RawStep) Name() string { return "raw(getMe)" }

func (s *RawStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	res, err := rt.Bot.Raw(ctx, "getMe", nil)
	if err != nil {
		return nil, err
	}
	m, ok := res.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("raw result is %T, want object", res)
	}
	if isBot, _ := m["isBot"].(bool); !isBot {
		return nil, errors.New("raw result lacks camelCase isBot=true")
	}

	return &StepResult{
		Method:   "getMe",
		Evidence: map[string]any{"keys": len(m)},
	}, nil
}

// WebhookInfoStep reads the webhook state.
type WebhookInfoStep struct{}

func (s *WebhookInfoStep) Name() string { return "getWebhookInfo" }

func (s *WebhookInfoStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	info, err := rt.Bot.GetWebhookInfo(ctx)
	if err != nil {
		return nil, err
	}
	return &StepResult{
		Method: "getWebhookInfo",
		Evidence: map[string]any{
			"url_set": info.URL != "",
			"pending": info.PendingUpdateCount,
		},
	}, nil
}

// GetChatStep reads the target chat.
type GetChatStep struct{}

func (s *GetChatStep) Name() string { return "getChat" }

func (s *GetChatStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	chat, err := rt.Bot.GetChat(ctx, rt.ChatID)
	if err != nil {
		return nil, err
	}
	if chat.ID != rt.ChatID {
		return nil, fmt.Errorf("got chat %d, want %d", chat.ID, rt.ChatID)
	}
	return &StepResult{
		Method:   "getChat",
		Evidence: map[string]any{"type": chat.Type},
	}, nil
}
