// Package suites defines the smoke scenarios and groups them by name.
package suites

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/prilive-com/tgbind/cmd/tgbind-smoke/engine"
	"github.com/prilive-com/tgbind/tg"
)

// Smoke is a quick sanity check: identity, one message, cleanup.
func Smoke() engine.Scenario {
	return engine.Scenario{
		Name:        "smoke",
		Description: "Verify the token and send one message",
		Covers:      []string{"getMe", "sendMessage", "deleteMessages"},
		Timeout:     30 * time.Second,
		Steps: []engine.Step{
			&engine.GetMeStep{},
			&engine.SendMessageStep{Text: "[tgbind-smoke] smoke"},
		},
	}
}

// Messages walks a text message through the bound-model operations.
func Messages() engine.Scenario {
	return engine.Scenario{
		Name:        "messages",
		Description: "Reply, edit, forward, copy, pin, react, delete",
		Covers: []string{
			"sendMessage", "editMessageText", "forwardMessage", "copyMessage",
			"pinChatMessage", "unpinChatMessage", "setMessageReaction",
			"sendChatAction", "deleteMessage", "deleteMessages",
		},
		Steps: []engine.Step{
			&engine.ChatActionStep{Action: tg.ActionTyping},
			&engine.SendMessageStep{Text: "[tgbind-smoke] message lifecycle"},
			&engine.EditTextStep{Text: "[tgbind-smoke] message lifecycle (edited)"},
			&engine.ReplyStep{Text: "[tgbind-smoke] reply"},
			&engine.ReactStep{Emoji: "👍"},
			&engine.PinStep{},
			&engine.ForwardStep{},
			&engine.CopyStep{},
			&engine.SendMessageStep{Text: "[tgbind-smoke] to be deleted"},
			&engine.DeleteStep{},
		},
	}
}

// Media uploads files, reuses file IDs and downloads them back.
func Media() engine.Scenario {
	return engine.Scenario{
		Name:        "media",
		Description: "Upload, resend by file_id, album, caption edit, download",
		Covers: []string{
			"sendPhoto", "sendDocument", "sendMediaGroup",
			"editMessageCaption", "getFile", "deleteMessages",
		},
		Timeout: 3 * time.Minute,
		Steps: []engine.Step{
			&engine.ChatActionStep{Action: tg.ActionUploadPhoto},
			&engine.SendPhotoStep{Caption: "[tgbind-smoke] photo"},
			&engine.EditCaptionStep{Caption: "[tgbind-smoke] photo (edited)"},
			&engine.DownloadStep{File: "photo"},
			&engine.ResendPhotoStep{},
			&engine.SendDocumentStep{},
			&engine.DownloadStep{File: "document"},
			&engine.MediaGroupStep{},
		},
	}
}

// Keyboards attaches and removes an inline keyboard.
func Keyboards() engine.Scenario {
	return engine.Scenario{
		Name:        "keyboards",
		Description: "Inline keyboard on send and on edit",
		Covers:      []string{"sendMessage", "editMessageReplyMarkup", "deleteMessages"},
		Steps: []engine.Step{
			&engine.SendMessageStep{Text: "[tgbind-smoke] keyboard"},
			&engine.KeyboardStep{},
		},
	}
}

// Bot exercises the read-mostly bot and chat methods.
func Bot() engine.Scenario {
	return engine.Scenario{
		Name:        "bot",
		Description: "Commands, webhook info, chat info, raw calls",
		Covers: []string{
			"setMyCommands", "getMyCommands", "deleteMyCommands",
			"getWebhookInfo", "getChat", "getMe",
		},
		Steps: []engine.Step{
			&engine.CommandsStep{Commands: []tg.BotCommand{
				{Command: "start", Description: "Start"},
				{Command: "help", Description: "Help"},
			}},
			&engine.WebhookInfoStep{},
			&engine.GetChatStep{},
			&engine.RawStep{},
		},
	}
}

var registry = map[string]func() []engine.Scenario{
	"smoke":     func() []engine.Scenario { return []engine.Scenario{Smoke()} },
	"messages":  func() []engine.Scenario { return []engine.Scenario{Messages()} },
	"media":     func() []engine.Scenario { return []engine.Scenario{Media()} },
	"keyboards": func() []engine.Scenario { return []engine.Scenario{Keyboards()} },
	"bot":       func() []engine.Scenario { return []engine.Scenario{Bot()} },
	"all":       All,
}

// All returns every scenario.
func All() []engine.Scenario {
	return []engine.Scenario{Smoke(), Messages(), Media(), Keyboards(), Bot()}
}

// Names lists the suite names accepted by Lookup.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup resolves comma-separated suite names into scenarios.
func Lookup(names string) ([]engine.Scenario, error) {
	var out []engine.Scenario
	for _, name := range strings.Split(names, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		fn, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown suite %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		out = append(out, fn()...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no suite given (available: %s)", strings.Join(Names(), ", "))
	}
	return out, nil
}

// Coverage returns every method some scenario declares, sorted.
func Coverage() []string {
	set := make(map[string]struct{})
	for _, s := range All() {
		for _, m := range s.Covers {
			set[m] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}
