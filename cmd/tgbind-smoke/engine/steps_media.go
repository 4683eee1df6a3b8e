package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prilive-com/tgbind/cmd/tgbind-smoke/fixtures"
	"github.com/prilive-com/tgbind/sender"
	"github.com/prilive-com/tgbind/tg"
)

// SendPhotoStep uploads a generated photo and remembers its file_id.
type SendPhotoStep struct {
	Caption string
}

func (s *SendPhotoStep) Name() string { return "sendPhoto" }

func (s *SendPhotoStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	msg, err := rt.Bot.SendPhoto(ctx, rt.ChatID, tg.FileFromBytes("smoke.png", fixtures.Photo()),
		sender.WithCaption(s.Caption))
	if err != nil {
		return nil, err
	}
	if len(msg.Photo) == 0 {
		return nil, errors.New("sent message has no photo sizes")
	}
	largest := msg.Photo[len(msg.Photo)-1]
	rt.FileIDs["photo"] = largest.FileID

	return &StepResult{
		Method:     "sendPhoto",
		MessageIDs: rt.Track(msg),
		FileIDs:    []string{largest.FileID},
		Evidence: map[string]any{
			"sizes":  len(msg.Photo),
			"width":  largest.Width,
			"height": largest.Height,
		},
	}, nil
}

// ResendPhotoStep sends the stored photo again by file_id.
type ResendPhotoStep struct{}

func (s *ResendPhotoStep) Name() string { return "sendPhoto(file_id)" }

func (s *ResendPhotoStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	id, ok := rt.FileIDs["photo"]
	if !ok {
		return nil, errors.New("no photo file_id stored")
	}
	msg, err := rt.Bot.SendPhoto(ctx, rt.ChatID, tg.FileFromID(id))
	if err != nil {
		return nil, err
	}

	return &StepResult{
		Method:     "sendPhoto",
		MessageIDs: rt.Track(msg),
		FileIDs:    []string{id},
	}, nil
}

// SendDocumentStep uploads a generated text document.
type SendDocumentStep struct{}

func (s *SendDocumentStep) Name() string { return "sendDocument" }

func (s *SendDocumentStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	msg, err := rt.Bot.SendDocument(ctx, rt.ChatID, tg.FileFromBytes("smoke.txt", fixtures.Document()))
	if err != nil {
		return nil, err
	}
	if msg.Document == nil {
		return nil, errors.New("sent message has no document")
	}
	rt.FileIDs["document"] = msg.Document.FileID

	return &StepResult{
		Method:     "sendDocument",
		MessageIDs: rt.Track(msg),
		FileIDs:    []string{msg.Document.FileID},
		Evidence: map[string]any{
			"file_name": msg.Document.FileName,
			"file_size": msg.Document.FileSize,
		},
	}, nil
}

// MediaGroupStep sends an album mixing an upload and the stored photo.
type MediaGroupStep struct{}

func (s *MediaGroupStep) Name() string { return "sendMediaGroup" }

func (s *MediaGroupStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	media := []tg.InputMedia{
		tg.InputMediaPhoto{Media: tg.FileFromBytes("album.png", fixtures.Photo()), Caption: "album 1/2"},
	}
	if id, ok := rt.FileIDs["photo"]; ok {
		media = append(media, tg.InputMediaPhoto{Media: tg.FileFromID(id), Caption: "album 2/2"})
	} else {
		media = append(media, tg.InputMediaPhoto{Media: tg.FileFromBytes("album2.png", fixtures.Photo())})
	}

	msgs, err := rt.Bot.SendMediaGroup(ctx, rt.ChatID, media)
	if err != nil {
		return nil, err
	}
	if len(msgs) != len(media) {
		return nil, fmt.Errorf("album has %d messages, want %d", len(msgs), len(media))
	}
	var ids []int
	for i := range msgs {
		ids = append(ids, rt.Track(&msgs[i])...)
	}

	return &StepResult{
		Method:     "sendMediaGroup",
		MessageIDs: ids,
		Evidence:   map[string]any{"media_group_id": msgs[0].MediaGroupID},
	}, nil
}

// EditCaptionStep changes the caption of the current message.
type EditCaptionStep struct {
	Caption string
}

func (s *EditCaptionStep) Name() string { return "editMessageCaption" }

func (s *EditCaptionStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	if rt.Last == nil {
		return nil, errNoMessage
	}
	msg, err := rt.Last.EditCaption(ctx, s.Caption)
	if err != nil {
		return nil, err
	}
	if msg != nil {
		rt.Last = msg
	}

	return &StepResult{
		Method:   "editMessageCaption",
		Evidence: map[string]any{"caption": s.Caption},
	}, nil
}

// DownloadStep resolves a stored file_id and downloads the file.
type DownloadStep struct {
	File string // key in Runtime.FileIDs
}

func (s *DownloadStep) Name() string { return "getFile" }

func (s *DownloadStep) Execute(ctx context.Context, rt *Runtime) (*StepResult, error) {
	id, ok := rt.FileIDs[s.File]
	if !ok {
		return nil, fmt.Errorf("no %s file_id stored", s.File)
	}
	f, err := rt.Bot.GetFile(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := f.Download(ctx, io.Discard)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	if f.FileSize > 0 && n != f.FileSize {
		return nil, fmt.Errorf("downloaded %d bytes, want %d", n, f.FileSize)
	}

	return &StepResult{
		Method:  "getFile",
		FileIDs: []string{id},
		Evidence: map[string]any{
			"file_path":  f.FilePath,
			"downloaded": n,
		},
	}, nil
}
