package engine

import (
	"context"
	"time"

	"github.com/prilive-com/tgbind"
	"github.com/prilive-com/tgbind/tg"
)

// Scenario is a named sequence of steps that declares method coverage.
type Scenario struct {
	Name        string
	Description string
	Covers      []string // Methods this scenario exercises
	Steps       []Step
	Timeout     time.Duration
}

// Step is a single smoke step.
type Step interface {
	Name() string
	Execute(ctx context.Context, rt *Runtime) (*StepResult, error)
}

// StepResult captures evidence from step execution.
type StepResult struct {
	StepName   string        `json:"step_name"`
	Method     string        `json:"method,omitempty"`
	Duration   time.Duration `json:"duration"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
	MessageIDs []int         `json:"message_ids,omitempty"`
	FileIDs    []string      `json:"file_ids,omitempty"`
	Evidence   any           `json:"evidence,omitempty"`
}

// ScenarioResult captures the result of running a scenario.
type ScenarioResult struct {
	ScenarioName string        `json:"scenario_name"`
	Covers       []string      `json:"covers"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Duration     time.Duration `json:"duration"`
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
	Steps        []StepResult  `json:"steps"`
}

// Runtime is the state shared between the steps of a run.
type Runtime struct {
	Bot    *tgbind.Bot
	ChatID int64

	// Created holds the IDs of every message sent during the run, for cleanup.
	Created []int
	// Last is the most recent message the steps work on.
	Last    *tg.Message
	FileIDs map[string]string // name -> file_id for reuse
}

// NewRuntime creates a runtime that sends to chatID.
func NewRuntime(bot *tgbind.Bot, chatID int64) *Runtime {
	return &Runtime{
		Bot:     bot,
		ChatID:  chatID,
		FileIDs: make(map[string]string),
	}
}

// Track records sent messages and makes the last one current.
func (rt *Runtime) Track(msgs ...*tg.Message) []int {
	ids := make([]int, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		ids = append(ids, m.MessageID)
		rt.Last = m
	}
	rt.Created = append(rt.Created, ids...)
	return ids
}

// TrackID records a message known only by ID, such as a copy.
func (rt *Runtime) TrackID(id int) {
	rt.Created = append(rt.Created, id)
}

// Cleanup deletes every tracked message.
func (rt *Runtime) Cleanup(ctx context.Context) (deleted, failed int) {
	ids := rt.Created
	rt.Created = nil
	rt.Last = nil
	if len(ids) == 0 {
		return 0, 0
	}
	if err := rt.Bot.DeleteMessages(ctx, rt.ChatID, ids); err != nil {
		return 0, len(ids)
	}
	return len(ids), 0
}

// Untrack forgets a message that was already deleted.
func (rt *Runtime) Untrack(id int) {
	kept := rt.Created[:0]
	for _, c := range rt.Created {
		if c != id {
			kept = append(kept, c)
		}
	}
	rt.Created = kept
	if rt.Last != nil && rt.Last.MessageID == id {
		rt.Last = nil
	}
}
