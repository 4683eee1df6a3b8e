package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/ratelimit"
)

// Runner executes scenarios with a message budget. Steps are paced by the
// limiter so a run stays well below the Bot API flood limits.
type Runner struct {
	runtime      *Runtime
	pace         ratelimit.Limiter
	maxMessages  int
	messageCount int
	logger       *slog.Logger
}

// NewRunner creates a scenario runner.
func NewRunner(rt *Runtime, pace ratelimit.Limiter, maxMessages int, logger *slog.Logger) *Runner {
	return &Runner{
		runtime:     rt,
		pace:        pace,
		maxMessages: maxMessages,
		logger:      logger,
	}
}

// Run executes a scenario and returns the result. Messages it sent are
// deleted afterwards.
func (r *Runner) Run(ctx context.Context, scenario Scenario) *ScenarioResult {
	result := &ScenarioResult{
		ScenarioName: scenario.Name,
		Covers:       scenario.Covers,
		StartTime:    time.Now(),
		Steps:        make([]StepResult, 0, len(scenario.Steps)),
	}

	timeout := scenario.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r.logger.Info("starting scenario",
		"name", scenario.Name,
		"description", scenario.Description,
		"covers", scenario.Covers)

	for _, step := range scenario.Steps {
		if ctx.Err() != nil {
			result.Error = ctx.Err().Error()
			break
		}
		if r.messageCount >= r.maxMessages {
			result.Error = fmt.Sprintf("message budget exceeded (%d)", r.maxMessages)
			break
		}

		r.pace.Take()

		stepResult, err := r.runStep(ctx, step)
		result.Steps = append(result.Steps, *stepResult)
		if err != nil {
			result.Error = fmt.Sprintf("step %q failed: %v", step.Name(), err)
			break
		}
	}

	deleted, failed := r.runtime.Cleanup(context.WithoutCancel(ctx))
	if deleted+failed > 0 {
		r.logger.Info("cleanup completed", "deleted", deleted, "failed", failed)
	}

	result.Success = result.Error == ""
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	r.logger.Info("scenario completed",
		"name", scenario.Name,
		"success", result.Success,
		"duration", result.Duration,
		"messages", r.messageCount)

	return result
}

func (r *Runner) runStep(ctx context.Context, step Step) (*StepResult, error) {
	start := time.Now()
	r.logger.Debug("executing step", "step", step.Name())

	stepResult, err := step.Execute(ctx, r.runtime)
	if stepResult == nil {
		stepResult = &StepResult{}
	}
	stepResult.StepName = step.Name()
	stepResult.Duration = time.Since(start)

	if err != nil {
		stepResult.Error = err.Error()
		r.logger.Error("step failed", "step", step.Name(), "error", err, "duration", stepResult.Duration)
		return stepResult, err
	}

	stepResult.Success = true
	r.messageCount += len(stepResult.MessageIDs)

	r.logger.Info("step completed",
		"step", step.Name(),
		"duration", stepResult.Duration,
		"messages", len(stepResult.MessageIDs))

	return stepResult, nil
}

// MessageCount returns the number of messages sent so far.
func (r *Runner) MessageCount() int {
	return r.messageCount
}
