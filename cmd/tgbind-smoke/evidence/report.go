// Package evidence collects scenario results into a run report.
package evidence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/prilive-com/tgbind/cmd/tgbind-smoke/engine"
)

// Report is the outcome of one smoke run.
type Report struct {
	RunID     string                   `json:"run_id"`
	StartTime time.Time                `json:"start_time"`
	EndTime   time.Time                `json:"end_time"`
	Duration  time.Duration            `json:"duration"`
	Success   bool                     `json:"success"`
	Scenarios []*engine.ScenarioResult `json:"scenarios"`
	Summary   Summary                  `json:"summary"`
}

// Summary contains aggregate statistics.
type Summary struct {
	TotalScenarios  int      `json:"total_scenarios"`
	PassedScenarios int      `json:"passed_scenarios"`
	FailedScenarios int      `json:"failed_scenarios"`
	TotalSteps      int      `json:"total_steps"`
	PassedSteps     int      `json:"passed_steps"`
	FailedSteps     int      `json:"failed_steps"`
	Messages        int      `json:"messages"`
	MethodsCovered  []string `json:"methods_covered"`
}

// NewReport starts a report stamped with the current time.
func NewReport() *Report {
	now := time.Now()
	return &Report{
		RunID:     now.Format("20060102-150405"),
		StartTime: now,
	}
}

// Add appends a scenario result.
func (r *Report) Add(result *engine.ScenarioResult) {
	r.Scenarios = append(r.Scenarios, result)
}

// Finalize fills in the summary. Methods are only counted as covered when
// their scenario passed.
func (r *Report) Finalize() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.Summary = Summary{}

	covered := make(map[string]struct{})
	for _, s := range r.Scenarios {
		r.Summary.TotalScenarios++
		if s.Success {
			r.Summary.PassedScenarios++
			for _, m := range s.Covers {
				covered[m] = struct{}{}
			}
		} else {
			r.Summary.FailedScenarios++
		}

		for _, step := range s.Steps {
			r.Summary.TotalSteps++
			if step.Success {
				r.Summary.PassedSteps++
			} else {
				r.Summary.FailedSteps++
			}
			r.Summary.Messages += len(step.MessageIDs)
		}
	}

	for m := range covered {
		r.Summary.MethodsCovered = append(r.Summary.MethodsCovered, m)
	}
	slices.Sort(r.Summary.MethodsCovered)
	r.Success = r.Summary.FailedScenarios == 0
}

// Save writes the report as JSON to dir/report-<RunID>.json.
func (r *Report) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	filename := filepath.Join(dir, "report-"+r.RunID+".json")
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return filename, nil
}

// FormatSummary returns a human-readable summary.
func (r *Report) FormatSummary() string {
	var sb strings.Builder

	status := "PASSED"
	if !r.Success {
		status = "FAILED"
	}

	fmt.Fprintf(&sb, "Smoke run: %s\n", r.RunID)
	fmt.Fprintf(&sb, "Status: %s\n", status)
	fmt.Fprintf(&sb, "Duration: %s\n\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintf(&sb, "Scenarios: %d/%d passed\n", r.Summary.PassedScenarios, r.Summary.TotalScenarios)
	fmt.Fprintf(&sb, "Steps: %d/%d passed\n", r.Summary.PassedSteps, r.Summary.TotalSteps)
	fmt.Fprintf(&sb, "Messages sent: %d\n", r.Summary.Messages)
	fmt.Fprintf(&sb, "Methods covered: %d\n", len(r.Summary.MethodsCovered))

	for _, s := range r.Scenarios {
		if !s.Success {
			fmt.Fprintf(&sb, "\nFAILED: %s - %s", s.ScenarioName, s.Error)
		}
	}

	return sb.String()
}
