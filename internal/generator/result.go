// Where: internal/generator/result.go
// What: Per-item outcomes and the run summary.
// Why: Let the CLI, report, and manifest share one record of what happened.
package generator

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

// Status is the outcome of one item.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// ItemResult records one transformation.
type ItemResult struct {
	Type     brand.TypeName
	Output   string
	Status   Status
	Err      error
	Reason   string
	Duration time.Duration
}

// Summary tallies a run.
type Summary struct {
	Items     []ItemResult
	Succeeded int
	Skipped   int
	Failed    int
	Duration  time.Duration
}

func (s *Summary) add(item ItemResult) {
	s.Items = append(s.Items, item)
	switch item.Status {
	case StatusSucceeded:
		s.Succeeded++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}

// Err returns ErrRunFailed when at least one item failed.
func (s Summary) Err() error {
	if s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d transformation(s) failed", brand.ErrRunFailed, s.Failed)
}

// Failures returns the failed items in run order.
func (s Summary) Failures() []ItemResult {
	return lo.Filter(s.Items, func(item ItemResult, _ int) bool {
		return item.Status == StatusFailed
	})
}

// CountByType tallies items per transformation type.
func (s Summary) CountByType() map[brand.TypeName]int {
	return lo.CountValuesBy(s.Items, func(item ItemResult) brand.TypeName {
		return item.Type
	})
}
