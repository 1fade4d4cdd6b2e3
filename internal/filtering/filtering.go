// Package filtering removes invalid candidates from the events table. Each
// pass is a Filter; passes run sequentially over the full table and report
// how many identifiers they dropped.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/recmetrics/fairprep/internal/table"
)

// Column names of the events table the filters inspect.
const (
	stateColumn    = "Candidate State"
	eventColumn    = "event_type__val"
	feedbackColumn = "event_feedback"
	sectorColumn   = "Sector"
)

// Filter represents a single row-elimination pass applied to the table.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate() error
	Apply(ctx context.Context, t *table.Table) (*table.Table, Step, error)
}

// Step describes the result of executing one pass. Counts are distinct
// candidate identifiers, not rows.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Filtering executes an ordered list of passes.
type Filtering struct {
	steps  []Filter
	logger *zap.Logger
}

// New creates a Filtering with the provided steps.
func New(steps []Filter, logger *zap.Logger) *Filtering {
	return &Filtering{steps: steps, logger: logger}
}

// RunFilters validates every enabled step up front, then applies them in
// order, logging the identifier counts of each step.
func (f *Filtering) RunFilters(ctx context.Context, t *table.Table) (*table.Table, error) {
	for _, step := range f.steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range f.steps {
		if !step.IsEnabled() {
			f.logger.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}

		rowsBefore := t.Len()
		next, info, err := step.Apply(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		f.logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
			zap.Int("rows_before", rowsBefore),
			zap.Int("rows_after", next.Len()),
		)

		t = next
	}

	return t, nil
}

// dropIdentifiers rebuilds the table without the rows of the marked
// identifiers, preserving row order.
func dropIdentifiers(t *table.Table, drop map[string]bool) *table.Table {
	out := table.New(t.Columns)
	for _, row := range t.Rows {
		if drop[row.Get(idColumn).String()] {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

const idColumn = "ID"
