package filtering

import (
	"context"
	"strings"

	"github.com/recmetrics/fairprep/internal/table"
)

// earlyStates are the pipeline entry states. A candidate who has exactly one
// recorded event, stuck in one of these states, and no sector information is
// a low-signal import that never entered the selection process.
var earlyStates = map[string]bool{
	"imported":      true,
	"first contact": true,
	"in selection":  true,
}

type earlyStageFilter struct {
	disabled bool
	reason   string
}

// NewEarlyStage creates a filter that removes single-event candidates stuck
// in early, uninformative states with no sector information.
func NewEarlyStage() Filter {
	return &earlyStageFilter{}
}

func (f *earlyStageFilter) Name() string { return "early_stage" }

func (f *earlyStageFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *earlyStageFilter) IsEnabled() bool { return !f.disabled }

func (f *earlyStageFilter) Validate() error { return nil }

func (f *earlyStageFilter) Apply(_ context.Context, t *table.Table) (*table.Table, Step, error) {
	groups := t.GroupBy(idColumn)
	initial := len(groups)

	drop := make(map[string]bool)
	for _, group := range groups {
		if len(group.Rows) != 1 {
			continue
		}
		row := t.Rows[group.Rows[0]]
		state := strings.ToLower(strings.TrimSpace(row.Get(stateColumn).String()))
		if earlyStates[state] && row.Get(sectorColumn).IsMissing() {
			drop[group.Key] = true
		}
	}

	out := dropIdentifiers(t, drop)
	return out, Step{Initial: initial, Dropped: len(drop), Left: initial - len(drop)}, nil
}
