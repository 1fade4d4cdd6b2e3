package filtering

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/recmetrics/fairprep/internal/table"
)

const hiredState = "hired"

// Terminal events that mean the process stalled at an offer or notification
// without a hire.
var nonProgressEvents = map[string]bool{
	"economic proposal":      true,
	"candidate notification": true,
}

// OutcomeConfig encodes the operator-supplied precedence of states and
// events. Source timestamps are unreliable, so the terminal event of a
// candidate is the row ranking highest under these orders; values absent
// from an order rank before everything listed.
type OutcomeConfig struct {
	StateOrder        []string `mapstructure:"state-order"`
	EventOrder        []string `mapstructure:"event-order"`
	FeedbacksToRemove []string `mapstructure:"feedbacks-to-remove"`
}

type outcomeFilter struct {
	cfg      *OutcomeConfig
	disabled bool
	reason   string

	stateRank map[string]int
	eventRank map[string]int
	feedbacks map[string]bool
}

// NewOutcome creates a filter that removes candidates whose terminal event
// indicates rejection or non-progress and who were never hired.
func NewOutcome(cfg *OutcomeConfig) Filter {
	return &outcomeFilter{cfg: cfg}
}

func (f *outcomeFilter) Name() string { return "outcome" }

func (f *outcomeFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *outcomeFilter) IsEnabled() bool { return !f.disabled }

func (f *outcomeFilter) Validate() error {
	if f.cfg == nil {
		return fmt.Errorf("outcome configuration is required")
	}
	if len(f.cfg.StateOrder) == 0 {
		return fmt.Errorf("state-order must list at least one state")
	}

	f.stateRank = rankOf(f.cfg.StateOrder, true)
	f.eventRank = rankOf(f.cfg.EventOrder, true)
	f.feedbacks = make(map[string]bool, len(f.cfg.FeedbacksToRemove))
	for _, fb := range f.cfg.FeedbacksToRemove {
		f.feedbacks[strings.TrimSpace(fb)] = true
	}
	return nil
}

func (f *outcomeFilter) Apply(_ context.Context, t *table.Table) (*table.Table, Step, error) {
	normalize(t)

	groups := t.GroupBy(idColumn)
	initial := len(groups)

	drop := make(map[string]bool)
	for _, group := range groups {
		terminal := t.Rows[f.terminalRow(t, group.Rows)]

		// A candidate hired at any point stays, whatever the configured
		// orders put last.
		hired := false
		for _, ri := range group.Rows {
			if t.Rows[ri].Get(stateColumn).String() == hiredState {
				hired = true
				break
			}
		}
		if hired {
			continue
		}

		feedback := terminal.Get(feedbackColumn).String()
		event := terminal.Get(eventColumn).String()
		if f.feedbacks[feedback] || nonProgressEvents[event] {
			drop[group.Key] = true
		}
	}

	out := dropIdentifiers(t, drop)
	return out, Step{Initial: initial, Dropped: len(drop), Left: initial - len(drop)}, nil
}

// terminalRow returns the index of the group's highest-ranked row under the
// configured state and event orders. The sort is stable, so ties keep their
// source order and the last row wins.
func (f *outcomeFilter) terminalRow(t *table.Table, rows []int) int {
	sorted := make([]int, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		si := rank(f.stateRank, t.Rows[sorted[i]].Get(stateColumn).String())
		sj := rank(f.stateRank, t.Rows[sorted[j]].Get(stateColumn).String())
		if si != sj {
			return si < sj
		}
		ei := rank(f.eventRank, t.Rows[sorted[i]].Get(eventColumn).String())
		ej := rank(f.eventRank, t.Rows[sorted[j]].Get(eventColumn).String())
		return ei < ej
	})
	return sorted[len(sorted)-1]
}

// normalize rewrites state and event cells trimmed and lower-cased and
// feedback cells trimmed, so every later comparison is literal.
func normalize(t *table.Table) {
	for _, row := range t.Rows {
		if v := row.Get(stateColumn); !v.IsMissing() {
			row.Set(stateColumn, table.NewValue(strings.ToLower(strings.TrimSpace(v.Raw))))
		}
		if v := row.Get(eventColumn); !v.IsMissing() {
			row.Set(eventColumn, table.NewValue(strings.ToLower(strings.TrimSpace(v.Raw))))
		}
		if v := row.Get(feedbackColumn); !v.IsMissing() {
			row.Set(feedbackColumn, table.NewValue(strings.TrimSpace(v.Raw)))
		}
	}
}

func rankOf(order []string, lower bool) map[string]int {
	ranks := make(map[string]int, len(order))
	for i, v := range order {
		v = strings.TrimSpace(v)
		if lower {
			v = strings.ToLower(v)
		}
		ranks[v] = i
	}
	return ranks
}

// rank returns the position of v in the order, or -1 when unlisted so that
// unknown values sort before everything the operator ranked.
func rank(ranks map[string]int, v string) int {
	if r, ok := ranks[v]; ok {
		return r
	}
	return -1
}
