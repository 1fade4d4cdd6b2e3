package filtering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recmetrics/fairprep/internal/table"
)

func newEvents(rows []map[string]string) *table.Table {
	t := table.New([]string{idColumn, stateColumn, eventColumn, feedbackColumn, sectorColumn})
	for _, cells := range rows {
		row := make(table.Row, len(cells))
		for col, raw := range cells {
			if v := table.NewValue(raw); !v.IsMissing() {
				row.Set(col, v)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func remainingIDs(t *table.Table) []string {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		id := row.Get(idColumn).String()
		if !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	return ids
}

func TestEarlyStageDropsStuckSingletons(t *testing.T) {
	events := newEvents([]map[string]string{
		{idColumn: "1", stateColumn: "Imported"},
		{idColumn: "2", stateColumn: " first contact "},
		{idColumn: "3", stateColumn: "In Selection"},
		{idColumn: "4", stateColumn: "hired"},
	})

	out, step, err := NewEarlyStage().Apply(context.Background(), events)
	require.NoError(t, err)

	assert.Equal(t, []string{"4"}, remainingIDs(out))
	assert.Equal(t, Step{Initial: 4, Dropped: 3, Left: 1}, step)
}

func TestEarlyStageKeepsSectorBearingSingletons(t *testing.T) {
	events := newEvents([]map[string]string{
		{idColumn: "1", stateColumn: "imported", sectorColumn: "IT"},
	})

	out, step, err := NewEarlyStage().Apply(context.Background(), events)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Len())
	assert.Equal(t, 0, step.Dropped)
}

func TestEarlyStageKeepsMultiEventCandidates(t *testing.T) {
	// Two events mean the candidate moved, even if both look early.
	events := newEvents([]map[string]string{
		{idColumn: "1", stateColumn: "imported"},
		{idColumn: "1", stateColumn: "in selection"},
	})

	out, step, err := NewEarlyStage().Apply(context.Background(), events)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Len())
	assert.Equal(t, 0, step.Dropped)
}

func TestEarlyStageDisable(t *testing.T) {
	f := NewEarlyStage()
	f.Disable("testing")

	assert.False(t, f.IsEnabled())
}
