package filtering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcomeConfig() *OutcomeConfig {
	return &OutcomeConfig{
		StateOrder: []string{"imported", "first contact", "in selection", "offer", "hired", "rejected"},
		EventOrder: []string{"application", "interview", "economic proposal", "candidate notification"},
		FeedbacksToRemove: []string{
			"Not interested",
			"Rejected by company",
		},
	}
}

func applyOutcome(t *testing.T, rows []map[string]string) ([]string, Step) {
	t.Helper()

	f := NewOutcome(outcomeConfig())
	require.NoError(t, f.Validate())

	out, step, err := f.Apply(context.Background(), newEvents(rows))
	require.NoError(t, err)
	return remainingIDs(out), step
}

func TestOutcomeValidate(t *testing.T) {
	require.Error(t, NewOutcome(nil).Validate())
	require.Error(t, NewOutcome(&OutcomeConfig{}).Validate())
	require.NoError(t, NewOutcome(outcomeConfig()).Validate())
}

func TestOutcomeDropsRemovableFeedback(t *testing.T) {
	ids, step := applyOutcome(t, []map[string]string{
		{idColumn: "1", stateColumn: "in selection", eventColumn: "interview"},
		{idColumn: "1", stateColumn: "rejected", eventColumn: "interview", feedbackColumn: " Not interested "},
		{idColumn: "2", stateColumn: "in selection", eventColumn: "interview"},
	})

	assert.Equal(t, []string{"2"}, ids)
	assert.Equal(t, Step{Initial: 2, Dropped: 1, Left: 1}, step)
}

func TestOutcomeDropsNonProgressEvents(t *testing.T) {
	ids, _ := applyOutcome(t, []map[string]string{
		{idColumn: "1", stateColumn: "offer", eventColumn: "Economic Proposal"},
		{idColumn: "2", stateColumn: "offer", eventColumn: "candidate notification"},
		{idColumn: "3", stateColumn: "offer", eventColumn: "interview"},
	})

	assert.Equal(t, []string{"3"}, ids)
}

func TestOutcomeHiredNeverRemoved(t *testing.T) {
	// The terminal row carries a removable feedback, but the candidate was
	// hired at some point.
	ids, step := applyOutcome(t, []map[string]string{
		{idColumn: "1", stateColumn: "hired", eventColumn: "interview"},
		{idColumn: "1", stateColumn: "rejected", eventColumn: "interview", feedbackColumn: "Not interested"},
	})

	assert.Equal(t, []string{"1"}, ids)
	assert.Equal(t, 0, step.Dropped)
}

func TestOutcomeTerminalRowByStateThenEvent(t *testing.T) {
	// "rejected" outranks "in selection", so the bad feedback on the lower
	// ranked row does not matter; the terminal row is clean.
	ids, _ := applyOutcome(t, []map[string]string{
		{idColumn: "1", stateColumn: "in selection", eventColumn: "interview", feedbackColumn: "Not interested"},
		{idColumn: "1", stateColumn: "rejected", eventColumn: "interview"},
	})
	assert.Equal(t, []string{"1"}, ids)

	// Same state in both rows: the event order decides the terminal row.
	ids, _ = applyOutcome(t, []map[string]string{
		{idColumn: "2", stateColumn: "offer", eventColumn: "candidate notification"},
		{idColumn: "2", stateColumn: "offer", eventColumn: "interview"},
	})
	assert.Equal(t, []string{}, ids)
}

func TestOutcomeUnlistedRanksLowest(t *testing.T) {
	// A state outside the configured order sorts before every listed state,
	// so the listed row is terminal.
	ids, _ := applyOutcome(t, []map[string]string{
		{idColumn: "1", stateColumn: "mystery state", eventColumn: "economic proposal"},
		{idColumn: "1", stateColumn: "in selection", eventColumn: "interview"},
	})

	assert.Equal(t, []string{"1"}, ids)
}

func TestOutcomeTiesKeepSourceOrder(t *testing.T) {
	// Identical ranks: the last row of the group is terminal.
	ids, _ := applyOutcome(t, []map[string]string{
		{idColumn: "1", stateColumn: "offer", eventColumn: "interview"},
		{idColumn: "1", stateColumn: "offer", eventColumn: "interview", feedbackColumn: "Not interested"},
	})

	assert.Equal(t, []string{}, ids)
}

func TestOutcomeRemovesAllRowsOfDroppedCandidate(t *testing.T) {
	f := NewOutcome(outcomeConfig())
	require.NoError(t, f.Validate())

	out, _, err := f.Apply(context.Background(), newEvents([]map[string]string{
		{idColumn: "1", stateColumn: "imported", eventColumn: "application"},
		{idColumn: "1", stateColumn: "rejected", eventColumn: "interview", feedbackColumn: "Not interested"},
		{idColumn: "2", stateColumn: "hired", eventColumn: "interview"},
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, out.Len())
	assert.Equal(t, "2", out.Rows[0].Get(idColumn).String())
}
