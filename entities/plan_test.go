package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTransitions(t *testing.T) {
	cases := []struct {
		name string
		from PlanStatus
		to   PlanStatus
		ok   bool
	}{
		{"draft to awaiting", PlanDraft, PlanAwaitingConfirmation, true},
		{"draft to executing", PlanDraft, PlanExecuting, true},
		{"draft to completed", PlanDraft, PlanCompleted, false},
		{"awaiting to executing", PlanAwaitingConfirmation, PlanExecuting, true},
		{"awaiting to failed", PlanAwaitingConfirmation, PlanFailed, true},
		{"awaiting to completed", PlanAwaitingConfirmation, PlanCompleted, false},
		{"executing to completed", PlanExecuting, PlanCompleted, true},
		{"executing to failed", PlanExecuting, PlanFailed, true},
		{"completed is terminal", PlanCompleted, PlanExecuting, false},
		{"failed is terminal", PlanFailed, PlanExecuting, false},
		{"no re-draft", PlanCompleted, PlanDraft, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Plan{ID: "p1", Status: tc.from}
			err := p.TransitionTo(tc.to)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, p.Status)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.from, p.Status, "status must not change on rejected transition")
			}
		})
	}
}

func TestItemSetStatus(t *testing.T) {
	var i Item
	i.SetStatus(ItemCompleted)
	require.NotNil(t, i.CompletedAt)

	i.SetStatus(ItemPending)
	assert.Nil(t, i.CompletedAt, "completedAt is set iff status is completed")
}

func TestKnownTool(t *testing.T) {
	assert.True(t, KnownTool("createEvent"))
	assert.True(t, KnownTool("inboxToPlan"))
	assert.False(t, KnownTool("launchMissiles"))
	assert.False(t, KnownTool(""))
}
