package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogya-labs/aushadhi/pkg/trace"
)

func completedEvent(agent string, details map[string]any) trace.Event {
	return trace.Event{
		SessionID: "sess-1",
		Agent:     agent,
		Step:      "step",
		Type:      trace.TypeDecision,
		Status:    trace.StatusCompleted,
		Details:   details,
	}
}

func TestPipelineCompletionIsMonotonic(t *testing.T) {
	c := NewCalculator("sess-1")

	agents := []string{"risk_scoring_agent", "medical_validator", "inventory_agent", "fulfillment_agent"}
	var prev float64
	for _, agent := range agents {
		c.Observe(completedEvent(agent, nil))
		cur := c.Current().ContributingScores[ScorePipelineCompletion]
		assert.GreaterOrEqual(t, cur, prev, "completion must never decrease")
		prev = cur
	}
	assert.Equal(t, 1.0, prev)

	// Re-observing a finished agent must not move the needle.
	c.Observe(completedEvent("inventory_agent", nil))
	assert.Equal(t, 1.0, c.Current().ContributingScores[ScorePipelineCompletion])
}

func TestUnsafeDispenseGoesCritical(t *testing.T) {
	c := NewCalculator("sess-1")

	c.Observe(completedEvent("medical_validator", map[string]any{
		"safe_to_dispense": false,
		"confidence":       0.9,
	}))

	state := c.Current()
	require.NotNil(t, state)
	assert.Equal(t, AlertCritical, state.AlertLevel)
	assert.Equal(t, 0.0, state.ContributingScores[ScoreContraindicationOK])
}

func TestHighSeverityWarns(t *testing.T) {
	c := NewCalculator("sess-1")

	c.Observe(completedEvent("medical_validator", map[string]any{
		"severity_score":   8,
		"safe_to_dispense": true,
	}))

	state := c.Current()
	require.NotNil(t, state)
	assert.Equal(t, AlertWarn, state.AlertLevel)
}

func TestFailureHaltsPhase(t *testing.T) {
	c := NewCalculator("sess-1")

	c.Observe(trace.Event{
		SessionID: "sess-1",
		Agent:     "fulfillment_agent",
		Step:      "order_fulfillment",
		Type:      trace.TypeError,
		Status:    trace.StatusFailed,
		Details:   map[string]any{"error": "stock conflict"},
	})

	state := c.Current()
	require.NotNil(t, state)
	assert.Equal(t, PhaseHalted, state.PipelinePhase)
	assert.Equal(t, "stock conflict", state.HaltReason)

	// A halted session stays halted.
	c.Observe(completedEvent("inventory_agent", nil))
	assert.Equal(t, PhaseHalted, c.Current().PipelinePhase)
}

func TestPhaseFollowsAgents(t *testing.T) {
	c := NewCalculator("sess-1")

	c.Observe(completedEvent("medical_validator", nil))
	assert.Equal(t, PhaseValidation, c.Current().PipelinePhase)

	c.Observe(completedEvent("inventory_agent", nil))
	assert.Equal(t, PhaseInventory, c.Current().PipelinePhase)

	c.Observe(completedEvent("fulfillment_agent", nil))
	assert.Equal(t, PhaseComplete, c.Current().PipelinePhase)
}

func TestSubscriberSeesOnlyChanges(t *testing.T) {
	c := NewCalculator("sess-1")
	ch := make(chan State, 16)
	c.Subscribe(ch)

	c.Observe(completedEvent("inventory_agent", map[string]any{"availability_score": 1.0}))
	require.NotEmpty(t, ch)
	<-ch
	for len(ch) > 0 {
		<-ch
	}

	// Same scalar state again: no publish.
	c.Observe(trace.Event{
		SessionID: "sess-1",
		Agent:     "inventory_agent",
		Step:      "step",
		Type:      trace.TypeThinking,
		Status:    trace.StatusRunning,
	})
	assert.Empty(t, ch)
}

func TestRegistryReusesCalculators(t *testing.T) {
	r := NewRegistry()

	a := r.For("sess-1")
	b := r.For("sess-1")
	assert.Same(t, a, b)

	r.Forget("sess-1")
	assert.NotSame(t, a, r.For("sess-1"))
}

func TestObserverFactoryFeedsCalculator(t *testing.T) {
	r := NewRegistry()
	observer := r.ObserverFactory()("sess-1")
	require.NotNil(t, observer)

	observer(completedEvent("inventory_agent", map[string]any{"availability_score": 0.5}))

	state := r.For("sess-1").Current()
	require.NotNil(t, state)
	assert.Equal(t, 0.5, state.ContributingScores[ScoreInventoryMatch])
}
