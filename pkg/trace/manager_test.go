package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitAppendsToHistory(t *testing.T) {
	m := NewManager()

	m.Emit("sess-1", "inventory_agent", "inventory_check", TypeThinking, StatusStarted, nil, "")
	m.Emit("sess-1", "inventory_agent", "inventory_check", TypeDecision, StatusCompleted,
		map[string]any{"availability_score": 1.0}, "")

	history := m.History("sess-1")
	require.Len(t, history, 2)
	assert.Equal(t, TypeThinking, history[0].Type)
	assert.Equal(t, StatusCompleted, history[1].Status)
	assert.Nil(t, m.History("sess-2"))
}

func TestConnectReplaysHistoryBeforeLiveEvents(t *testing.T) {
	m := NewManager()

	first := m.Emit("sess-1", "risk_scoring_agent", "risk_assessment", TypeThinking, StatusStarted, nil, "")

	sub := make(chan Event, subscriberBuffer)
	m.Connect("sess-1", sub)

	second := m.Emit("sess-1", "risk_scoring_agent", "risk_assessment", TypeDecision, StatusCompleted, nil, "")

	got := []Event{<-sub, <-sub}
	assert.Equal(t, first.ID, got[0].ID, "replayed history must arrive first")
	assert.Equal(t, second.ID, got[1].ID)
}

func TestSlowSubscriberIsDroppedNotBlocked(t *testing.T) {
	m := NewManager()

	sub := make(chan Event) // unbuffered: full at delivery time
	m.Connect("sess-1", sub)

	done := make(chan struct{})
	go func() {
		m.Emit("sess-1", "fulfillment_agent", "order_fulfillment", TypeResponse, StatusCompleted, nil, "")
		close(done)
	}()
	<-done

	// The subscriber was dropped; a later event must not reach it.
	m.Emit("sess-1", "fulfillment_agent", "order_fulfillment", TypeEvent, StatusCompleted, nil, "")
	select {
	case evt := <-sub:
		t.Fatalf("dropped subscriber received event %s", evt.ID)
	default:
	}
}

func TestObserverSeesEveryEvent(t *testing.T) {
	var seen []Event
	m := NewManager(WithObserverFactory(func(sessionID string) Observer {
		return func(evt Event) { seen = append(seen, evt) }
	}))

	m.Emit("sess-1", "medical_validator", "medical_validation", TypeThinking, StatusStarted, nil, "")
	m.Emit("sess-1", "medical_validator", "medical_validation", TypeDecision, StatusCompleted, nil, "")

	require.Len(t, seen, 2)
	assert.Equal(t, "medical_validator", seen[0].Agent)
}

func TestForgetDropsSession(t *testing.T) {
	m := NewManager()
	m.Emit("sess-1", "inventory_agent", "inventory_check", TypeThinking, StatusStarted, nil, "")

	m.Forget("sess-1")

	assert.Nil(t, m.History("sess-1"))
}

func TestParentIDLinksSteps(t *testing.T) {
	m := NewManager()

	parent := m.Emit("sess-1", "medical_validator", "medical_validation", TypeThinking, StatusStarted, nil, "")
	child := m.Emit("sess-1", "medical_validator", "interaction_check", TypeToolUse, StatusRunning, nil, parent.ID)

	assert.Equal(t, parent.ID, child.ParentID)
}
