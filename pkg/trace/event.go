// Package trace provides the per-session observability stream: an
// append-only trace log per session with live fan-out to subscribers.
package trace

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies what a trace event describes.
type EventType string

// Event types.
const (
	TypeThinking EventType = "thinking"
	TypeToolUse  EventType = "tool_use"
	TypeDecision EventType = "decision"
	TypeResponse EventType = "response"
	TypeError    EventType = "error"
	TypeEvent    EventType = "event"
)

// Status is the lifecycle state of the step a trace event belongs to.
type Status string

// Event statuses.
const (
	StatusStarted   Status = "started"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Event is a single entry in a session's trace log. Serialized form matches
// the live trace protocol: {id, session_id, timestamp, agent, step, type,
// status, details, parent_id?}.
type Event struct {
	ID        string         `json:"id"`
	SessionID string         `json:"session_id"`
	Timestamp time.Time      `json:"timestamp"`
	Agent     string         `json:"agent"`
	Step      string         `json:"step"`
	Type      EventType      `json:"type"`
	Status    Status         `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	ParentID  string         `json:"parent_id,omitempty"`
}

// newEvent stamps identity and time onto a trace event.
func newEvent(sessionID, agent, step string, typ EventType, status Status, details map[string]any, parentID string) Event {
	return Event{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Timestamp: time.Now(),
		Agent:     agent,
		Step:      step,
		Type:      typ,
		Status:    status,
		Details:   details,
		ParentID:  parentID,
	}
}
