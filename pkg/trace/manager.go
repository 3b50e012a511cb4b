package trace

import (
	"log/slog"
	"sync"
	"time"
)

// subscriberBuffer is the channel capacity expected of subscribers. A
// subscriber whose buffer is full at delivery time is dropped from the
// fan-out set rather than blocking the emitter.
const subscriberBuffer = 64

// Observer receives every event of a session, before live subscribers.
// Attached once per session; the fusion calculator is the only built-in
// observer.
type Observer func(Event)

// ObserverFactory creates the per-session observer. May return nil to skip
// observation for a session.
type ObserverFactory func(sessionID string) Observer

// Sink receives a copy of every emitted event, e.g. for an external
// observability backend. The default sink is a no-op.
type Sink interface {
	Record(evt Event)
}

type noopSink struct{}

func (noopSink) Record(Event) {}

// Pacing controls the UX stagger applied before fan-out, keyed by event
// status. Zero values disable pacing (the default in tests).
type Pacing struct {
	Started   time.Duration
	Running   time.Duration
	Completed time.Duration
}

// DefaultPacing mirrors the live-dashboard stagger.
func DefaultPacing() Pacing {
	return Pacing{
		Started:   300 * time.Millisecond,
		Running:   100 * time.Millisecond,
		Completed: 500 * time.Millisecond,
	}
}

type session struct {
	history  []Event
	subs     map[chan Event]struct{}
	observer Observer
	observed bool
}

// Manager owns per-session trace logs and live fan-out. All methods are safe
// for concurrent use; fan-out never blocks the emitter.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	observerFactory ObserverFactory
	sink            Sink
	pacing          Pacing
}

// Option configures a Manager.
type Option func(*Manager)

// WithObserverFactory installs the per-session observer factory (fusion).
func WithObserverFactory(f ObserverFactory) Option {
	return func(m *Manager) { m.observerFactory = f }
}

// WithSink installs an external sink for emitted events.
func WithSink(s Sink) Option {
	return func(m *Manager) { m.sink = s }
}

// WithPacing sets the fan-out stagger.
func WithPacing(p Pacing) Option {
	return func(m *Manager) { m.pacing = p }
}

// NewManager creates a Manager. Pacing defaults to zero (no stagger).
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*session),
		sink:     noopSink{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect registers a subscriber channel for a session and replays the
// accumulated history into it before any live event. The channel should be
// buffered with at least subscriberBuffer capacity.
func (m *Manager) Connect(sessionID string, sub chan Event) {
	m.mu.Lock()
	s := m.sessionLocked(sessionID)
	replay := make([]Event, len(s.history))
	copy(replay, s.history)
	s.subs[sub] = struct{}{}
	m.mu.Unlock()

	// Replay outside the lock. The subscriber was registered first, so an
	// event emitted during replay lands in the channel after the history —
	// order within the session is preserved because Emit appends under the
	// same lock before fanning out.
	for _, evt := range replay {
		select {
		case sub <- evt:
		default:
			m.Disconnect(sessionID, sub)
			return
		}
	}
}

// Disconnect removes a subscriber from a session's fan-out set.
func (m *Manager) Disconnect(sessionID string, sub chan Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		delete(s.subs, sub)
	}
}

// History returns a copy of the accumulated events for a session.
func (m *Manager) History(sessionID string) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil
	}
	out := make([]Event, len(s.history))
	copy(out, s.history)
	return out
}

// Emit builds a trace event, appends it to the session history, and fans it
// out to the observer and all live subscribers. A subscriber that cannot
// accept the event is dropped; the emitter never blocks.
func (m *Manager) Emit(sessionID, agent, step string, typ EventType, status Status, details map[string]any, parentID string) Event {
	evt := newEvent(sessionID, agent, step, typ, status, details, parentID)

	m.pause(status)

	m.mu.Lock()
	s := m.sessionLocked(sessionID)
	s.history = append(s.history, evt)
	observer := s.observer
	subs := make([]chan Event, 0, len(s.subs))
	for sub := range s.subs {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	m.sink.Record(evt)
	m.logEvent(evt)

	if observer != nil {
		observer(evt)
	}

	for _, sub := range subs {
		select {
		case sub <- evt:
		default:
			slog.Warn("Dropping slow trace subscriber", "session_id", sessionID)
			m.Disconnect(sessionID, sub)
		}
	}

	return evt
}

// sessionLocked returns the session state, creating it (and attaching the
// observer) on first touch. Caller holds m.mu.
func (m *Manager) sessionLocked(sessionID string) *session {
	s, ok := m.sessions[sessionID]
	if !ok {
		s = &session{subs: make(map[chan Event]struct{})}
		m.sessions[sessionID] = s
	}
	if !s.observed && m.observerFactory != nil {
		s.observer = m.observerFactory(sessionID)
		s.observed = true
	}
	return s
}

// Forget drops all state for a session. Called after a session reaches a
// terminal phase and its grace period elapses.
func (m *Manager) Forget(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

func (m *Manager) pause(status Status) {
	var d time.Duration
	switch status {
	case StatusStarted:
		d = m.pacing.Started
	case StatusRunning:
		d = m.pacing.Running
	case StatusCompleted:
		d = m.pacing.Completed
	}
	if d > 0 {
		time.Sleep(d)
	}
}

// logEvent writes the one-line trace summary with an icon for quick scanning.
func (m *Manager) logEvent(evt Event) {
	slog.Info(iconFor(evt.Type, evt.Status)+" "+evt.Agent+": "+evt.Step,
		"session_id", evt.SessionID, "type", evt.Type, "status", evt.Status)
}

func iconFor(typ EventType, status Status) string {
	if status == StatusFailed || typ == TypeError {
		return "❌"
	}
	switch typ {
	case TypeThinking:
		return "🤔"
	case TypeToolUse:
		return "🔧"
	case TypeDecision:
		return "⚖️"
	case TypeResponse:
		return "💬"
	case TypeEvent:
		return "📣"
	}
	if status == StatusCompleted {
		return "✅"
	}
	return "▶️"
}
