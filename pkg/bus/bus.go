// Package bus provides the in-process typed event bus connecting the
// fulfillment pipeline to its subscribers (audit, refill prediction,
// notification adapters). Delivery is process-local with bounded history.
package bus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxHistory bounds the number of retained events.
const DefaultMaxHistory = 1000

// Handler processes a published event. Handlers must not assume exclusive
// access to the event; payloads are treated as immutable after publish.
type Handler func(ctx context.Context, evt Event)

// Subscription identifies a single registration. Every Subscribe call
// yields a distinct Subscription, even for the same function value, so
// closures built in a loop each get their own slot.
type Subscription uint64

type registeredHandler struct {
	id Subscription
	fn Handler
}

// Bus is an in-process publish/subscribe dispatcher with per-handler error
// isolation. A single Bus is constructed at startup and shared by all
// sessions; construction of fresh instances in tests is cheap.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]registeredHandler
	nextSub  Subscription

	histMu     sync.Mutex
	history    []Event
	maxHistory int

	statsMu        sync.Mutex
	published      uint64
	processed      uint64
	handlerErrors  uint64
	asyncPublished uint64
}

// New creates a Bus with the default history bound.
func New() *Bus {
	return NewWithHistory(DefaultMaxHistory)
}

// NewWithHistory creates a Bus retaining at most maxHistory events.
func NewWithHistory(maxHistory int) *Bus {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Bus{
		handlers:   make(map[string][]registeredHandler),
		maxHistory: maxHistory,
	}
}

// Subscribe registers a handler for an event kind and returns the handle
// needed to Unsubscribe it. Registrations are independent: subscribing the
// same function twice delivers each event to it twice.
func (b *Bus) Subscribe(kind string, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextSub++
	id := b.nextSub
	b.handlers[kind] = append(b.handlers[kind], registeredHandler{id: id, fn: h})
	return id
}

// Unsubscribe removes the registration identified by sub for an event kind.
// Unknown handles are ignored.
func (b *Bus) Unsubscribe(kind string, sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	regs := b.handlers[kind]
	for i, reg := range regs {
		if reg.id == sub {
			b.handlers[kind] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish delivers the event synchronously to every subscriber in
// registration order. A panicking handler is logged and counted; sibling
// handlers still run.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	regs := b.snapshot(evt.Kind())
	b.record(evt)

	for _, reg := range regs {
		b.dispatch(ctx, reg.fn, evt)
	}
}

// PublishAsync delivers the event to all subscribers concurrently and
// returns once every handler has finished. Isolation semantics match Publish.
func (b *Bus) PublishAsync(ctx context.Context, evt Event) {
	regs := b.snapshot(evt.Kind())
	b.record(evt)

	b.statsMu.Lock()
	b.asyncPublished++
	b.statsMu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, reg := range regs {
		fn := reg.fn
		g.Go(func() error {
			b.dispatch(gctx, fn, evt)
			return nil
		})
	}
	_ = g.Wait()
}

// History returns up to limit recent events, oldest first. kind filters by
// event kind; an empty kind returns all retained events. limit <= 0 means
// no limit beyond the retention bound.
func (b *Bus) History(kind string, limit int) []Event {
	b.histMu.Lock()
	defer b.histMu.Unlock()

	out := make([]Event, 0, len(b.history))
	for _, evt := range b.history {
		if kind == "" || evt.Kind() == kind {
			out = append(out, evt)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// Stats reports counters, subscriber count, and registered event kinds.
type Stats struct {
	EventsPublished uint64   `json:"events_published"`
	EventsProcessed uint64   `json:"events_processed"`
	HandlerErrors   uint64   `json:"handler_errors"`
	Subscribers     int      `json:"subscribers"`
	EventKinds      []string `json:"event_kinds"`
	HistorySize     int      `json:"history_size"`
}

// Stats returns a snapshot of bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	subscribers := 0
	kinds := make([]string, 0, len(b.handlers))
	for kind, regs := range b.handlers {
		subscribers += len(regs)
		kinds = append(kinds, kind)
	}
	b.mu.RUnlock()

	b.histMu.Lock()
	histSize := len(b.history)
	b.histMu.Unlock()

	b.statsMu.Lock()
	defer b.statsMu.Unlock()
	return Stats{
		EventsPublished: b.published,
		EventsProcessed: b.processed,
		HandlerErrors:   b.handlerErrors,
		Subscribers:     subscribers,
		EventKinds:      kinds,
		HistorySize:     histSize,
	}
}

// snapshot copies the handler list so dispatch runs without holding the lock.
func (b *Bus) snapshot(kind string) []registeredHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	regs := b.handlers[kind]
	out := make([]registeredHandler, len(regs))
	copy(out, regs)
	return out
}

// record appends the event to history, trimming the oldest entries first.
func (b *Bus) record(evt Event) {
	b.histMu.Lock()
	b.history = append(b.history, evt)
	if overflow := len(b.history) - b.maxHistory; overflow > 0 {
		b.history = append(b.history[:0:0], b.history[overflow:]...)
	}
	b.histMu.Unlock()

	b.statsMu.Lock()
	b.published++
	b.statsMu.Unlock()
}

// dispatch runs one handler with panic isolation.
func (b *Bus) dispatch(ctx context.Context, fn Handler, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event handler panicked",
				"event_kind", evt.Kind(), "event_id", evt.ID(), "panic", r)
			b.statsMu.Lock()
			b.handlerErrors++
			b.statsMu.Unlock()
		}
	}()

	fn(ctx, evt)

	b.statsMu.Lock()
	b.processed++
	b.statsMu.Unlock()
}

// now is indirected for tests.
var now = time.Now
