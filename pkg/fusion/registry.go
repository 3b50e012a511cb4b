package fusion

import (
	"sync"

	"github.com/arogya-labs/aushadhi/pkg/trace"
)

// Registry hands out one Calculator per session and adapts calculators to
// the trace manager's observer hook. Constructed once at startup; tests can
// build fresh instances.
type Registry struct {
	mu          sync.Mutex
	calculators map[string]*Calculator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{calculators: make(map[string]*Calculator)}
}

// For returns the calculator for a session, creating it on first use.
func (r *Registry) For(sessionID string) *Calculator {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.calculators[sessionID]
	if !ok {
		c = NewCalculator(sessionID)
		r.calculators[sessionID] = c
	}
	return c
}

// ObserverFactory plugs the registry into trace.WithObserverFactory so the
// calculator tracks a session from its very first event, before any live
// subscriber connects.
func (r *Registry) ObserverFactory() trace.ObserverFactory {
	return func(sessionID string) trace.Observer {
		calc := r.For(sessionID)
		return calc.Observe
	}
}

// Forget drops a session's calculator.
func (r *Registry) Forget(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.calculators, sessionID)
}
