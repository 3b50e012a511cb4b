package subscriber

import (
	"context"
	"log/slog"

	"github.com/arogya-labs/aushadhi/pkg/bus"
)

// AuditLogger writes every domain event to the structured log, one line
// per event, so operators can grep the order flow without the database.
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger builds the subscriber.
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	return &AuditLogger{logger: logger.With("component", "audit")}
}

// Register attaches the logger to every event kind.
func (a *AuditLogger) Register(eb *bus.Bus) {
	for _, kind := range []string{
		bus.KindOrderCreated,
		bus.KindOrderFailed,
		bus.KindOrderRejected,
		bus.KindPrescriptionValidated,
		bus.KindPatientIdentified,
	} {
		eb.Subscribe(kind, a.onEvent)
	}
}

func (a *AuditLogger) onEvent(_ context.Context, evt bus.Event) {
	a.logger.Info("domain event",
		"kind", evt.Kind(),
		"event_id", evt.ID(),
		"data", evt.Data())
}
