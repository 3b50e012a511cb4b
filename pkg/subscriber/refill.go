// Package subscriber holds the event bus consumers that hang off the
// fulfillment core: refill prediction and the audit log feed.
package subscriber

import (
	"context"
	"log/slog"

	"github.com/arogya-labs/aushadhi/pkg/bus"
	"github.com/arogya-labs/aushadhi/pkg/store"
)

// RefillPredictor records depletion predictions whenever an order is
// created. A failed prediction never affects the order.
type RefillPredictor struct {
	store  *store.Store
	logger *slog.Logger
}

// NewRefillPredictor builds the subscriber.
func NewRefillPredictor(st *store.Store, logger *slog.Logger) *RefillPredictor {
	return &RefillPredictor{store: st, logger: logger.With("component", "refill_predictor")}
}

// Register attaches the predictor to the bus.
func (p *RefillPredictor) Register(eb *bus.Bus) {
	eb.Subscribe(bus.KindOrderCreated, p.onOrderCreated)
}

func (p *RefillPredictor) onOrderCreated(ctx context.Context, evt bus.Event) {
	created, ok := evt.(bus.OrderCreated)
	if !ok {
		return
	}

	items := make([]store.RefillInput, 0, len(created.Items))
	for _, it := range created.Items {
		items = append(items, store.RefillInput{
			MedicineName: it.MedicineName,
			Quantity:     it.Quantity,
		})
	}
	if err := p.store.RecordRefillPredictions(ctx, created.UserID, items); err != nil {
		p.logger.Warn("refill prediction failed",
			"order_id", created.OrderID, "error", err)
		return
	}
	p.logger.Info("refill predictions recorded",
		"order_id", created.OrderID, "items", len(items))
}
