package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arogya-labs/aushadhi/ent/order"
	"github.com/arogya-labs/aushadhi/pkg/bus"
	"github.com/arogya-labs/aushadhi/pkg/store"
	"github.com/arogya-labs/aushadhi/pkg/trace"
)

// FulfillmentAgent commits a confirmed order: stock decrement, order row,
// and audit entries in one transaction. It is the only writer of orders.
type FulfillmentAgent struct {
	store  *store.Store
	events *bus.Bus
	traces *trace.Manager
	logger *slog.Logger
}

// NewFulfillmentAgent wires the agent.
func NewFulfillmentAgent(st *store.Store, eb *bus.Bus, tm *trace.Manager, logger *slog.Logger) *FulfillmentAgent {
	return &FulfillmentAgent{
		store:  st,
		events: eb,
		traces: tm,
		logger: logger.With("agent", FulfillmentAgentName),
	}
}

// Run fulfills the order held on a confirmed state. It returns a
// FulfillmentResult on every path, including failures, so the caller
// always has something to show the user. The error return mirrors the
// result's failure for callers that branch on errors.
func (a *FulfillmentAgent) Run(ctx context.Context, state *PipelineState) (*FulfillmentResult, error) {
	// The confirmation gate. An unconfirmed state is a caller bug, not an
	// order outcome: nothing is written, traced, or published for it.
	if state.Phase != PhaseConfirmed {
		return nil, &ConfirmationRequiredError{SessionID: state.SessionID}
	}
	if state.Inventory == nil {
		err := errors.New("confirmed state has no inventory resolution")
		return a.fail(ctx, state, "", err.Error(), "invalid_state"), err
	}

	parent := a.traces.Emit(state.SessionID, FulfillmentAgentName, "order_fulfillment",
		trace.TypeThinking, trace.StatusStarted,
		map[string]any{"lines": len(state.Inventory.Lines)}, "")

	lines, err := orderLines(state.Inventory)
	if err != nil {
		return a.fail(ctx, state, parent.ID, err.Error(), "invalid_state"), err
	}

	decision, status := orderDisposition(state)
	// A rejected disposition still records the order, but no stock moves.
	dispense := status != order.StatusRejected
	safetyIssues := []string{}
	if state.Validation != nil {
		safetyIssues = state.Validation.SafetyIssues
	}

	var orderID string
	err = a.store.RunInTxRetry(ctx, func(tx *store.Tx) error {
		if dispense {
			for _, line := range lines {
				if _, err := tx.DecrementStock(line.MedicineName, line.Quantity); err != nil {
					return err
				}
			}
		}
		id, err := tx.CreateOrder(state.UserID, lines, decision, status, safetyIssues)
		if err != nil {
			return err
		}
		orderID = id
		return a.writeAuditTrail(tx, orderID, state)
	})
	if err != nil {
		errType := "transaction_failed"
		var oos *store.OutOfStockError
		if errors.As(err, &oos) {
			errType = "out_of_stock"
		}
		return a.fail(ctx, state, parent.ID, err.Error(), errType), err
	}

	total := store.TotalFor(lines)
	result := &FulfillmentResult{
		Outcome: Outcome{
			Agent:      FulfillmentAgentName,
			Decision:   string(decision),
			Reasoning:  fmt.Sprintf("order %s committed with %d lines", orderID, len(lines)),
			Confidence: 1.0,
			FinishedAt: time.Now(),
		},
		OrderID:     orderID,
		Status:      string(status),
		TotalAmount: total,
	}
	state.Fulfillment = result
	if dispense {
		state.Phase = PhaseCompleted
	} else {
		state.Phase = PhaseRejected
	}

	a.traces.Emit(state.SessionID, FulfillmentAgentName, "order_fulfillment",
		trace.TypeResponse, trace.StatusCompleted,
		map[string]any{
			"confidence":   1.0,
			"order_id":     orderID,
			"total_amount": total,
			"status":       result.Status,
		}, parent.ID)

	if dispense {
		a.events.Publish(ctx, bus.OrderCreated{
			Meta:               bus.NewMeta(),
			OrderID:            orderID,
			UserID:             state.UserID,
			Phone:              state.Phone,
			TotalAmount:        total,
			Items:              eventItems(lines),
			PharmacistDecision: string(decision),
		})
	} else {
		a.events.Publish(ctx, bus.OrderRejected{
			Meta:   bus.NewMeta(),
			UserID: state.UserID,
			Reason: fmt.Sprintf("order %s recorded as rejected by medical validation", orderID),
		})
	}

	a.logger.Info("order fulfilled",
		"session_id", state.SessionID,
		"order_id", orderID,
		"total", total,
		"status", result.Status)
	return result, nil
}

// fail records the failure on the state, traces it, and publishes
// OrderFailed. It never returns nil.
func (a *FulfillmentAgent) fail(ctx context.Context, state *PipelineState, parentID, msg, errType string) *FulfillmentResult {
	result := &FulfillmentResult{
		Outcome: Outcome{
			Agent:      FulfillmentAgentName,
			Decision:   DecisionRejected,
			Reasoning:  msg,
			Confidence: 1.0,
			FinishedAt: time.Now(),
		},
		Status:    string(order.StatusFailed),
		Error:     msg,
		ErrorType: errType,
	}
	state.Fulfillment = result
	state.Phase = PhaseFailed

	a.traces.Emit(state.SessionID, FulfillmentAgentName, "order_fulfillment",
		trace.TypeError, trace.StatusFailed,
		map[string]any{"error": msg, "error_type": errType}, parentID)

	a.events.Publish(ctx, bus.OrderFailed{
		Meta:      bus.NewMeta(),
		UserID:    state.UserID,
		Error:     msg,
		ErrorType: errType,
	})

	a.logger.Warn("order fulfillment failed",
		"session_id", state.SessionID,
		"error", msg,
		"error_type", errType)
	return result
}

// writeAuditTrail persists one audit entry per agent that ran, in the
// same transaction as the order itself.
func (a *FulfillmentAgent) writeAuditTrail(tx *store.Tx, orderID string, state *PipelineState) error {
	type entry struct {
		outcome *Outcome
		extra   map[string]interface{}
	}
	var entries []entry
	if state.Risk != nil {
		entries = append(entries, entry{&state.Risk.Outcome, map[string]interface{}{
			"risk_score": state.Risk.NewScore,
			"risk_level": state.Risk.Level,
		}})
	}
	if state.Validation != nil {
		entries = append(entries, entry{&state.Validation.Outcome, map[string]interface{}{
			"safe_to_dispense": state.Validation.SafeToDispense,
			"safety_issues":    state.Validation.SafetyIssues,
		}})
	}
	if state.Inventory != nil {
		entries = append(entries, entry{&state.Inventory.Outcome, map[string]interface{}{
			"availability_score": state.Inventory.AvailabilityScore,
		}})
	}
	for _, e := range entries {
		if err := tx.AddAuditLog(orderID, e.outcome.Agent, e.outcome.Decision, e.outcome.Reasoning, e.outcome.Confidence, e.extra); err != nil {
			return err
		}
	}
	decision := orderDispositionDecision(state)
	reasoning := "stock decremented and order committed"
	if decision == order.PharmacistDecisionRejected {
		reasoning = "order recorded without dispensing"
	}
	return tx.AddAuditLog(orderID, FulfillmentAgentName, string(decision), reasoning, 1.0, nil)
}

// orderLines turns the fillable resolved lines into transaction inputs.
// Partial and missing lines are excluded; an order with nothing fillable
// is an error.
func orderLines(inv *InventoryResult) ([]store.LineInput, error) {
	var lines []store.LineInput
	for _, l := range inv.Lines {
		if l.Availability != AvailabilityAvailable {
			continue
		}
		lines = append(lines, store.LineInput{
			MedicineID:   l.MedicineID,
			MedicineName: l.MatchedName,
			Dosage:       l.Requested.Dosage,
			Quantity:     l.Requested.Quantity,
			UnitPrice:    l.UnitPrice,
		})
	}
	if len(lines) == 0 {
		return nil, errors.New("no fillable lines on the confirmed order")
	}
	return lines, nil
}

// orderDisposition maps the upstream agent outcomes to the pharmacist
// decision and order status. Rejected carries through to the order row;
// needs_review holds dispatch; everything else fulfills.
func orderDisposition(state *PipelineState) (order.PharmacistDecision, order.Status) {
	decision := orderDispositionDecision(state)
	switch decision {
	case order.PharmacistDecisionRejected:
		return decision, order.StatusRejected
	case order.PharmacistDecisionNeedsReview:
		return decision, order.StatusPendingReview
	}
	return decision, order.StatusFulfilled
}

func orderDispositionDecision(state *PipelineState) order.PharmacistDecision {
	decision := order.PharmacistDecisionApproved
	if state.Risk != nil && state.Risk.Decision == DecisionNeedsReview {
		decision = order.PharmacistDecisionNeedsReview
	}
	if state.Validation != nil {
		switch state.Validation.Decision {
		case DecisionRejected:
			return order.PharmacistDecisionRejected
		case DecisionNeedsReview:
			decision = order.PharmacistDecisionNeedsReview
		}
	}
	return decision
}

func eventItems(lines []store.LineInput) []bus.OrderItem {
	items := make([]bus.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, bus.OrderItem{
			MedicineName: l.MedicineName,
			Dosage:       l.Dosage,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
		})
	}
	return items
}
