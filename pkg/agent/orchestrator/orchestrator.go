// Package orchestrator sequences the fulfillment pipeline: risk scoring,
// medical validation, inventory resolution, the confirmation gate, and
// the final fulfillment transaction.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arogya-labs/aushadhi/pkg/agent"
	"github.com/arogya-labs/aushadhi/pkg/bus"
	"github.com/arogya-labs/aushadhi/pkg/confirm"
	"github.com/arogya-labs/aushadhi/pkg/fusion"
	"github.com/arogya-labs/aushadhi/pkg/store"
	"github.com/arogya-labs/aushadhi/pkg/trace"
)

// Confirmation outcome statuses carried on Reply.Status.
const (
	StatusConfirmed = "confirmed"
	StatusExpired   = "expired"
	StatusInvalid   = "invalid"
	StatusCancelled = "cancelled"
)

// Reply is what the conversational layer renders back to the user after
// a pipeline turn. Status is set on confirmation turns only.
type Reply struct {
	Phase            string                   `json:"phase"`
	Status           string                   `json:"status,omitempty"`
	Message          string                   `json:"message"`
	Token            string                   `json:"confirmation_token,omitempty"`
	RequiresOverride bool                     `json:"requires_pharmacist_override,omitempty"`
	Replacement      *agent.Alternative       `json:"replacement,omitempty"`
	Order            *agent.FulfillmentResult `json:"order,omitempty"`
	Risk             *agent.RiskResult        `json:"risk,omitempty"`
	Safety           *agent.ValidatorResult   `json:"safety,omitempty"`
	Inventory        *agent.InventoryResult   `json:"inventory,omitempty"`
}

// Orchestrator owns phase transitions. Agents never move the phase
// themselves except fulfillment marking completion.
type Orchestrator struct {
	risk        *agent.RiskAgent
	validator   *agent.Validator
	inventory   *agent.InventoryAgent
	fulfillment *agent.FulfillmentAgent

	store         *store.Store
	confirmations *confirm.Store
	events        *bus.Bus
	traces        *trace.Manager
	fusions       *fusion.Registry
	logger        *slog.Logger
}

// Config carries the orchestrator's collaborators.
type Config struct {
	Risk        *agent.RiskAgent
	Validator   *agent.Validator
	Inventory   *agent.InventoryAgent
	Fulfillment *agent.FulfillmentAgent

	Store         *store.Store
	Confirmations *confirm.Store
	Events        *bus.Bus
	Traces        *trace.Manager
	Fusions       *fusion.Registry
	Logger        *slog.Logger
}

// New builds the orchestrator.
func New(cfg Config) *Orchestrator {
	return &Orchestrator{
		risk:          cfg.Risk,
		validator:     cfg.Validator,
		inventory:     cfg.Inventory,
		fulfillment:   cfg.Fulfillment,
		store:         cfg.Store,
		confirmations: cfg.Confirmations,
		events:        cfg.Events,
		traces:        cfg.Traces,
		fusions:       cfg.Fusions,
		logger:        cfg.Logger.With("component", "orchestrator"),
	}
}

// StartPipeline runs a fresh request through risk, validation, and
// inventory, stopping at the confirmation gate when the order is
// fillable. It never fulfills; only Resume with a valid token does.
func (o *Orchestrator) StartPipeline(ctx context.Context, state *agent.PipelineState) (*Reply, error) {
	if len(state.Items) == 0 {
		state.Phase = agent.PhaseCollectingItems
		return &Reply{
			Phase:   state.Phase,
			Message: "Please tell me which medicines you need, with quantities.",
		}, nil
	}
	state.StartedAt = time.Now()

	if err := o.identifyPatient(ctx, state); err != nil {
		return nil, err
	}
	if err := o.enrichItems(ctx, state); err != nil {
		return nil, err
	}

	riskResult, err := o.risk.Run(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("risk scoring: %w", err)
	}
	if riskResult.Decision == agent.DecisionRejected {
		return o.reject(ctx, state, "your account is flagged for manual review; a pharmacist will contact you"), nil
	}

	valResult, err := o.validator.Run(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("medical validation: %w", err)
	}
	o.events.Publish(ctx, bus.PrescriptionValidated{
		Meta:         bus.NewMeta(),
		UserID:       state.UserID,
		Decision:     valResult.Decision,
		SafetyIssues: valResult.SafetyIssues,
	})
	if valResult.Decision == agent.DecisionRejected {
		if err := o.risk.RecordRejection(ctx, state); err != nil {
			o.logger.Warn("rejection penalty not recorded",
				"session_id", state.SessionID, "error", err)
		}
		return o.reject(ctx, state, rejectionMessage(valResult)), nil
	}

	invResult, err := o.inventory.Run(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("inventory resolution: %w", err)
	}
	if invResult.AvailabilityScore == 0 {
		state.Phase = agent.PhaseFailed
		o.events.Publish(ctx, bus.OrderFailed{
			Meta:      bus.NewMeta(),
			UserID:    state.UserID,
			Error:     "no requested medicine is available",
			ErrorType: "unavailable",
		})
		return &Reply{
			Phase:     state.Phase,
			Message:   unavailableMessage(invResult),
			Risk:      riskResult,
			Safety:    valResult,
			Inventory: invResult,
		}, nil
	}

	state.Phase = agent.PhaseAwaitingConfirmation
	token, err := o.confirmations.Create(state.SessionID, state.Clone(), invResult.Replacement)
	if err != nil {
		return nil, fmt.Errorf("open confirmation gate: %w", err)
	}

	o.traces.Emit(state.SessionID, agent.FulfillmentAgentName, "confirmation_gate",
		trace.TypeEvent, trace.StatusRunning,
		map[string]any{"total_amount": invResult.TotalAmount}, "")

	requiresOverride := invResult.Replacement != nil && invResult.Replacement.OverrideRequired
	return &Reply{
		Phase:            state.Phase,
		Message:          confirmationPrompt(invResult),
		Token:            token,
		RequiresOverride: requiresOverride,
		Replacement:      invResult.Replacement,
		Risk:             riskResult,
		Safety:           valResult,
		Inventory:        invResult,
	}, nil
}

// Resume handles the user's answer at the confirmation gate. Yes with a
// valid token fulfills; no cancels; anything else re-prompts.
func (o *Orchestrator) Resume(ctx context.Context, sessionID, answer, token string) (*Reply, error) {
	switch normalizeAnswer(answer) {
	case "yes":
		entry, status := o.confirmations.Consume(sessionID, token)
		switch status {
		case confirm.ConsumeExpired:
			return &Reply{
				Phase:   agent.PhaseCollectingItems,
				Status:  StatusExpired,
				Message: "That confirmation has expired or was already used. Please place the order again.",
			}, nil
		case confirm.ConsumeInvalid:
			return &Reply{
				Phase:   agent.PhaseAwaitingConfirmation,
				Status:  StatusInvalid,
				Message: "That confirmation token does not match the pending order. Please reply from the original prompt.",
			}, nil
		}
		state := entry.State
		state.Phase = agent.PhaseConfirmed

		result, err := o.fulfillment.Run(ctx, state)
		if err != nil {
			if result == nil {
				return &Reply{
					Phase:   state.Phase,
					Message: "Order could not be processed. Please try again.",
				}, nil
			}
			return &Reply{
				Phase:   state.Phase,
				Status:  StatusConfirmed,
				Message: failureMessage(result),
				Order:   result,
			}, nil
		}
		o.fusions.Forget(sessionID)
		requiresOverride := entry.Replacement != nil && entry.Replacement.OverrideRequired
		return &Reply{
			Phase:            state.Phase,
			Status:           StatusConfirmed,
			Message:          successMessage(result),
			RequiresOverride: requiresOverride,
			Replacement:      entry.Replacement,
			Order:            result,
		}, nil

	case "no":
		o.confirmations.Cancel(sessionID)
		o.traces.Emit(sessionID, agent.FulfillmentAgentName, "confirmation_gate",
			trace.TypeEvent, trace.StatusCompleted,
			map[string]any{"outcome": "cancelled"}, "")
		return &Reply{
			Phase:   agent.PhaseCollectingItems,
			Status:  StatusCancelled,
			Message: "Order cancelled. Is there anything else you need?",
		}, nil

	default:
		if !o.confirmations.IsPending(sessionID) {
			return &Reply{
				Phase:   agent.PhaseCollectingItems,
				Message: "There is no order awaiting confirmation. What would you like to buy?",
			}, nil
		}
		return &Reply{
			Phase:   agent.PhaseAwaitingConfirmation,
			Message: "Please reply yes to confirm the order or no to cancel it.",
		}, nil
	}
}

// enrichItems fills catalog-derived fields the extractor cannot know.
// Unknown medicines stay marked as prescription-required; the inventory
// agent reports them as not found.
func (o *Orchestrator) enrichItems(ctx context.Context, state *agent.PipelineState) error {
	for i := range state.Items {
		match, err := o.store.GetMedicine(ctx, state.Items[i].Name)
		if errors.Is(err, store.ErrMedicineNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("catalog lookup for %q: %w", state.Items[i].Name, err)
		}
		state.Items[i].IsOTC = !match.RequiresPrescription
		state.Items[i].Price = match.Price
		state.Items[i].InCatalog = true
		state.Items[i].CatalogStrength = match.Strength
	}
	return nil
}

// identifyPatient resolves (or creates) the patient record for the
// session and publishes the identification event on first sight.
func (o *Orchestrator) identifyPatient(ctx context.Context, state *agent.PipelineState) error {
	if state.Patient != nil || state.Phone == "" {
		return nil
	}
	patient, created, err := o.store.ResolvePatient(ctx, state.Phone, "")
	if err != nil {
		return fmt.Errorf("resolve patient: %w", err)
	}
	age := 0
	if patient.Age != nil {
		age = *patient.Age
	}
	state.Patient = &agent.PatientInfo{
		PID:        patient.Pid,
		Name:       patient.Name,
		Age:        age,
		Allergies:  patient.Allergies,
		Conditions: patient.Conditions,
		RiskScore:  patient.RiskScore,
		RiskLevel:  string(patient.RiskLevel),
	}
	state.UserID = patient.Pid

	source := "returning"
	confidence := 1.0
	if created {
		source = "new"
		// A freshly minted record has no history backing the match.
		confidence = 0.8
	}
	o.traces.Emit(state.SessionID, "front_desk_agent", "identity_resolution",
		trace.TypeEvent, trace.StatusCompleted,
		map[string]any{"confidence": confidence, "pid": patient.Pid, "source": source}, "")
	o.events.Publish(ctx, bus.PatientIdentified{
		Meta:   bus.NewMeta(),
		PID:    patient.Pid,
		Phone:  state.Phone,
		Source: source,
	})
	return nil
}

func (o *Orchestrator) reject(ctx context.Context, state *agent.PipelineState, message string) *Reply {
	state.Phase = agent.PhaseRejected
	o.events.Publish(ctx, bus.OrderRejected{
		Meta:   bus.NewMeta(),
		UserID: state.UserID,
		Reason: message,
	})
	return &Reply{
		Phase:   state.Phase,
		Message: message,
		Risk:    state.Risk,
		Safety:  state.Validation,
	}
}

// IsConfirmationRequired reports whether err is the gate signal.
func IsConfirmationRequired(err error) bool {
	var cr *agent.ConfirmationRequiredError
	return errors.As(err, &cr)
}

func normalizeAnswer(answer string) string {
	a := strings.ToLower(strings.TrimSpace(answer))
	switch a {
	case "yes", "y", "confirm", "haan", "ha", "ok", "okay":
		return "yes"
	case "no", "n", "cancel", "nahi", "nahin":
		return "no"
	}
	return a
}

func confirmationPrompt(inv *agent.InventoryResult) string {
	var b strings.Builder
	b.WriteString("Here is your order:\n")
	for _, line := range inv.Lines {
		if line.Availability != agent.AvailabilityAvailable {
			continue
		}
		b.WriteString(fmt.Sprintf("  - %s x%d  ₹%.2f\n",
			line.MatchedName, line.Requested.Quantity, line.UnitPrice*float64(line.Requested.Quantity)))
	}
	for _, line := range inv.Lines {
		if line.Availability == agent.AvailabilityAvailable {
			continue
		}
		b.WriteString(fmt.Sprintf("  - %s: %s", line.Requested.Name, strings.ReplaceAll(line.Availability, "_", " ")))
		if len(line.Alternatives) > 0 {
			names := make([]string, 0, len(line.Alternatives))
			for _, alt := range line.Alternatives {
				names = append(names, alt.Name)
			}
			b.WriteString(" (alternatives: " + strings.Join(names, ", ") + ")")
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Total: ₹%.2f. Reply yes to confirm or no to cancel.", inv.TotalAmount))
	return b.String()
}

func unavailableMessage(inv *agent.InventoryResult) string {
	var b strings.Builder
	b.WriteString("Sorry, none of the requested medicines are available right now.\n")
	for _, line := range inv.Lines {
		if len(line.Alternatives) == 0 {
			continue
		}
		names := make([]string, 0, len(line.Alternatives))
		for _, alt := range line.Alternatives {
			names = append(names, alt.Name)
		}
		b.WriteString(fmt.Sprintf("For %s you could try: %s.\n", line.Requested.Name, strings.Join(names, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func rejectionMessage(val *agent.ValidatorResult) string {
	if len(val.SafetyIssues) == 0 {
		return "This request cannot be fulfilled for safety reasons."
	}
	return "This request cannot be fulfilled: " + strings.Join(val.SafetyIssues, "; ")
}

func successMessage(result *agent.FulfillmentResult) string {
	if result.Status == "rejected" {
		return "This order was recorded but cannot be dispensed; a pharmacist will contact you."
	}
	msg := fmt.Sprintf("Order %s placed. Total ₹%.2f.", result.OrderID, result.TotalAmount)
	if result.Status == "pending_review" {
		msg += " A pharmacist will review it before dispatch."
	}
	return msg
}

func failureMessage(result *agent.FulfillmentResult) string {
	if result != nil && result.ErrorType == "out_of_stock" {
		return "Sorry, an item sold out while you were confirming. Nothing was charged; please try again."
	}
	return "Sorry, the order could not be completed. Nothing was charged; please try again."
}
