package orchestrator

import (
	"context"
	"fmt"

	"github.com/arogya-labs/aushadhi/pkg/agent"
	"github.com/arogya-labs/aushadhi/pkg/llm"
	"github.com/arogya-labs/aushadhi/pkg/trace"
)

// TurnInput is one user message entering the conversation.
type TurnInput struct {
	SessionID string
	Phone     string
	Message   string
	// Token accompanies a confirmation answer. Optional otherwise.
	Token string
	// Prescription is set when the turn carries a parsed prescription
	// image instead of free text.
	Prescription *llm.PrescriptionScan
}

// Turner classifies and extracts before the pipeline runs. Split from
// Orchestrator so tests can drive the pipeline with prepared states.
type Turner struct {
	orch       *Orchestrator
	classifier llm.IntentClassifier
	extractor  llm.Extractor
}

// NewTurner wires the conversational entrypoint.
func NewTurner(orch *Orchestrator, classifier llm.IntentClassifier, extractor llm.Extractor) *Turner {
	return &Turner{orch: orch, classifier: classifier, extractor: extractor}
}

// HandleTurn processes one message. A session at the confirmation gate
// routes to Resume; everything else is classified, extracted, and run
// through the pipeline.
func (t *Turner) HandleTurn(ctx context.Context, in TurnInput) (*Reply, error) {
	if t.orch.confirmations.IsPending(in.SessionID) || in.Token != "" {
		return t.orch.Resume(ctx, in.SessionID, in.Message, in.Token)
	}

	state := &agent.PipelineState{
		SessionID: in.SessionID,
		UserID:    in.SessionID,
		Phone:     in.Phone,
		Phase:     agent.PhaseCollectingItems,
		Message:   in.Message,
	}

	if in.Prescription != nil {
		state.Intent = llm.IntentPurchase
		state.Prescription = in.Prescription
		t.orch.traces.Emit(in.SessionID, "vision_agent", "prescription_scan",
			trace.TypeEvent, trace.StatusCompleted,
			map[string]any{"confidence": in.Prescription.Confidence, "medicines": len(in.Prescription.Medicines)}, "")
		for _, med := range in.Prescription.Medicines {
			state.Items = append(state.Items, agent.RequestedLine{
				Name:     med.Name,
				Dosage:   med.Dosage,
				Quantity: 1,
			})
		}
		return t.orch.StartPipeline(ctx, state)
	}

	classification, err := t.classifier.Classify(ctx, in.Message)
	if err != nil {
		return nil, fmt.Errorf("intent classification: %w", err)
	}
	state.Intent = classification.Intent
	t.orch.traces.Emit(in.SessionID, "intent_agent", "intent_classification",
		trace.TypeDecision, trace.StatusCompleted,
		map[string]any{"confidence": classification.Confidence, "intent": string(classification.Intent)}, "")
	if classification.NeedsClarification {
		return &Reply{
			Phase:   agent.PhaseCollectingItems,
			Message: "Could you tell me a bit more about what you need, or list the medicines with quantities?",
		}, nil
	}

	switch classification.Intent {
	case llm.IntentInquiry:
		return t.inquiry(ctx, state)
	case llm.IntentPurchase, llm.IntentRefill, llm.IntentSymptom:
		extraction, err := t.extractor.Extract(ctx, in.Message)
		if err != nil {
			return nil, fmt.Errorf("item extraction: %w", err)
		}
		t.orch.traces.Emit(in.SessionID, "intent_agent", "item_extraction",
			trace.TypeEvent, trace.StatusCompleted,
			map[string]any{"confidence_score": extractionConfidence(extraction), "items": len(extraction.Items)}, "")
		for _, item := range extraction.Items {
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}
			state.Items = append(state.Items, agent.RequestedLine{
				Name:     item.MedicineName,
				Dosage:   item.Dosage,
				Quantity: qty,
			})
		}
		return t.orch.StartPipeline(ctx, state)
	default:
		return &Reply{
			Phase:   agent.PhaseCollectingItems,
			Message: "I can help you buy medicines, refill an order, or answer stock questions. What do you need?",
		}, nil
	}
}

// extractionConfidence scores how fully the extractor resolved the
// message: every item with a stated dosage and quantity raises it.
func extractionConfidence(res *llm.ExtractResult) float64 {
	if res == nil || len(res.Items) == 0 {
		return 0.3
	}
	complete := 0
	for _, item := range res.Items {
		if item.Dosage != "" && item.Quantity > 0 {
			complete++
		}
	}
	return 0.6 + 0.4*float64(complete)/float64(len(res.Items))
}

// inquiry answers availability questions without opening a pipeline.
func (t *Turner) inquiry(ctx context.Context, state *agent.PipelineState) (*Reply, error) {
	extraction, err := t.extractor.Extract(ctx, state.Message)
	if err != nil {
		return nil, fmt.Errorf("item extraction: %w", err)
	}
	if len(extraction.Items) == 0 {
		return &Reply{
			Phase:   agent.PhaseCollectingItems,
			Message: "Which medicine would you like me to check?",
		}, nil
	}

	name := extraction.Items[0].MedicineName
	match, err := t.orch.store.GetMedicine(ctx, name)
	if err != nil {
		return &Reply{
			Phase:   agent.PhaseCollectingItems,
			Message: fmt.Sprintf("I could not find %s in our catalog.", name),
		}, nil
	}
	if match.Stock == 0 {
		return &Reply{
			Phase:   agent.PhaseCollectingItems,
			Message: fmt.Sprintf("%s is currently out of stock.", match.Name),
		}, nil
	}
	return &Reply{
		Phase:   agent.PhaseCollectingItems,
		Message: fmt.Sprintf("%s is in stock (%d units) at ₹%.2f each.", match.Name, match.Stock, match.Price),
	}, nil
}
