package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arogya-labs/aushadhi/pkg/risk"
	"github.com/arogya-labs/aushadhi/pkg/store"
	"github.com/arogya-labs/aushadhi/pkg/trace"
)

// RiskAgent scores an incoming request against the patient's history and
// persists the updated score before the clinical agents run.
type RiskAgent struct {
	scorer *risk.Scorer
	store  *store.Store
	traces *trace.Manager
	logger *slog.Logger
}

// NewRiskAgent wires the scorer over the store and trace manager.
func NewRiskAgent(scorer *risk.Scorer, st *store.Store, tm *trace.Manager, logger *slog.Logger) *RiskAgent {
	return &RiskAgent{
		scorer: scorer,
		store:  st,
		traces: tm,
		logger: logger.With("agent", RiskAgentName),
	}
}

// Run scores the request and updates the patient record. The result is
// recorded on the state; escalation decisions belong to the orchestrator.
func (a *RiskAgent) Run(ctx context.Context, state *PipelineState) (*RiskResult, error) {
	parent := a.traces.Emit(state.SessionID, RiskAgentName, "risk_assessment",
		trace.TypeThinking, trace.StatusStarted,
		map[string]any{"items": len(state.Items)}, "")

	lines := make([]risk.RequestLine, 0, len(state.Items))
	for _, item := range state.Items {
		line := risk.RequestLine{
			Name:            item.Name,
			Quantity:        item.Quantity,
			ControlSchedule: item.Schedule,
			PrescriptionOK:  state.Prescription != nil,
		}
		match, err := a.store.GetMedicine(ctx, item.Name)
		switch {
		case err == nil:
			line.RequiresRx = match.RequiresPrescription
		case errors.Is(err, store.ErrMedicineNotFound):
			// Unknown medicines score on name and quantity only.
		default:
			return nil, fmt.Errorf("risk catalog lookup for %q: %w", item.Name, err)
		}
		lines = append(lines, line)
	}

	prior := 0
	if state.Patient != nil {
		prior = state.Patient.RiskScore
	}
	assessment := a.scorer.Assess(prior, lines, false)

	if state.Patient != nil && assessment.Delta != 0 {
		err := a.store.RunInTx(ctx, func(tx *store.Tx) error {
			stored, err := risk.Persist(tx.Context(), tx.Ent(), state.Patient.PID, assessment)
			if err != nil {
				return err
			}
			assessment.NewScore = stored
			assessment.Level = risk.LevelFor(stored)
			return nil
		})
		if err != nil {
			a.traces.Emit(state.SessionID, RiskAgentName, "risk_assessment",
				trace.TypeError, trace.StatusFailed,
				map[string]any{"error": err.Error()}, parent.ID)
			return nil, fmt.Errorf("persist risk assessment: %w", err)
		}
		state.Patient.RiskScore = assessment.NewScore
		state.Patient.RiskLevel = assessment.Level
	}

	result := &RiskResult{
		Outcome: Outcome{
			Agent:      RiskAgentName,
			Decision:   riskDecision(assessment.Level),
			Reasoning:  riskReasoning(assessment),
			Confidence: 1.0,
			FinishedAt: time.Now(),
		},
		PriorScore: assessment.PriorScore,
		Delta:      assessment.Delta,
		NewScore:   assessment.NewScore,
		Level:      assessment.Level,
		Factors:    assessment.Factors,
		Flagged:    assessment.Flagged,
	}
	state.Risk = result

	a.traces.Emit(state.SessionID, RiskAgentName, "risk_assessment",
		trace.TypeDecision, trace.StatusCompleted,
		map[string]any{
			"confidence": result.Confidence,
			"risk_score": result.NewScore,
			"risk_level": result.Level,
			"delta":      result.Delta,
		}, parent.ID)

	a.logger.Info("risk assessment complete",
		"session_id", state.SessionID,
		"prior", result.PriorScore,
		"delta", result.Delta,
		"score", result.NewScore,
		"level", result.Level)
	return result, nil
}

// RecordRejection bumps the patient's score after medical validation
// rejects a request. The bump persists so repeat offenders climb bands
// even when no order is created.
func (a *RiskAgent) RecordRejection(ctx context.Context, state *PipelineState) error {
	if state.Patient == nil {
		return nil
	}
	assessment := a.scorer.Assess(state.Patient.RiskScore, nil, true)
	err := a.store.RunInTx(ctx, func(tx *store.Tx) error {
		stored, err := risk.Persist(tx.Context(), tx.Ent(), state.Patient.PID, assessment)
		if err != nil {
			return err
		}
		assessment.NewScore = stored
		assessment.Level = risk.LevelFor(stored)
		return nil
	})
	if err != nil {
		return fmt.Errorf("persist rejection penalty: %w", err)
	}
	state.Patient.RiskScore = assessment.NewScore
	state.Patient.RiskLevel = assessment.Level
	if state.Risk != nil {
		state.Risk.NewScore = assessment.NewScore
		state.Risk.Level = assessment.Level
		state.Risk.Factors = append(state.Risk.Factors, assessment.Factors...)
	}
	a.logger.Info("validation rejection recorded",
		"session_id", state.SessionID,
		"score", assessment.NewScore,
		"level", assessment.Level)
	return nil
}

func riskDecision(level string) string {
	switch level {
	case risk.LevelCritical:
		return DecisionRejected
	case risk.LevelHigh:
		return DecisionNeedsReview
	default:
		return DecisionApproved
	}
}

func riskReasoning(a risk.Assessment) string {
	if len(a.Factors) == 0 {
		return fmt.Sprintf("no risk factors detected; score unchanged at %d (%s)", a.NewScore, a.Level)
	}
	return fmt.Sprintf("score %d -> %d (%s): %s",
		a.PriorScore, a.NewScore, a.Level, strings.Join(a.Factors, "; "))
}
