package agent

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogya-labs/aushadhi/pkg/llm"
	"github.com/arogya-labs/aushadhi/pkg/trace"
)

type failingChecker struct{}

func (failingChecker) CheckInteractions(ctx context.Context, items []llm.RequestedItem) (*llm.InteractionReport, error) {
	return nil, errors.New("model endpoint unreachable")
}

func recentDate(t *testing.T) string {
	t.Helper()
	return time.Now().AddDate(0, 0, -10).Format("2006-01-02")
}

func newTestValidator() *Validator {
	return NewValidator(nil, nil, DefaultRules(), trace.NewManager(), slog.Default())
}

func otcState(items ...RequestedLine) *PipelineState {
	return &PipelineState{
		SessionID: "sess-1",
		UserID:    "PAT-1",
		Phase:     PhaseCollectingItems,
		Intent:    llm.IntentPurchase,
		Items:     items,
	}
}

func TestOTCCleanRequestApproved(t *testing.T) {
	v := newTestValidator()
	state := otcState(
		RequestedLine{Name: "Paracetamol 500mg", Dosage: "500mg", Quantity: 2, IsOTC: true, InCatalog: true},
		RequestedLine{Name: "Cetirizine 10mg", Dosage: "10mg", Quantity: 1, IsOTC: true, InCatalog: true},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionApproved, result.Decision)
	assert.True(t, result.SafeToDispense)
	assert.Empty(t, result.SafetyIssues)
	require.NotNil(t, result.Summary)
	assert.Equal(t, DecisionApproved, result.Summary.ValidationStatus)
	assert.Same(t, result, state.Validation)
}

func TestOTCAnticoagulantPlusNSAIDRejected(t *testing.T) {
	v := newTestValidator()
	state := otcState(
		RequestedLine{Name: "Warfarin 5mg", Dosage: "5mg", Quantity: 1, IsOTC: false, InCatalog: true},
		RequestedLine{Name: "Aspirin 75mg", Dosage: "75mg", Quantity: 1, IsOTC: true, InCatalog: true},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionRejected, result.Decision)
	assert.False(t, result.SafeToDispense)
	require.NotNil(t, result.Interactions)
	assert.Equal(t, llm.SeveritySevere, result.Interactions.Severity)
}

func TestOTCScheduleXRejected(t *testing.T) {
	v := newTestValidator()
	state := otcState(
		RequestedLine{Name: "Alprazolam 0.5mg", Dosage: "0.5mg", Quantity: 1, IsOTC: false},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionRejected, result.Decision)
	assert.False(t, result.SafeToDispense)
	require.NotEmpty(t, result.SafetyIssues)
	assert.Contains(t, result.SafetyIssues[0], "Schedule X")
}

func TestOTCPrescriptionRequiredNeedsReview(t *testing.T) {
	v := newTestValidator()
	state := otcState(
		RequestedLine{Name: "Amoxicillin 500mg", Dosage: "500mg", Quantity: 1, IsOTC: false, InCatalog: true},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionNeedsReview, result.Decision)
	assert.False(t, result.SafeToDispense)
	assert.False(t, result.PrescriptionVerified)
	assert.Contains(t, result.SafetyIssues[0], "requires a valid prescription")
}

func TestOTCUnknownMedicineFlaggedForReview(t *testing.T) {
	v := newTestValidator()
	state := otcState(
		RequestedLine{Name: "Obscurol 20mg", Dosage: "20mg", Quantity: 1, IsOTC: true},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionNeedsReview, result.Decision)
	assert.Contains(t, result.SafetyIssues[0], "[PRESCRIPTION REQUIRED]")
}

func TestOTCDosageInferredFromCatalogStrength(t *testing.T) {
	v := newTestValidator()
	state := otcState(
		RequestedLine{Name: "Paracetamol", Quantity: 1, IsOTC: true, InCatalog: true, CatalogStrength: "500mg"},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionApproved, result.Decision)
	assert.Equal(t, "500mg", state.Items[0].Dosage)
	assert.True(t, state.Items[0].DosageInferred)
	require.NotNil(t, result.Summary)
	require.Len(t, result.Summary.Recommendations, 1)
	assert.Contains(t, result.Summary.Recommendations[0].Warnings[0], "inferred from catalog strength")
}

func TestOTCDosageUnspecifiedNeedsReview(t *testing.T) {
	v := newTestValidator()
	state := otcState(
		RequestedLine{Name: "Cetirizine", Quantity: 1, IsOTC: true, InCatalog: true},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionNeedsReview, result.Decision)
	assert.Contains(t, result.SafetyIssues[0], "dosage unspecified")
}

func TestOTCPatientContextWarnings(t *testing.T) {
	v := newTestValidator()
	state := otcState(
		RequestedLine{Name: "Paracetamol 500mg", Dosage: "500mg", Quantity: 1, IsOTC: true, InCatalog: true},
	)
	state.Patient = &PatientInfo{
		PID:       "PAT-9",
		Age:       72,
		Allergies: []string{"penicillin"},
	}

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	require.NotNil(t, result.Summary)
	assert.Contains(t, result.Summary.PatientContext, "elderly patient (age 72)")
	assert.Contains(t, result.Summary.PatientContext, "penicillin")
	// Counseling context never blocks a clean request on its own.
	assert.Equal(t, DecisionApproved, result.Decision)
}

func TestInteractionCheckDegradesToRuleTable(t *testing.T) {
	v := NewValidator(failingChecker{}, nil, DefaultRules(), trace.NewManager(), slog.Default())
	state := otcState(
		RequestedLine{Name: "Warfarin 5mg", Dosage: "5mg", Quantity: 1, IsOTC: false},
		RequestedLine{Name: "Aspirin 75mg", Dosage: "75mg", Quantity: 1, IsOTC: true},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionRejected, result.Decision)
	require.NotNil(t, result.Interactions)
	assert.False(t, result.Interactions.SafeToDispense)
}

func TestSymptomRedFlagSuspendsDispensing(t *testing.T) {
	v := newTestValidator()
	state := otcState(RequestedLine{Name: "Aspirin", Quantity: 1, IsOTC: true})
	state.Intent = llm.IntentSymptom
	state.Message = "I have chest pain and want an aspirin"

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionRejected, result.Decision)
	assert.GreaterOrEqual(t, result.SeverityScore, 9)
	assert.False(t, result.SafeToDispense)
}

func TestPrescriptionValidApproved(t *testing.T) {
	v := newTestValidator()
	state := otcState()
	state.Prescription = &llm.PrescriptionScan{
		PatientName: "Asha Rao",
		DoctorName:  "Dr. Mehta",
		Date:        recentDate(t),
		Medicines: []llm.ScannedMedicine{
			{Name: "Amoxicillin 500mg", Dosage: "500mg", Frequency: "1-0-1", Duration: "5 days"},
		},
		SignaturePresent: true,
		Confidence:       0.92,
	}

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionApproved, result.Decision)
	assert.True(t, result.SafeToDispense)
	assert.Contains(t, result.Reconstructed, "Dr. Mehta")
	assert.NotContains(t, result.Reconstructed, notVisible)
}

func TestPrescriptionExpiredRejected(t *testing.T) {
	v := newTestValidator()
	state := otcState()
	state.Prescription = &llm.PrescriptionScan{
		DoctorName: "Dr. Mehta",
		Date:       "2020-01-15",
		Medicines: []llm.ScannedMedicine{
			{Name: "Amoxicillin 500mg", Dosage: "500mg", Frequency: "1-0-1"},
		},
		SignaturePresent: true,
		Confidence:       0.9,
	}

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionRejected, result.Decision)
	assert.False(t, result.SafeToDispense)
	assert.Contains(t, result.SafetyIssues[0], "EXPIRED_PRESCRIPTION")
}

func TestPrescriptionMissingSignatureFlagged(t *testing.T) {
	v := newTestValidator()
	state := otcState()
	state.Prescription = &llm.PrescriptionScan{
		DoctorName: "Dr. Mehta",
		Date:       recentDate(t),
		Medicines: []llm.ScannedMedicine{
			{Name: "Amoxicillin 500mg", Dosage: "500mg"},
		},
		SignaturePresent: false,
		Confidence:       0.8,
	}

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionNeedsReview, result.Decision)
	assert.Contains(t, result.SafetyIssues[0], "signature")
	assert.Contains(t, result.Reconstructed, notVisible)
}

func TestPrescriptionScheduleH1Warns(t *testing.T) {
	v := newTestValidator()
	state := otcState()
	state.Prescription = &llm.PrescriptionScan{
		DoctorName: "Dr. Mehta",
		Date:       recentDate(t),
		Medicines: []llm.ScannedMedicine{
			{Name: "Tramadol 50mg", Dosage: "50mg", Frequency: "1-0-1"},
		},
		SignaturePresent: true,
		Confidence:       0.9,
	}

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, DecisionNeedsReview, result.Decision)
	assert.Contains(t, result.SafetyIssues[0], "SCHEDULE_H1")
	assert.Greater(t, result.RiskScore, 0.0)
}

func TestOTCSummaryHasOneRecommendationPerItem(t *testing.T) {
	v := newTestValidator()
	state := otcState(
		RequestedLine{Name: "Paracetamol 500mg", Dosage: "500mg", Quantity: 2, IsOTC: true, InCatalog: true},
		RequestedLine{Name: "Cetirizine 10mg", Dosage: "10mg", Quantity: 1, IsOTC: true, InCatalog: true},
		RequestedLine{Name: "ORS sachet", Dosage: "1 sachet", Quantity: 4, IsOTC: true, InCatalog: true},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)
	require.NotNil(t, result.Summary)

	require.Len(t, result.Summary.Recommendations, len(state.Items))
	for i, rec := range result.Summary.Recommendations {
		assert.Equal(t, state.Items[i].Name, rec.Name)
	}
	assert.NotEmpty(t, result.Summary.Title)
	assert.NotEmpty(t, result.Summary.Disclaimer)
	assert.False(t, result.Summary.GeneratedAt.IsZero())

	// The summary survives the JSON boundary with its shape intact.
	raw, err := json.Marshal(result.Summary)
	require.NoError(t, err)
	var back OTCSummary
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Len(t, back.Recommendations, len(state.Items))
	assert.Equal(t, result.Summary.ValidationStatus, back.ValidationStatus)
}

type flakyChecker struct {
	calls  int
	report *llm.InteractionReport
}

func (c *flakyChecker) CheckInteractions(ctx context.Context, items []llm.RequestedItem) (*llm.InteractionReport, error) {
	c.calls++
	if c.calls == 1 {
		return nil, llm.NewTimeoutError("interaction_check", context.DeadlineExceeded)
	}
	return c.report, nil
}

func TestInteractionTimeoutRetriedOnce(t *testing.T) {
	checker := &flakyChecker{report: &llm.InteractionReport{SafeToDispense: true}}
	v := NewValidator(checker, nil, DefaultRules(), trace.NewManager(), slog.Default())
	state := otcState(
		RequestedLine{Name: "Paracetamol 500mg", Dosage: "500mg", Quantity: 1, IsOTC: true, InCatalog: true},
	)

	result, err := v.Run(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, 2, checker.calls, "a recoverable failure gets exactly one retry")
	assert.Equal(t, DecisionApproved, result.Decision)
	assert.Same(t, checker.report, result.Interactions)
}

func TestReconstructMarksIllegibleFields(t *testing.T) {
	scan := &llm.PrescriptionScan{
		Medicines: []llm.ScannedMedicine{
			{Name: "Amoxicillin", Dosage: ""},
		},
	}

	out := ReconstructPrescription(scan)

	assert.Contains(t, out, "Patient: "+notVisible)
	assert.Contains(t, out, "Doctor: "+notVisible)
	assert.Contains(t, out, "Amoxicillin")
	assert.Contains(t, out, "Signature: "+notVisible)
}
