package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogya-labs/aushadhi/pkg/agent"
	"github.com/arogya-labs/aushadhi/pkg/fusion"
	"github.com/arogya-labs/aushadhi/pkg/llm"
	"github.com/arogya-labs/aushadhi/pkg/store"
)

func scanDate(t *testing.T) string {
	t.Helper()
	return time.Now().AddDate(0, 0, -7).Format("2006-01-02")
}

func newTestTurner(t *testing.T) (*Turner, *pipelineHarness) {
	t.Helper()
	h := newPipelineHarness(t)
	return NewTurner(h.orch, llm.NewKeywordClassifier(), llm.NewKeywordExtractor()), h
}

func TestHandleTurnPurchaseThroughConfirmation(t *testing.T) {
	turner, h := newTestTurner(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Paracetamol 500mg", Category: "analgesic", Price: 20, Stock: 50})

	reply, err := turner.HandleTurn(ctx, TurnInput{
		SessionID: "sess-turn-1",
		Phone:     "+919876500002",
		Message:   "I need 2 Paracetamol 500mg",
	})
	require.NoError(t, err)

	assert.Equal(t, agent.PhaseAwaitingConfirmation, reply.Phase)
	require.NotEmpty(t, reply.Token)

	// The follow-up answer routes to the pending confirmation.
	done, err := turner.HandleTurn(ctx, TurnInput{
		SessionID: "sess-turn-1",
		Message:   "yes",
		Token:     reply.Token,
	})
	require.NoError(t, err)
	assert.Equal(t, agent.PhaseCompleted, done.Phase)
	require.NotNil(t, done.Order)
}

func TestHandleTurnInquiryAnswersWithoutPipeline(t *testing.T) {
	turner, h := newTestTurner(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Cetirizine 10mg", Category: "antihistamine", Price: 15, Stock: 30})

	reply, err := turner.HandleTurn(ctx, TurnInput{
		SessionID: "sess-turn-2",
		Phone:     "+919876500003",
		Message:   "what is the price of 1 Cetirizine 10mg",
	})
	require.NoError(t, err)

	assert.Equal(t, agent.PhaseCollectingItems, reply.Phase)
	assert.Contains(t, reply.Message, "in stock")
	assert.Contains(t, reply.Message, "₹15.00")
	assert.Empty(t, reply.Token)
}

func TestHandleTurnVagueMessageAsksForClarification(t *testing.T) {
	turner, _ := newTestTurner(t)

	reply, err := turner.HandleTurn(context.Background(), TurnInput{
		SessionID: "sess-turn-3",
		Phone:     "+919876500004",
		Message:   "hello there",
	})
	require.NoError(t, err)

	assert.Equal(t, agent.PhaseCollectingItems, reply.Phase)
	assert.Contains(t, reply.Message, "tell me a bit more")
}

func TestHandleTurnPrescriptionStartsPipeline(t *testing.T) {
	turner, h := newTestTurner(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{
		Name: "Amoxicillin 500mg", Category: "antibiotic", Price: 45, Stock: 20,
		RequiresPrescription: true,
	})

	reply, err := turner.HandleTurn(ctx, TurnInput{
		SessionID: "sess-turn-4",
		Phone:     "+919876500005",
		Prescription: &llm.PrescriptionScan{
			PatientName: "Asha Rao",
			DoctorName:  "Dr. Mehta",
			Date:        scanDate(t),
			Medicines: []llm.ScannedMedicine{
				{Name: "Amoxicillin 500mg", Dosage: "500mg", Frequency: "1-0-1"},
			},
			SignaturePresent: true,
			Confidence:       0.9,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, agent.PhaseAwaitingConfirmation, reply.Phase)
	require.NotEmpty(t, reply.Token)
	require.NotNil(t, reply.Safety)
	assert.True(t, reply.Safety.SafeToDispense)
}

func TestHandleTurnFeedsFusionSignals(t *testing.T) {
	turner, h := newTestTurner(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Paracetamol 500mg", Category: "analgesic", Price: 20, Stock: 50})

	_, err := turner.HandleTurn(ctx, TurnInput{
		SessionID: "sess-turn-5",
		Phone:     "+919876500006",
		Message:   "I need 2 Paracetamol 500mg",
	})
	require.NoError(t, err)

	current := h.fusions.For("sess-turn-5").Current()
	require.NotNil(t, current)
	scores := current.ContributingScores

	assert.Contains(t, scores, fusion.ScoreIntentClassification)
	assert.Contains(t, scores, fusion.ScoreIdentityResolution)
	assert.Contains(t, scores, fusion.ScoreIntentExtraction)
	assert.Greater(t, scores[fusion.ScoreIntentExtraction], 0.0)
}

func TestHandleTurnPrescriptionFeedsOCRConfidence(t *testing.T) {
	turner, h := newTestTurner(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{
		Name: "Amoxicillin 500mg", Category: "antibiotic", Price: 45, Stock: 20,
		RequiresPrescription: true,
	})

	_, err := turner.HandleTurn(ctx, TurnInput{
		SessionID: "sess-turn-6",
		Phone:     "+919876500007",
		Prescription: &llm.PrescriptionScan{
			PatientName: "Asha Rao",
			DoctorName:  "Dr. Mehta",
			Date:        scanDate(t),
			Medicines: []llm.ScannedMedicine{
				{Name: "Amoxicillin 500mg", Dosage: "500mg", Frequency: "1-0-1"},
			},
			SignaturePresent: true,
			Confidence:       0.9,
		},
	})
	require.NoError(t, err)

	scores := h.fusions.For("sess-turn-6").Current().ContributingScores
	assert.InDelta(t, 0.9, scores[fusion.ScoreOCRConfidence], 1e-9)
	assert.Contains(t, scores, fusion.ScoreIdentityResolution)
}
