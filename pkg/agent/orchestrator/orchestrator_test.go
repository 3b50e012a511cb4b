package orchestrator

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogya-labs/aushadhi/ent/order"
	"github.com/arogya-labs/aushadhi/pkg/agent"
	"github.com/arogya-labs/aushadhi/pkg/bus"
	"github.com/arogya-labs/aushadhi/pkg/confirm"
	"github.com/arogya-labs/aushadhi/pkg/fusion"
	"github.com/arogya-labs/aushadhi/pkg/llm"
	"github.com/arogya-labs/aushadhi/pkg/risk"
	"github.com/arogya-labs/aushadhi/pkg/store"
	"github.com/arogya-labs/aushadhi/pkg/trace"
	testdb "github.com/arogya-labs/aushadhi/test/database"
)

type pipelineHarness struct {
	orch    *Orchestrator
	store   *store.Store
	bus     *bus.Bus
	fusions *fusion.Registry
}

func newPipelineHarness(t *testing.T) *pipelineHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	st := store.New(client.Client)
	logger := slog.Default()

	eb := bus.NewWithHistory(100)
	fusions := fusion.NewRegistry()
	traces := trace.NewManager(trace.WithObserverFactory(fusions.ObserverFactory()))
	confirmations := confirm.NewStore(logger)

	scorer := risk.NewScorer(risk.Catalog{
		Controlled:     []string{"tramadol", "codeine", "alprazolam"},
		AbusePotential: []string{"pregabalin", "dextromethorphan"},
	})

	orch := New(Config{
		Risk:          agent.NewRiskAgent(scorer, st, traces, logger),
		Validator:     agent.NewValidator(nil, nil, agent.DefaultRules(), traces, logger),
		Inventory:     agent.NewInventoryAgent(st, traces, logger),
		Fulfillment:   agent.NewFulfillmentAgent(st, eb, traces, logger),
		Store:         st,
		Confirmations: confirmations,
		Events:        eb,
		Traces:        traces,
		Fusions:       fusions,
		Logger:        logger,
	})
	return &pipelineHarness{orch: orch, store: st, bus: eb, fusions: fusions}
}

func (h *pipelineHarness) seed(t *testing.T, in store.MedicineInput) {
	t.Helper()
	_, err := h.store.AddMedicine(context.Background(), in)
	require.NoError(t, err)
}

func purchaseState(items ...agent.RequestedLine) *agent.PipelineState {
	return &agent.PipelineState{
		SessionID: "sess-orch-1",
		Phone:     "+919876500001",
		Phase:     agent.PhaseCollectingItems,
		Intent:    llm.IntentPurchase,
		Items:     items,
	}
}

func TestPipelineHappyPathThroughConfirmation(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Paracetamol 500mg", Category: "analgesic", Price: 20, Stock: 50})

	state := purchaseState(agent.RequestedLine{Name: "Paracetamol 500mg", Dosage: "500mg", Quantity: 2, IsOTC: true})

	reply, err := h.orch.StartPipeline(ctx, state)
	require.NoError(t, err)

	assert.Equal(t, agent.PhaseAwaitingConfirmation, reply.Phase)
	require.NotEmpty(t, reply.Token)
	require.NotNil(t, reply.Inventory)
	assert.InDelta(t, 40.0, reply.Inventory.TotalAmount, 0.001)
	assert.Contains(t, reply.Message, "Reply yes to confirm")

	done, err := h.orch.Resume(ctx, state.SessionID, "yes", reply.Token)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, done.Status)
	assert.Equal(t, agent.PhaseCompleted, done.Phase)
	require.NotNil(t, done.Order)
	assert.Equal(t, string(order.StatusFulfilled), done.Order.Status)
	assert.NotEmpty(t, done.Order.OrderID)

	// Stock was decremented inside the fulfillment transaction.
	match, err := h.store.GetMedicine(ctx, "Paracetamol 500mg")
	require.NoError(t, err)
	assert.Equal(t, 48, match.Stock)

	// The token is single use.
	again, err := h.orch.Resume(ctx, state.SessionID, "yes", reply.Token)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, again.Status)
	assert.Contains(t, again.Message, "expired or was already used")
}

func TestResumeWrongTokenKeepsOrderPending(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Paracetamol 500mg", Category: "analgesic", Price: 20, Stock: 10})

	state := purchaseState(agent.RequestedLine{Name: "Paracetamol 500mg", Dosage: "500mg", Quantity: 1, IsOTC: true})
	reply, err := h.orch.StartPipeline(ctx, state)
	require.NoError(t, err)
	require.NotEmpty(t, reply.Token)

	// A wrong token is invalid, not expired: the entry stays claimable.
	bad, err := h.orch.Resume(ctx, state.SessionID, "yes", "not-the-token")
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, bad.Status)
	assert.Equal(t, agent.PhaseAwaitingConfirmation, bad.Phase)

	good, err := h.orch.Resume(ctx, state.SessionID, "yes", reply.Token)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, good.Status)
	assert.Equal(t, agent.PhaseCompleted, good.Phase)
}

func TestPipelineDeclineCancelsWithoutSideEffects(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Cetirizine 10mg", Category: "antihistamine", Price: 15, Stock: 30})

	state := purchaseState(agent.RequestedLine{Name: "Cetirizine 10mg", Quantity: 1, IsOTC: true})
	reply, err := h.orch.StartPipeline(ctx, state)
	require.NoError(t, err)
	require.NotEmpty(t, reply.Token)

	declined, err := h.orch.Resume(ctx, state.SessionID, "no", reply.Token)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, declined.Status)
	assert.Equal(t, agent.PhaseCollectingItems, declined.Phase)
	assert.Contains(t, declined.Message, "cancelled")

	match, err := h.store.GetMedicine(ctx, "Cetirizine 10mg")
	require.NoError(t, err)
	assert.Equal(t, 30, match.Stock)

	// After cancellation the token no longer fulfills.
	after, err := h.orch.Resume(ctx, state.SessionID, "yes", reply.Token)
	require.NoError(t, err)
	assert.Contains(t, after.Message, "expired or was already used")
}

func TestPipelineAmbiguousAnswerReprompts(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Cetirizine 10mg", Category: "antihistamine", Price: 15, Stock: 30})

	state := purchaseState(agent.RequestedLine{Name: "Cetirizine 10mg", Quantity: 1, IsOTC: true})
	reply, err := h.orch.StartPipeline(ctx, state)
	require.NoError(t, err)
	require.NotEmpty(t, reply.Token)

	huh, err := h.orch.Resume(ctx, state.SessionID, "maybe", reply.Token)
	require.NoError(t, err)
	assert.Equal(t, agent.PhaseAwaitingConfirmation, huh.Phase)
	assert.Contains(t, huh.Message, "yes to confirm")
}

func TestPipelineRejectsScheduleX(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()

	state := purchaseState(agent.RequestedLine{Name: "Alprazolam 0.5mg", Quantity: 1, IsOTC: false})
	reply, err := h.orch.StartPipeline(ctx, state)
	require.NoError(t, err)

	assert.Equal(t, agent.PhaseRejected, reply.Phase)
	assert.Empty(t, reply.Token)
	assert.Contains(t, reply.Message, "cannot be fulfilled")

	rejections := h.bus.History(bus.KindOrderRejected, 10)
	assert.NotEmpty(t, rejections)
}

func TestPipelineNothingAvailableFails(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()

	state := purchaseState(agent.RequestedLine{Name: "Nonexistium 100mg", Quantity: 1, IsOTC: true})
	reply, err := h.orch.StartPipeline(ctx, state)
	require.NoError(t, err)

	assert.Equal(t, agent.PhaseFailed, reply.Phase)
	assert.Empty(t, reply.Token)
	assert.Contains(t, reply.Message, "none of the requested medicines")

	failures := h.bus.History(bus.KindOrderFailed, 10)
	assert.NotEmpty(t, failures)
}

func TestPipelineSelloutBetweenGateAndConfirm(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Dolo 650", Category: "analgesic", Price: 30, Stock: 2})

	state := purchaseState(agent.RequestedLine{Name: "Dolo 650", Quantity: 2, IsOTC: true})
	reply, err := h.orch.StartPipeline(ctx, state)
	require.NoError(t, err)
	require.NotEmpty(t, reply.Token)

	// Someone else buys the last units while the user deliberates.
	err = h.store.RunInTx(ctx, func(tx *store.Tx) error {
		_, err := tx.DecrementStock("Dolo 650", 2)
		return err
	})
	require.NoError(t, err)

	failed, err := h.orch.Resume(ctx, state.SessionID, "yes", reply.Token)
	require.NoError(t, err)
	assert.Equal(t, agent.PhaseFailed, failed.Phase)
	assert.Contains(t, failed.Message, "sold out while you were confirming")
	require.NotNil(t, failed.Order)
	assert.Equal(t, "out_of_stock", failed.Order.ErrorType)
}

func TestPipelineEmptyItemsPrompts(t *testing.T) {
	h := newPipelineHarness(t)

	reply, err := h.orch.StartPipeline(context.Background(), purchaseState())
	require.NoError(t, err)
	assert.Equal(t, agent.PhaseCollectingItems, reply.Phase)
	assert.Contains(t, reply.Message, "which medicines")
}

func TestNormalizeAnswer(t *testing.T) {
	yes := []string{"yes", "Y", " Confirm ", "haan", "OK"}
	for _, a := range yes {
		assert.Equal(t, "yes", normalizeAnswer(a), "input %q", a)
	}
	no := []string{"no", "N", "cancel", "nahi"}
	for _, a := range no {
		assert.Equal(t, "no", normalizeAnswer(a), "input %q", a)
	}
	assert.Equal(t, "maybe", normalizeAnswer("Maybe"))
}

func TestFulfillmentRequiresConfirmedPhase(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Paracetamol 500mg", Category: "analgesic", Price: 20, Stock: 10})

	state := purchaseState(agent.RequestedLine{Name: "Paracetamol 500mg", Dosage: "500mg", Quantity: 1, IsOTC: true})
	_, err := h.orch.StartPipeline(ctx, state)
	require.NoError(t, err)
	require.Equal(t, agent.PhaseAwaitingConfirmation, state.Phase)

	failuresBefore := len(h.bus.History(bus.KindOrderFailed, 100))

	fa := agent.NewFulfillmentAgent(h.store, h.bus, trace.NewManager(), slog.Default())
	result, err := fa.Run(ctx, state)
	require.Error(t, err)
	assert.True(t, IsConfirmationRequired(err))
	assert.Nil(t, result)

	var gateErr *agent.ConfirmationRequiredError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, state.SessionID, gateErr.SessionID)

	// The gate refusal leaves no residue: no stock movement, no order
	// record, no failure event, and the phase is untouched.
	match, err := h.store.GetMedicine(ctx, "Paracetamol 500mg")
	require.NoError(t, err)
	assert.Equal(t, 10, match.Stock)
	assert.Equal(t, agent.PhaseAwaitingConfirmation, state.Phase)
	assert.Nil(t, state.Fulfillment)
	assert.Len(t, h.bus.History(bus.KindOrderFailed, 100), failuresBefore)
}

func TestRejectedDispositionRecordsOrderWithoutDispensing(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()
	h.seed(t, store.MedicineInput{Name: "Aspirin 75mg", Category: "analgesic", Price: 10, Stock: 20})

	state := purchaseState(agent.RequestedLine{Name: "Aspirin 75mg", Dosage: "75mg", Quantity: 2, IsOTC: true, InCatalog: true})
	state.Phase = agent.PhaseConfirmed
	state.Validation = &agent.ValidatorResult{
		Outcome: agent.Outcome{Agent: agent.ValidatorAgentName, Decision: agent.DecisionRejected},
	}

	inv := agent.NewInventoryAgent(h.store, trace.NewManager(), slog.Default())
	_, err := inv.Run(ctx, state)
	require.NoError(t, err)

	fa := agent.NewFulfillmentAgent(h.store, h.bus, trace.NewManager(), slog.Default())

	result, err := fa.Run(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusRejected), result.Status)
	assert.Equal(t, agent.PhaseRejected, state.Phase)

	// Stock never moved and the rejection was published.
	match, err := h.store.GetMedicine(ctx, "Aspirin 75mg")
	require.NoError(t, err)
	assert.Equal(t, 20, match.Stock)
	assert.NotEmpty(t, h.bus.History(bus.KindOrderRejected, 10))
}
