package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogya-labs/aushadhi/pkg/agent"
	"github.com/arogya-labs/aushadhi/pkg/agent/orchestrator"
	"github.com/arogya-labs/aushadhi/pkg/bus"
	"github.com/arogya-labs/aushadhi/pkg/config"
	"github.com/arogya-labs/aushadhi/pkg/confirm"
	"github.com/arogya-labs/aushadhi/pkg/fusion"
	"github.com/arogya-labs/aushadhi/pkg/llm"
	"github.com/arogya-labs/aushadhi/pkg/risk"
	"github.com/arogya-labs/aushadhi/pkg/store"
	"github.com/arogya-labs/aushadhi/pkg/trace"
	testdb "github.com/arogya-labs/aushadhi/test/database"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()

	cfg, err := config.Initialize(t.TempDir())
	require.NoError(t, err)

	client := testdb.NewTestClient(t)
	st := store.New(client.Client)
	logger := slog.Default()

	eb := bus.NewWithHistory(100)
	traces := trace.NewManager()
	fusions := fusion.NewRegistry()
	confirmations := confirm.NewStore(logger)

	orch := orchestrator.New(orchestrator.Config{
		Risk: agent.NewRiskAgent(risk.NewScorer(risk.Catalog{
			Controlled:     cfg.Clinical.ControlledSubstances,
			AbusePotential: cfg.Clinical.AbusePotential,
		}), st, traces, logger),
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

	srv := NewServer(Deps{
		Config:        cfg,
		DB:            client,
		Store:         st,
		Turner:        orchestrator.NewTurner(orch, llm.NewKeywordClassifier(), llm.NewKeywordExtractor()),
		Orchestrator:  orch,
		Confirmations: confirmations,
		Traces:        traces,
		Fusions:       fusions,
		Events:        eb,
	})
	return srv, st
}

func doJSON(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &parsed)
	}
	return rec, parsed
}

func TestHealthAndVersionEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec, body = doJSON(t, s, http.MethodGet, "/version", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "aushadhi", body["app"])
}

func TestChatHandlerValidation(t *testing.T) {
	s, _ := newTestServer(t)

	rec, _ := doJSON(t, s, http.MethodPost, "/api/v1/chat", map[string]any{"message": "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, s, http.MethodPost, "/api/v1/chat", map[string]any{"session_id": "s1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatToConfirmFlow(t *testing.T) {
	s, st := newTestServer(t)
	ctx := context.Background()
	_, err := st.AddMedicine(ctx, store.MedicineInput{Name: "Paracetamol 500mg", Category: "analgesic", Price: 20, Stock: 50})
	require.NoError(t, err)

	rec, body := doJSON(t, s, http.MethodPost, "/api/v1/chat", map[string]any{
		"session_id": "api-sess-1",
		"phone":      "+919876500010",
		"message":    "I want to buy 2 Paracetamol 500mg",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, agent.PhaseAwaitingConfirmation, body["phase"])
	token, _ := body["confirmation_token"].(string)
	require.NotEmpty(t, token)

	rec, body = doJSON(t, s, http.MethodPost, "/api/v1/sessions/api-sess-1/confirm", map[string]any{
		"answer":             "yes",
		"confirmation_token": token,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, agent.PhaseCompleted, body["phase"])
	order, ok := body["order"].(map[string]any)
	require.True(t, ok)
	orderID, _ := order["order_id"].(string)
	assert.NotEmpty(t, orderID)

	// A retried delivery replays the reply instead of failing on the
	// consumed token.
	rec, body = doJSON(t, s, http.MethodPost, "/api/v1/sessions/api-sess-1/confirm", map[string]any{
		"answer":             "yes",
		"confirmation_token": token,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	replayed, ok := body["order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, orderID, replayed["order_id"])
}

func TestConfirmHandlerValidation(t *testing.T) {
	s, _ := newTestServer(t)

	rec, _ := doJSON(t, s, http.MethodPost, "/api/v1/sessions/s1/confirm", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTimelineEndpointReturnsTraceHistory(t *testing.T) {
	s, _ := newTestServer(t)
	s.traces.Emit("timeline-sess", "risk_scoring_agent", "risk_assessment",
		trace.TypeThinking, trace.StatusStarted, nil, "")

	rec, body := doJSON(t, s, http.MethodGet, "/api/v1/sessions/timeline-sess/timeline", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "timeline-sess", body["session_id"])
	events, ok := body["events"].([]any)
	require.True(t, ok)
	assert.Len(t, events, 1)
}

func TestAdminMedicineCRUD(t *testing.T) {
	s, _ := newTestServer(t)

	rec, created := doJSON(t, s, http.MethodPost, "/api/v1/admin/medicines", MedicineRequest{
		Name: "Ibuprofen 400mg", Category: "analgesic", Price: 25, Stock: 40,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Ibuprofen 400mg", created["name"])

	rec, listed := doJSON(t, s, http.MethodGet, "/api/v1/admin/medicines?category=analgesic", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	meds, ok := listed["medicines"].([]any)
	require.True(t, ok)
	require.Len(t, meds, 1)

	rec, updated := doJSON(t, s, http.MethodPut, "/api/v1/admin/medicines/Ibuprofen%20400mg", MedicineRequest{
		Name: "Ibuprofen 400mg", Price: 27.5, Stock: 35,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 27.5, updated["price"])

	rec, _ = doJSON(t, s, http.MethodDelete, "/api/v1/admin/medicines/Ibuprofen%20400mg", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = doJSON(t, s, http.MethodDelete, "/api/v1/admin/medicines/Ibuprofen%20400mg", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminCreateValidation(t *testing.T) {
	s, _ := newTestServer(t)

	rec, _ := doJSON(t, s, http.MethodPost, "/api/v1/admin/medicines", MedicineRequest{Category: "misc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, s, http.MethodPost, "/api/v1/admin/medicines", MedicineRequest{Name: "X", Price: -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHistoryEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	s.events.Publish(context.Background(), bus.OrderCreated{
		Meta:    bus.NewMeta(),
		OrderID: fmt.Sprintf("ORD-%d-abc", 1),
		UserID:  "PAT-e1",
	})

	rec, body := doJSON(t, s, http.MethodGet, "/api/v1/events/order.created", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	events, ok := body["events"].([]any)
	require.True(t, ok)
	require.Len(t, events, 1)
	first := events[0].(map[string]any)
	assert.Equal(t, "PAT-e1", first["user_id"])
}
