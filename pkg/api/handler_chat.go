package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/arogya-labs/aushadhi/pkg/agent/orchestrator"
	"github.com/arogya-labs/aushadhi/pkg/llm"
)

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	SessionID    string                `json:"session_id"`
	Phone        string                `json:"phone,omitempty"`
	Message      string                `json:"message"`
	Token        string                `json:"confirmation_token,omitempty"`
	Prescription *llm.PrescriptionScan `json:"prescription,omitempty"`
}

// chatHandler handles POST /api/v1/chat: one conversational turn.
func (s *Server) chatHandler(c *echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if req.Message == "" && req.Prescription == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "message or prescription is required")
	}

	reply, err := s.turner.HandleTurn(c.Request().Context(), orchestrator.TurnInput{
		SessionID:    req.SessionID,
		Phone:        req.Phone,
		Message:      req.Message,
		Token:        req.Token,
		Prescription: req.Prescription,
	})
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(http.StatusOK, reply)
}

// timelineHandler handles GET /api/v1/sessions/:id/timeline: the full
// trace history for a session, for reconnecting dashboards.
func (s *Server) timelineHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"session_id": sessionID,
		"events":     s.traces.History(sessionID),
	})
}

// eventHistoryHandler handles GET /api/v1/events/:kind: recent domain
// events of one kind.
func (s *Server) eventHistoryHandler(c *echo.Context) error {
	kind := c.Param("kind")
	limit := 50
	events := s.events.History(kind, limit)
	payload := make([]map[string]any, 0, len(events))
	for _, evt := range events {
		payload = append(payload, evt.Data())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"kind":   kind,
		"events": payload,
	})
}
