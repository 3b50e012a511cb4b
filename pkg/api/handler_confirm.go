package api

import (
	"net/http"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/arogya-labs/aushadhi/pkg/agent/orchestrator"
)

// ConfirmRequest is the body of POST /api/v1/sessions/:id/confirm.
type ConfirmRequest struct {
	Answer string `json:"answer"`
	Token  string `json:"confirmation_token"`
}

// confirmHandler handles POST /api/v1/sessions/:id/confirm. Repeated
// deliveries of the same confirmation (client retries, double taps)
// return the first reply instead of a "token already used" failure.
func (s *Server) confirmHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Answer == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "answer is required")
	}

	key := sessionID + ":" + req.Token + ":" + req.Answer
	if cached, ok := s.idempotency.get(key); ok {
		return c.JSON(http.StatusOK, cached)
	}

	reply, err := s.orch.Resume(c.Request().Context(), sessionID, req.Answer, req.Token)
	if err != nil {
		return mapStoreError(err)
	}
	s.idempotency.put(key, reply)
	return c.JSON(http.StatusOK, reply)
}

// idempotencyCache replays recent confirmation replies. Entries are
// scoped to one token so the window cannot leak across orders.
type idempotencyCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]idempotencyEntry
}

type idempotencyEntry struct {
	reply    *orchestrator.Reply
	storedAt time.Time
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	return &idempotencyCache{
		ttl:     ttl,
		entries: make(map[string]idempotencyEntry),
	}
}

func (c *idempotencyCache) get(key string) (*orchestrator.Reply, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.reply, true
}

func (c *idempotencyCache) put(key string, reply *orchestrator.Reply) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Opportunistic cleanup keeps the map bounded without a sweeper.
	for k, e := range c.entries {
		if time.Since(e.storedAt) > c.ttl {
			delete(c.entries, k)
		}
	}
	c.entries[key] = idempotencyEntry{reply: reply, storedAt: time.Now()}
}
