// Package confirm holds orders paused at the confirmation gate. A held
// order is claimed at most once, by the token minted when it was parked.
package confirm

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/arogya-labs/aushadhi/pkg/agent"
)

// DefaultTTL is how long a pending confirmation stays claimable.
const DefaultTTL = 5 * time.Minute

// tokenBytes gives 128 bits of entropy per token.
const tokenBytes = 16

// Entry is one parked order awaiting a yes or no.
type Entry struct {
	SessionID   string
	Token       string
	State       *agent.PipelineState
	Replacement *agent.Alternative
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// ConsumeStatus reports how a claim attempt ended.
type ConsumeStatus int

const (
	// ConsumeOK means the entry was claimed and removed.
	ConsumeOK ConsumeStatus = iota
	// ConsumeInvalid means the token did not match; the entry stays
	// pending, so the right token can still claim it.
	ConsumeInvalid
	// ConsumeExpired means nothing is pending for the session, either
	// because the TTL passed or the entry was already used.
	ConsumeExpired
)

func (e *Entry) expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// Store keeps at most one pending entry per session. All operations are
// safe for concurrent use; Consume is a test-and-set so two racing
// confirmations cannot both win.
type Store struct {
	mu      sync.Mutex
	pending map[string]*Entry

	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	stopSweep chan struct{}
	sweepOnce sync.Once
}

// Option configures a Store.
type Option func(*Store)

// WithTTL overrides the default pending lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock injects the time source. Used by expiry tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore builds a confirmation store. Call StartSweeper to reap
// expired entries in the background.
func NewStore(logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		pending:   make(map[string]*Entry),
		ttl:       DefaultTTL,
		logger:    logger.With("component", "confirm"),
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create parks state for the session and returns the token that can
// claim it. replacement carries the suggested substitution, if any, so
// the confirm reply can surface it. A second Create for the same session
// replaces the first; the old token becomes useless.
func (s *Store) Create(sessionID string, state *agent.PipelineState, replacement *agent.Alternative) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("mint confirmation token: %w", err)
	}

	now := s.now()
	entry := &Entry{
		SessionID:   sessionID,
		Token:       token,
		State:       state,
		Replacement: replacement,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	s.mu.Lock()
	replaced := s.pending[sessionID] != nil
	s.pending[sessionID] = entry
	s.mu.Unlock()

	s.logger.Info("confirmation parked",
		"session_id", sessionID,
		"replaced", replaced,
		"expires_at", entry.ExpiresAt)
	return token, nil
}

// GetPending returns the live entry for the session, or nil. Expired
// entries are dropped on read.
func (s *Store) GetPending(sessionID string) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[sessionID]
	if !ok {
		return nil
	}
	if entry.expired(s.now()) {
		delete(s.pending, sessionID)
		return nil
	}
	return entry
}

// IsPending reports whether the session has a live parked order.
func (s *Store) IsPending(sessionID string) bool {
	return s.GetPending(sessionID) != nil
}

// Consume claims the entry if the token matches and it has not expired.
// A claimed entry is removed before the call returns, so a token can win
// at most once. A wrong token leaves the entry pending.
func (s *Store) Consume(sessionID, token string) (*Entry, ConsumeStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[sessionID]
	if !ok {
		return nil, ConsumeExpired
	}
	if entry.expired(s.now()) {
		delete(s.pending, sessionID)
		s.logger.Info("confirmation expired at claim", "session_id", sessionID)
		return nil, ConsumeExpired
	}
	if subtle.ConstantTimeCompare([]byte(entry.Token), []byte(token)) != 1 {
		return nil, ConsumeInvalid
	}

	delete(s.pending, sessionID)
	return entry, ConsumeOK
}

// Cancel drops the pending entry, if any. Used when the user says no.
func (s *Store) Cancel(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[sessionID]; !ok {
		return false
	}
	delete(s.pending, sessionID)
	return true
}

// StartSweeper reaps expired entries until ctx is done.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopSweep:
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

// Stop halts the background sweeper.
func (s *Store) Stop() {
	s.sweepOnce.Do(func() { close(s.stopSweep) })
}

func (s *Store) sweep() {
	now := s.now()

	s.mu.Lock()
	var reaped int
	for sessionID, entry := range s.pending {
		if entry.expired(now) {
			delete(s.pending, sessionID)
			reaped++
		}
	}
	remaining := len(s.pending)
	s.mu.Unlock()

	if reaped > 0 {
		s.logger.Info("swept expired confirmations", "reaped", reaped, "pending", remaining)
	}
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
