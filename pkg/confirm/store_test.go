package confirm

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogya-labs/aushadhi/pkg/agent"
)

func testState(sessionID string) *agent.PipelineState {
	return &agent.PipelineState{
		SessionID: sessionID,
		UserID:    "PAT-1",
		Phase:     agent.PhaseAwaitingConfirmation,
	}
}

func TestConsumeIsSingleUse(t *testing.T) {
	s := NewStore(slog.Default())

	token, err := s.Create("sess-1", testState("sess-1"), nil)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	entry, status := s.Consume("sess-1", token)
	require.Equal(t, ConsumeOK, status)
	assert.Equal(t, "sess-1", entry.SessionID)

	_, status = s.Consume("sess-1", token)
	assert.Equal(t, ConsumeExpired, status, "a consumed token must never win twice")
	assert.False(t, s.IsPending("sess-1"))
}

func TestConsumeRejectsWrongTokenButKeepsEntry(t *testing.T) {
	s := NewStore(slog.Default())

	token, err := s.Create("sess-1", testState("sess-1"), nil)
	require.NoError(t, err)

	_, status := s.Consume("sess-1", "not-the-token")
	assert.Equal(t, ConsumeInvalid, status)
	assert.True(t, s.IsPending("sess-1"), "a failed claim must not discard the entry")

	// The real token still works after a bad guess.
	_, status = s.Consume("sess-1", token)
	assert.Equal(t, ConsumeOK, status)
}

func TestExpiredEntryCannotBeConsumed(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	s := NewStore(slog.Default(), WithTTL(time.Minute), WithClock(func() time.Time { return clock() }))

	token, err := s.Create("sess-1", testState("sess-1"), nil)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	_, status := s.Consume("sess-1", token)
	assert.Equal(t, ConsumeExpired, status)
	assert.False(t, s.IsPending("sess-1"))
}

func TestCreateReplacesPreviousEntry(t *testing.T) {
	s := NewStore(slog.Default())

	first, err := s.Create("sess-1", testState("sess-1"), nil)
	require.NoError(t, err)
	second, err := s.Create("sess-1", testState("sess-1"), nil)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, status := s.Consume("sess-1", first)
	assert.Equal(t, ConsumeInvalid, status, "a replaced token must be useless")

	_, status = s.Consume("sess-1", second)
	assert.Equal(t, ConsumeOK, status)
}

func TestCreateCarriesReplacement(t *testing.T) {
	s := NewStore(slog.Default())

	alt := &agent.Alternative{
		OriginalName: "Crocin 650",
		Name:         "Dolo 650",
		Tier:         agent.TierHigh,
	}
	token, err := s.Create("sess-1", testState("sess-1"), alt)
	require.NoError(t, err)

	entry, status := s.Consume("sess-1", token)
	require.Equal(t, ConsumeOK, status)
	require.NotNil(t, entry.Replacement)
	assert.Equal(t, "Dolo 650", entry.Replacement.Name)
}

func TestCancelDropsEntry(t *testing.T) {
	s := NewStore(slog.Default())

	token, err := s.Create("sess-1", testState("sess-1"), nil)
	require.NoError(t, err)

	assert.True(t, s.Cancel("sess-1"))
	assert.False(t, s.Cancel("sess-1"))

	_, status := s.Consume("sess-1", token)
	assert.Equal(t, ConsumeExpired, status)
}

func TestConcurrentConsumeHasOneWinner(t *testing.T) {
	s := NewStore(slog.Default())

	token, err := s.Create("sess-1", testState("sess-1"), nil)
	require.NoError(t, err)

	const racers = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, status := s.Consume("sess-1", token); status == ConsumeOK {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent claim may win")
}

func TestSweepReapsExpiredEntries(t *testing.T) {
	now := time.Now()
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	s := NewStore(slog.Default(), WithTTL(time.Minute), WithClock(clock))

	_, err := s.Create("sess-1", testState("sess-1"), nil)
	require.NoError(t, err)
	_, err = s.Create("sess-2", testState("sess-2"), nil)
	require.NoError(t, err)

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()
	s.sweep()

	assert.False(t, s.IsPending("sess-1"))
	assert.False(t, s.IsPending("sess-2"))
}
