package subscriber

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogya-labs/aushadhi/pkg/bus"
	"github.com/arogya-labs/aushadhi/pkg/store"
	testdb "github.com/arogya-labs/aushadhi/test/database"
)

func TestRefillPredictorRecordsOnOrderCreated(t *testing.T) {
	client := testdb.NewTestClient(t)
	st := store.New(client.Client)
	eb := bus.New()
	NewRefillPredictor(st, slog.Default()).Register(eb)

	eb.Publish(context.Background(), bus.OrderCreated{
		Meta:    bus.NewMeta(),
		OrderID: "ORD-1-aaa",
		UserID:  "PAT-sub1",
		Items: []bus.OrderItem{
			{MedicineName: "Metformin 500mg", Quantity: 60},
		},
	})

	due, err := st.DuePredictions(context.Background(), time.Now().AddDate(0, 0, 45), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "PAT-sub1", due[0].UserID)
	assert.Equal(t, "Metformin 500mg", due[0].MedicineName)
}

func TestRefillPredictorIgnoresOtherEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	st := store.New(client.Client)
	eb := bus.New()
	NewRefillPredictor(st, slog.Default()).Register(eb)

	eb.Publish(context.Background(), bus.OrderFailed{
		Meta:   bus.NewMeta(),
		UserID: "PAT-sub2",
		Error:  "out of stock",
	})

	due, err := st.DuePredictions(context.Background(), time.Now().AddDate(0, 1, 0), 10)
	require.NoError(t, err)
	assert.Empty(t, due)
}
