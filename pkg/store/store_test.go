package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogya-labs/aushadhi/ent/order"
	"github.com/arogya-labs/aushadhi/ent/orderline"
	"github.com/arogya-labs/aushadhi/pkg/store"
	testdb "github.com/arogya-labs/aushadhi/test/database"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	return store.New(client.Client)
}

func seedMedicine(t *testing.T, st *store.Store, in store.MedicineInput) {
	t.Helper()
	_, err := st.AddMedicine(context.Background(), in)
	require.NoError(t, err)
}

func TestGetMedicineExactMatch(t *testing.T) {
	st := newTestStore(t)
	seedMedicine(t, st, store.MedicineInput{Name: "Paracetamol 500mg", Category: "analgesic", Price: 20, Stock: 100})

	match, err := st.GetMedicine(context.Background(), "paracetamol 500MG")
	require.NoError(t, err)

	assert.Equal(t, "Paracetamol 500mg", match.Name)
	assert.Equal(t, store.MatchExact, match.MatchKind)
	assert.Equal(t, 1.0, match.Similarity)
}

func TestGetMedicineSubstringPrefersShortestName(t *testing.T) {
	st := newTestStore(t)
	seedMedicine(t, st, store.MedicineInput{Name: "Paracetamol 650mg Extended Release", Category: "analgesic", Price: 35, Stock: 50})
	seedMedicine(t, st, store.MedicineInput{Name: "Paracetamol 500mg", Category: "analgesic", Price: 20, Stock: 100})

	match, err := st.GetMedicine(context.Background(), "paracetamol")
	require.NoError(t, err)

	assert.Equal(t, "Paracetamol 500mg", match.Name)
	assert.Equal(t, store.MatchSubstring, match.MatchKind)
}

func TestGetMedicineFuzzyMatch(t *testing.T) {
	st := newTestStore(t)
	seedMedicine(t, st, store.MedicineInput{Name: "Cetirizine", Category: "antihistamine", Price: 15, Stock: 40})

	match, err := st.GetMedicine(context.Background(), "cetrizine")
	require.NoError(t, err)

	assert.Equal(t, "Cetirizine", match.Name)
	assert.Equal(t, store.MatchFuzzy, match.MatchKind)
	assert.GreaterOrEqual(t, match.Similarity, 0.70)
}

func TestGetMedicineNotFound(t *testing.T) {
	st := newTestStore(t)
	seedMedicine(t, st, store.MedicineInput{Name: "Cetirizine", Category: "antihistamine", Price: 15, Stock: 40})

	_, err := st.GetMedicine(context.Background(), "xylophone")
	assert.ErrorIs(t, err, store.ErrMedicineNotFound)

	_, err = st.GetMedicine(context.Background(), "   ")
	assert.ErrorIs(t, err, store.ErrMedicineNotFound)
}

func TestResolvePatientUpsert(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	p1, created, err := st.ResolvePatient(ctx, "+919876543210", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, p1.Pid)

	// Same phone resolves to the same patient and backfills the name.
	p2, created, err := st.ResolvePatient(ctx, "+919876543210", "Asha Rao")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, p1.Pid, p2.Pid)
	assert.Equal(t, "Asha Rao", p2.Name)

	// An existing name is never overwritten.
	p3, _, err := st.ResolvePatient(ctx, "+919876543210", "Someone Else")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", p3.Name)
}

func TestDecrementStockLockedAndBounded(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedMedicine(t, st, store.MedicineInput{Name: "Dolo 650", Category: "analgesic", Price: 30, Stock: 5})

	err := st.RunInTx(ctx, func(tx *store.Tx) error {
		m, err := tx.DecrementStock("Dolo 650", 3)
		require.NoError(t, err)
		assert.Equal(t, 2, m.Stock)
		return nil
	})
	require.NoError(t, err)

	// Over-decrement fails with OutOfStockError and rolls back.
	err = st.RunInTx(ctx, func(tx *store.Tx) error {
		_, err := tx.DecrementStock("Dolo 650", 10)
		return err
	})
	require.Error(t, err)
	assert.True(t, store.IsOutOfStock(err))
	assert.True(t, store.IsTransactionError(err))

	match, err := st.GetMedicine(ctx, "Dolo 650")
	require.NoError(t, err)
	assert.Equal(t, 2, match.Stock)
}

func TestConcurrentSelloutSingleWinner(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedMedicine(t, st, store.MedicineInput{Name: "Azithromycin 500mg", Category: "antibiotic", Price: 80, Stock: 1})

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = st.RunInTx(ctx, func(tx *store.Tx) error {
				_, err := tx.DecrementStock("Azithromycin 500mg", 1)
				return err
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.True(t, store.IsOutOfStock(err))
		}
	}
	assert.Equal(t, 1, winners)

	match, err := st.GetMedicine(ctx, "Azithromycin 500mg")
	require.NoError(t, err)
	assert.Equal(t, 0, match.Stock)
}

func TestCreateOrderWithLinesAndAudit(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedMedicine(t, st, store.MedicineInput{Name: "Paracetamol 500mg", Category: "analgesic", Price: 20.50, Stock: 100})

	var orderID string
	err := st.RunInTx(ctx, func(tx *store.Tx) error {
		if _, err := tx.DecrementStock("Paracetamol 500mg", 2); err != nil {
			return err
		}
		id, err := tx.CreateOrder("PAT-test1", []store.LineInput{
			{MedicineName: "Paracetamol 500mg", Dosage: "500mg", Quantity: 2, UnitPrice: 20.50},
		}, order.PharmacistDecisionApproved, order.StatusFulfilled, nil)
		if err != nil {
			return err
		}
		orderID = id
		return tx.AddAuditLog(id, "fulfillment_agent", "approved", "order placed", 1.0, nil)
	})
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	saved, err := st.Client().Order.Get(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "PAT-test1", saved.UserID)
	assert.Equal(t, order.StatusFulfilled, saved.Status)
	assert.InDelta(t, 41.00, saved.TotalAmount, 0.001)

	lines, err := st.Client().OrderLine.Query().
		Where(orderline.OrderID(orderID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCreateOrderRejectsEmptyAndInvalidLines(t *testing.T) {
	st := newTestStore(t)

	err := st.RunInTx(context.Background(), func(tx *store.Tx) error {
		_, err := tx.CreateOrder("PAT-x", nil, order.PharmacistDecisionApproved, order.StatusFulfilled, nil)
		return err
	})
	assert.Error(t, err)

	err = st.RunInTx(context.Background(), func(tx *store.Tx) error {
		_, err := tx.CreateOrder("PAT-x", []store.LineInput{
			{MedicineName: "Anything", Quantity: 0, UnitPrice: 10},
		}, order.PharmacistDecisionApproved, order.StatusFulfilled, nil)
		return err
	})
	assert.Error(t, err)
}

func TestTxCallbackPanicRollsBack(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	seedMedicine(t, st, store.MedicineInput{Name: "Ibuprofen 400mg", Category: "analgesic", Price: 25, Stock: 10})

	err := st.RunInTx(ctx, func(tx *store.Tx) error {
		if _, err := tx.DecrementStock("Ibuprofen 400mg", 5); err != nil {
			return err
		}
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")

	match, err := st.GetMedicine(ctx, "Ibuprofen 400mg")
	require.NoError(t, err)
	assert.Equal(t, 10, match.Stock)
}

func TestRecordRefillPredictionsUpsert(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.RecordRefillPredictions(ctx, "PAT-r1", []store.RefillInput{
		{MedicineName: "Metformin 500mg", Quantity: 60},
		{MedicineName: "Atorvastatin 10mg", Quantity: 10},
	})
	require.NoError(t, err)

	// A second fulfillment for the same medicine updates in place.
	err = st.RecordRefillPredictions(ctx, "PAT-r1", []store.RefillInput{
		{MedicineName: "Metformin 500mg", Quantity: 60},
	})
	require.NoError(t, err)

	due, err := st.DuePredictions(ctx, time.Now().AddDate(0, 0, 60), 10)
	require.NoError(t, err)
	require.Len(t, due, 2)

	// Quantity below the 30-day heuristic shortens the supply window.
	var shortWindow *store.RefillDue
	for _, d := range due {
		if d.MedicineName == "Atorvastatin 10mg" {
			shortWindow = d
		}
	}
	require.NotNil(t, shortWindow)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 10), shortWindow.PredictedAt, time.Hour)
}

func TestGenerateOrderIDUnique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := store.GenerateOrderID()
		assert.Regexp(t, `^ORD-\d+-[0-9a-f]{12}$`, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
