package bus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	b := New()

	var mu sync.Mutex
	var order []string
	b.Subscribe(KindOrderCreated, func(_ context.Context, _ Event) {
		mu.Lock()
		order = append(order, "first")
		mu.Unlock()
	})
	b.Subscribe(KindOrderCreated, func(_ context.Context, _ Event) {
		mu.Lock()
		order = append(order, "second")
		mu.Unlock()
	})

	b.Publish(context.Background(), OrderCreated{Meta: NewMeta(), OrderID: "ORD-1"})

	require.Equal(t, []string{"first", "second"}, order)
}

func TestPanickingHandlerDoesNotStopOthers(t *testing.T) {
	b := New()

	delivered := false
	b.Subscribe(KindOrderFailed, func(_ context.Context, _ Event) {
		panic("boom")
	})
	b.Subscribe(KindOrderFailed, func(_ context.Context, _ Event) {
		delivered = true
	})

	b.Publish(context.Background(), OrderFailed{Meta: NewMeta(), UserID: "u1", Error: "x"})

	assert.True(t, delivered, "second handler should run despite the first panicking")
	assert.Equal(t, uint64(1), b.Stats().HandlerErrors)
}

func TestSubscriptionsAreIndependent(t *testing.T) {
	b := New()

	count := 0
	handler := func(_ context.Context, _ Event) { count++ }
	first := b.Subscribe(KindOrderCreated, handler)
	second := b.Subscribe(KindOrderCreated, handler)
	assert.NotEqual(t, first, second)

	b.Publish(context.Background(), OrderCreated{Meta: NewMeta(), OrderID: "ORD-1"})
	assert.Equal(t, 2, count, "each registration gets its own delivery")

	b.Unsubscribe(KindOrderCreated, first)
	b.Publish(context.Background(), OrderCreated{Meta: NewMeta(), OrderID: "ORD-1"})
	assert.Equal(t, 3, count)
}

func TestClosuresFromOneLiteralAllRegister(t *testing.T) {
	b := New()

	var mu sync.Mutex
	seen := 0
	for i := 0; i < 3; i++ {
		b.Subscribe(KindOrderCreated, func(_ context.Context, _ Event) {
			mu.Lock()
			seen++
			mu.Unlock()
		})
	}

	b.Publish(context.Background(), OrderCreated{Meta: NewMeta(), OrderID: "ORD-1"})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, seen, "loop closures share code but are distinct subscribers")
}

func TestPublishAsyncWaitsForHandlers(t *testing.T) {
	b := New()

	var mu sync.Mutex
	seen := 0
	for i := 0; i < 3; i++ {
		i := i
		b.Subscribe(KindOrderRejected, func(_ context.Context, _ Event) {
			time.Sleep(time.Duration(i) * time.Millisecond)
			mu.Lock()
			seen++
			mu.Unlock()
		})
	}

	b.PublishAsync(context.Background(), OrderRejected{Meta: NewMeta(), UserID: "u1"})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, seen)
}

func TestHistoryIsBoundedAndFiltered(t *testing.T) {
	b := NewWithHistory(5)

	for i := 0; i < 10; i++ {
		b.Publish(context.Background(), OrderCreated{Meta: NewMeta(), OrderID: "ORD-created"})
	}
	b.Publish(context.Background(), OrderFailed{Meta: NewMeta(), UserID: "u1", Error: "x"})

	created := b.History(KindOrderCreated, 100)
	assert.LessOrEqual(t, len(created), 5)
	for _, evt := range created {
		assert.Equal(t, KindOrderCreated, evt.Kind())
	}

	failed := b.History(KindOrderFailed, 100)
	require.Len(t, failed, 1)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()

	count := 0
	sub := b.Subscribe(KindPatientIdentified, func(_ context.Context, _ Event) { count++ })
	b.Publish(context.Background(), PatientIdentified{Meta: NewMeta(), PID: "PAT-1"})
	b.Unsubscribe(KindPatientIdentified, sub)
	b.Publish(context.Background(), PatientIdentified{Meta: NewMeta(), PID: "PAT-1"})

	assert.Equal(t, 1, count)
}
