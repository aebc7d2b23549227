package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_EmitDeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)

	var received BalanceChangeEvent
	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		received = event.(BalanceChangeEvent)
		wg.Done()
	})

	bus.Emit(context.Background(), BalanceChangeEvent{
		UserID:       "user-1",
		OldBalance:   100,
		NewBalance:   150,
		ChangeAmount: 50,
		Reason:       "daily",
	})

	wg.Wait()
	assert.Equal(t, "user-1", received.UserID)
	assert.Equal(t, int64(50), received.ChangeAmount)
	assert.Equal(t, "daily", received.Reason)
}

func TestBus_EmitIgnoresOtherEventTypes(t *testing.T) {
	bus := NewBus()

	called := make(chan struct{}, 1)
	bus.Subscribe(EventTypeAccountCreated, func(ctx context.Context, event Event) {
		called <- struct{}{}
	})

	bus.Emit(context.Background(), BalanceChangeEvent{UserID: "user-1"})

	select {
	case <-called:
		t.Fatal("handler for a different event type should not fire")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_HandlerPanicDoesNotPropagate(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(EventTypeAccountCreated, func(ctx context.Context, event Event) {
		defer wg.Done()
		panic("boom")
	})

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), AccountCreatedEvent{UserID: "user-1", InitialBalance: 100})
		wg.Wait()
	})
}
