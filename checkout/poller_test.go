package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/socialcoffee/ordering-api/cart"
)

// scriptedStatus serves a fixed sequence of answers, repeating the last one.
type scriptedStatus struct {
	mu    sync.Mutex
	seq   []Status
	errs  []error
	calls int
}

func (s *scriptedStatus) fetch(ctx context.Context, orderID uint) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i >= len(s.seq) {
		i = len(s.seq) - 1
	}
	return s.seq[i], nil
}

func (s *scriptedStatus) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestPoller(fetch StatusFunc, store *cart.Store) *Poller {
	return NewPollerWithIntervals(fetch, store, 10*time.Millisecond, 10*time.Millisecond, zap.NewNop())
}

func TestPollerStopsOnPaidAndClearsCart(t *testing.T) {
	script := &scriptedStatus{seq: []Status{StatusPending, StatusPending, StatusPaid}}
	store := cart.NewStore(cart.NewMemoryStorage(), zap.NewNop())
	store.AddItem(cart.ProductSnapshot{ID: 1, BasePrice: 1500}, 1, nil)

	p := newTestPoller(script.fetch, store)
	outcome := p.Run(context.Background(), 42)

	assert.Equal(t, OutcomePaid, outcome)
	assert.Equal(t, 3, script.callCount())
	assert.Empty(t, store.Items())
}

func TestPollerCompletedCountsAsPaid(t *testing.T) {
	script := &scriptedStatus{seq: []Status{StatusCompleted}}
	store := cart.NewStore(cart.NewMemoryStorage(), zap.NewNop())

	outcome := newTestPoller(script.fetch, store).Run(context.Background(), 1)
	assert.Equal(t, OutcomePaid, outcome)
}

func TestPollerCancelledOrderFailsWithoutClearingCart(t *testing.T) {
	script := &scriptedStatus{seq: []Status{StatusPending, StatusCancelled}}
	store := cart.NewStore(cart.NewMemoryStorage(), zap.NewNop())
	store.AddItem(cart.ProductSnapshot{ID: 1, BasePrice: 1500}, 1, nil)

	outcome := newTestPoller(script.fetch, store).Run(context.Background(), 7)

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Len(t, store.Items(), 1)
}

func TestPollerKeepsGoingThroughFetchErrors(t *testing.T) {
	script := &scriptedStatus{
		seq:  []Status{StatusPending, StatusPending, StatusPaid},
		errs: []error{nil, errors.New("timeout")},
	}
	store := cart.NewStore(cart.NewMemoryStorage(), zap.NewNop())

	outcome := newTestPoller(script.fetch, store).Run(context.Background(), 9)
	assert.Equal(t, OutcomePaid, outcome)
}

func TestPollerContextCancellationStopsRun(t *testing.T) {
	script := &scriptedStatus{seq: []Status{StatusPending}}
	store := cart.NewStore(cart.NewMemoryStorage(), zap.NewNop())
	store.AddItem(cart.ProductSnapshot{ID: 1, BasePrice: 1500}, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Outcome, 1)
	go func() {
		done <- newTestPoller(script.fetch, store).Run(ctx, 5)
	}()

	require.Eventually(t, func() bool { return script.callCount() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case outcome := <-done:
		assert.Equal(t, OutcomeCancelledByCaller, outcome)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
	assert.Len(t, store.Items(), 1)
}
