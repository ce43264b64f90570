package checkout

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/socialcoffee/ordering-api/cart"
)

// Status is the payment state reported by the order status endpoint.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

const (
	pollInterval = 3 * time.Second
	// successDelay keeps the success state visible before the cart is
	// cleared and the checkout closes.
	successDelay = 2 * time.Second
)

// StatusFunc fetches the current status of an order.
type StatusFunc func(ctx context.Context, orderID uint) (Status, error)

// Outcome is the terminal state a polling run ended in.
type Outcome int

const (
	OutcomeCancelledByCaller Outcome = iota // context cancelled before a terminal status
	OutcomePaid                             // payment confirmed, cart cleared
	OutcomeFailed                           // order cancelled; caller may re-run order creation
)

// Poller watches an order's payment status after creation: it re-queries on
// a fixed interval until the order is paid or cancelled. A paid outcome
// clears the cart after the success-display delay. Cancelling the context
// stops polling from any state; no timers outlive Run.
type Poller struct {
	fetch        StatusFunc
	cart         *cart.Store
	log          *zap.Logger
	interval     time.Duration
	successDelay time.Duration
}

func NewPoller(fetch StatusFunc, store *cart.Store, log *zap.Logger) *Poller {
	return &Poller{
		fetch:        fetch,
		cart:         store,
		log:          log,
		interval:     pollInterval,
		successDelay: successDelay,
	}
}

// NewPollerWithIntervals overrides the timing constants; used by tests.
func NewPollerWithIntervals(fetch StatusFunc, store *cart.Store, interval, delay time.Duration, log *zap.Logger) *Poller {
	p := NewPoller(fetch, store, log)
	p.interval = interval
	p.successDelay = delay
	return p
}

// Run blocks until the order reaches a terminal state or ctx is cancelled.
// Fetch errors are logged and polling simply continues on the next tick.
func (p *Poller) Run(ctx context.Context, orderID uint) Outcome {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return OutcomeCancelledByCaller
		case <-ticker.C:
		}

		status, err := p.fetch(ctx, orderID)
		if err != nil {
			if ctx.Err() != nil {
				return OutcomeCancelledByCaller
			}
			p.log.Warn("order status check failed", zap.Uint("order_id", orderID), zap.Error(err))
			continue
		}

		switch status {
		case StatusPaid, StatusCompleted:
			select {
			case <-ctx.Done():
				return OutcomeCancelledByCaller
			case <-time.After(p.successDelay):
			}
			p.cart.Clear()
			return OutcomePaid
		case StatusCancelled:
			return OutcomeFailed
		}
	}
}
