package checkout

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/socialcoffee/ordering-api/cart"
)

// Validation errors, reported before any network side effect happens.
var (
	ErrEmptyCart      = errors.New("checkout: cart is empty")
	ErrMissingContact = errors.New("checkout: name and phone are required")
	ErrMissingAddress = errors.New("checkout: delivery address is required")
	ErrMissingPickup  = errors.New("checkout: pickup location is required")
	ErrInactivePickup = errors.New("checkout: pickup location is not active")
	ErrSubmitInFlight = errors.New("checkout: submission already in progress")
)

// Result is what a successful submission yields. The WhatsApp strategy
// creates no backend order, so OrderID stays zero there.
type Result struct {
	OrderID     uint
	PaymentURL  string
	QRToken     string
	TotalAmount float64
	// Terminal marks the submission as fully settled, letting the cart be
	// cleared right away. The payment path stays non-terminal: its order is
	// only settled once the Poller sees it paid, and a cancelled payment
	// must leave the cart intact for retry.
	Terminal bool
}

// Submitter is one of the two deployment-configurable submission strategies:
// backend order creation or external message handoff.
type Submitter interface {
	Submit(ctx context.Context, draft Draft, items []cart.LineItem, total float64) (*Result, error)
}

// Orchestrator validates a draft against the current cart and hands it to
// the configured submitter. Exactly one submission may be outstanding at a
// time; duplicate triggers are rejected until it resolves.
type Orchestrator struct {
	cart      *cart.Store
	submitter Submitter
	log       *zap.Logger
	inFlight  atomic.Bool
}

func NewOrchestrator(store *cart.Store, submitter Submitter, log *zap.Logger) *Orchestrator {
	return &Orchestrator{cart: store, submitter: submitter, log: log}
}

// Submit validates and submits the draft. A terminal success clears the
// cart; a non-terminal one leaves it to the Poller, which clears only on a
// paid order. On failure cart and draft stay intact so the user can retry
// without re-entering anything.
func (o *Orchestrator) Submit(ctx context.Context, draft Draft) (*Result, error) {
	items := o.cart.Items()
	if err := validate(draft, items); err != nil {
		return nil, err
	}

	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer o.inFlight.Store(false)

	draft.ClientName = strings.TrimSpace(draft.ClientName)
	draft.ClientPhone = digitsOnly(draft.ClientPhone)
	draft.Comment = strings.TrimSpace(draft.Comment)

	result, err := o.submitter.Submit(ctx, draft, items, o.cart.TotalAmount())
	if err != nil {
		o.log.Warn("order submission failed", zap.Error(err))
		return nil, err
	}

	if result.Terminal {
		o.cart.Clear()
	}
	return result, nil
}

func validate(draft Draft, items []cart.LineItem) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	if strings.TrimSpace(draft.ClientName) == "" || digitsOnly(draft.ClientPhone) == "" {
		return ErrMissingContact
	}

	switch draft.Mode {
	case ModeDelivery:
		if draft.Delivery == nil || strings.TrimSpace(draft.Delivery.Address) == "" {
			return ErrMissingAddress
		}
	case ModePickup:
		if draft.Pickup == nil {
			return ErrMissingPickup
		}
		if !draft.Pickup.IsActive {
			return ErrInactivePickup
		}
	default:
		return ErrMissingAddress
	}
	return nil
}
