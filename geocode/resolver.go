package geocode

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	forwardDebounce = 800 * time.Millisecond
	reverseDebounce = 600 * time.Millisecond
)

// Geocoder is the provider surface the resolver needs; satisfied by *Client.
type Geocoder interface {
	Forward(ctx context.Context, query string) (Point, error)
	Reverse(ctx context.Context, p Point) (string, error)
}

// Callbacks notify the embedding UI of resolver-driven changes.
type Callbacks struct {
	// OnRecenter fires when a forward geocode moved the map cursor.
	OnRecenter func(Point)
	// OnAddress fires when a reverse geocode overwrote the address text.
	OnAddress func(string)
}

// Resolver keeps a free-text address and a map cursor position mutually
// consistent without flooding the geocoding provider. Edits are debounced,
// and a newly issued lookup cancels any in-flight lookup of the same kind so
// only the most recent response can mutate state. Lookup failures are logged
// and swallowed: address resolution is an assist, never a requirement.
type Resolver struct {
	geocoder  Geocoder
	callbacks Callbacks
	log       *zap.Logger

	forwardDelay time.Duration
	reverseDelay time.Duration

	mu        sync.Mutex
	closed    bool
	address   string
	cursor    Point
	hasCursor bool

	// lastResolved marks an address string as already geocoded so unrelated
	// re-renders don't re-trigger a lookup for the same text.
	lastResolved   string
	lastReverseKey string

	forwardTimer  *time.Timer
	reverseTimer  *time.Timer
	forwardCancel context.CancelFunc
	reverseCancel context.CancelFunc
}

func NewResolver(geocoder Geocoder, callbacks Callbacks, log *zap.Logger) *Resolver {
	return &Resolver{
		geocoder:     geocoder,
		callbacks:    callbacks,
		log:          log,
		forwardDelay: forwardDebounce,
		reverseDelay: reverseDebounce,
	}
}

// NewResolverWithDebounce overrides the debounce intervals; used by tests.
func NewResolverWithDebounce(geocoder Geocoder, callbacks Callbacks, forward, reverse time.Duration, log *zap.Logger) *Resolver {
	r := NewResolver(geocoder, callbacks, log)
	r.forwardDelay = forward
	r.reverseDelay = reverse
	return r
}

// SetAddress records a user edit to the address text. Once the text has been
// stable for the debounce interval it is forward-geocoded, unless it is too
// short or already resolved.
func (r *Resolver) SetAddress(text string) {
	trimmed := strings.TrimSpace(text)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.address = trimmed

	if r.forwardTimer != nil {
		r.forwardTimer.Stop()
		r.forwardTimer = nil
	}
	if len([]rune(trimmed)) < 3 || trimmed == r.lastResolved {
		return
	}
	r.forwardTimer = time.AfterFunc(r.forwardDelay, func() {
		r.forwardLookup(trimmed)
	})
}

// SetCursor records a cursor move from a map drag or click.
func (r *Resolver) SetCursor(p Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.cursorChangedLocked(p)
}

// Address returns the current address text.
func (r *Resolver) Address() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.address
}

// Cursor returns the current cursor position, if one has been set.
func (r *Resolver) Cursor() (Point, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor, r.hasCursor
}

// Close stops pending timers and aborts in-flight lookups. No callback may
// mutate state after Close returns.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	if r.forwardTimer != nil {
		r.forwardTimer.Stop()
		r.forwardTimer = nil
	}
	if r.reverseTimer != nil {
		r.reverseTimer.Stop()
		r.reverseTimer = nil
	}
	if r.forwardCancel != nil {
		r.forwardCancel()
		r.forwardCancel = nil
	}
	if r.reverseCancel != nil {
		r.reverseCancel()
		r.reverseCancel = nil
	}
}

func (r *Resolver) forwardLookup(query string) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if r.forwardCancel != nil {
		r.forwardCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.forwardCancel = cancel
	r.mu.Unlock()

	point, err := r.geocoder.Forward(ctx, query)

	r.mu.Lock()
	if r.closed || ctx.Err() != nil {
		r.mu.Unlock()
		return
	}
	if err != nil {
		r.log.Warn("forward geocode failed", zap.String("query", query), zap.Error(err))
		r.mu.Unlock()
		return
	}

	r.lastResolved = query
	r.cursorChangedLocked(point)
	onRecenter := r.callbacks.OnRecenter
	r.mu.Unlock()

	if onRecenter != nil {
		onRecenter(point)
	}
}

// cursorChangedLocked updates the cursor and arms the reverse-geocode
// debounce. Coordinates are keyed at 5 decimals so jitter below ~1m does not
// retrigger lookups.
func (r *Resolver) cursorChangedLocked(p Point) {
	r.cursor = p
	r.hasCursor = true

	key := fmt.Sprintf("%.5f,%.5f", p.Lat, p.Lon)
	if key == r.lastReverseKey {
		return
	}
	if r.reverseTimer != nil {
		r.reverseTimer.Stop()
	}
	r.reverseTimer = time.AfterFunc(r.reverseDelay, func() {
		r.reverseLookup(p, key)
	})
}

func (r *Resolver) reverseLookup(p Point, key string) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if r.reverseCancel != nil {
		r.reverseCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.reverseCancel = cancel
	r.mu.Unlock()

	resolved, err := r.geocoder.Reverse(ctx, p)

	r.mu.Lock()
	if r.closed || ctx.Err() != nil {
		r.mu.Unlock()
		return
	}
	if err != nil {
		r.log.Warn("reverse geocode failed", zap.Float64("lat", p.Lat), zap.Float64("lon", p.Lon), zap.Error(err))
		r.mu.Unlock()
		return
	}

	r.lastReverseKey = key
	if resolved == "" || resolved == r.address {
		r.mu.Unlock()
		return
	}

	// Overwrite the text field and mark the new value pre-resolved so the
	// forward debounce does not fire for it.
	r.address = resolved
	r.lastResolved = resolved
	onAddress := r.callbacks.OnAddress
	r.mu.Unlock()

	if onAddress != nil {
		onAddress(resolved)
	}
}
