package geocode

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGeocoder records calls and serves canned answers.
type fakeGeocoder struct {
	mu           sync.Mutex
	forwardCalls []string
	reverseCalls []Point
	forwardPoint Point
	forwardErr   error
	reverseAddr  string
	reverseErr   error
}

func (f *fakeGeocoder) Forward(ctx context.Context, query string) (Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forwardCalls = append(f.forwardCalls, query)
	return f.forwardPoint, f.forwardErr
}

func (f *fakeGeocoder) Reverse(ctx context.Context, p Point) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reverseCalls = append(f.reverseCalls, p)
	return f.reverseAddr, f.reverseErr
}

func (f *fakeGeocoder) forwardCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.forwardCalls)
}

func (f *fakeGeocoder) reverseCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reverseCalls)
}

func newTestResolver(g Geocoder, cb Callbacks) *Resolver {
	return NewResolverWithDebounce(g, cb, 30*time.Millisecond, 30*time.Millisecond, zap.NewNop())
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func TestTypingIsCoalescedIntoOneForwardLookup(t *testing.T) {
	fake := &fakeGeocoder{forwardPoint: Point{Lat: 43.238, Lon: 76.945}}
	r := newTestResolver(fake, Callbacks{})
	defer r.Close()

	for _, text := range []string{"ул", "ул.", "ул. Аб", "ул. Абая", "ул. Абая 10"} {
		r.SetAddress(text)
		time.Sleep(3 * time.Millisecond)
	}

	waitFor(t, func() bool { return fake.forwardCount() == 1 })
	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, []string{"ул. Абая 10"}, fake.forwardCalls)
}

func TestShortQueryNeverGeocodes(t *testing.T) {
	fake := &fakeGeocoder{}
	r := newTestResolver(fake, Callbacks{})
	defer r.Close()

	r.SetAddress("ул")
	time.Sleep(100 * time.Millisecond)

	assert.Zero(t, fake.forwardCount())
}

func TestForwardSuccessRecentersCursor(t *testing.T) {
	want := Point{Lat: 51.089, Lon: 71.416}
	fake := &fakeGeocoder{forwardPoint: want}

	var mu sync.Mutex
	var recentered []Point
	r := newTestResolver(fake, Callbacks{
		OnRecenter: func(p Point) {
			mu.Lock()
			recentered = append(recentered, p)
			mu.Unlock()
		},
	})
	defer r.Close()

	r.SetAddress("Astana, Kabanbai Batyr 43")

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(recentered) == 1
	})
	mu.Lock()
	assert.Equal(t, want, recentered[0])
	mu.Unlock()

	cursor, ok := r.Cursor()
	require.True(t, ok)
	assert.Equal(t, want, cursor)
}

func TestReverseOverwriteDoesNotRetriggerForward(t *testing.T) {
	fake := &fakeGeocoder{
		forwardPoint: Point{Lat: 51.089, Lon: 71.416},
		reverseAddr:  "проспект Кабанбай Батыра, 43",
	}
	r := newTestResolver(fake, Callbacks{})
	defer r.Close()

	r.SetAddress("Astana, Kabanbai Batyr 43")

	// Forward resolves, moves the cursor, and the reverse pass overwrites
	// the text with the canonical address.
	waitFor(t, func() bool { return r.Address() == "проспект Кабанбай Батыра, 43" })
	waitFor(t, func() bool { return fake.reverseCount() == 1 })

	// The overwritten text is marked resolved, so no second forward lookup
	// may fire for it.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, fake.forwardCount())
}

func TestCursorJitterBelowKeyPrecisionIsIgnored(t *testing.T) {
	fake := &fakeGeocoder{reverseAddr: "ул. Абая, 10"}
	r := newTestResolver(fake, Callbacks{})
	defer r.Close()

	r.SetCursor(Point{Lat: 43.238120, Lon: 76.945130})
	waitFor(t, func() bool { return fake.reverseCount() == 1 })

	// Same position at 5-decimal precision: no new lookup.
	r.SetCursor(Point{Lat: 43.238121, Lon: 76.945131})
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, fake.reverseCount())

	// A real move does trigger one.
	r.SetCursor(Point{Lat: 43.24000, Lon: 76.95000})
	waitFor(t, func() bool { return fake.reverseCount() == 2 })

	// The reverse-resolved text never triggers a forward lookup of itself.
	assert.Equal(t, "ул. Абая, 10", r.Address())
	assert.Zero(t, fake.forwardCount())
}

func TestCloseStopsPendingLookups(t *testing.T) {
	fake := &fakeGeocoder{forwardPoint: Point{Lat: 1, Lon: 2}}
	r := newTestResolver(fake, Callbacks{})

	r.SetAddress("ул. Абая 10")
	r.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, fake.forwardCount())

	// Calls after Close are ignored entirely.
	r.SetAddress("ул. Достык 5")
	r.SetCursor(Point{Lat: 3, Lon: 4})
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, fake.forwardCount())
	assert.Zero(t, fake.reverseCount())
}
