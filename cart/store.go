package cart

import (
	"sync"

	"go.uber.org/zap"
)

// ProductSnapshot is the slice of a product a cart line keeps by value, so
// the cart stays valid even if the admin later edits or deletes the product.
type ProductSnapshot struct {
	ID        uint    `json:"id"`
	NameRus   string  `json:"name_rus"`
	NameKaz   string  `json:"name_kaz"`
	BasePrice float64 `json:"base_price"`
	ImageURL  string  `json:"image_url"`
}

// SelectedOption snapshots a chosen option by name and price delta,
// decoupled from the live Option entity.
type SelectedOption struct {
	OptionGroupName string  `json:"option_group_name"`
	OptionName      string  `json:"option_name"`
	OptionPrice     float64 `json:"option_price"`
}

type LineItem struct {
	Product         ProductSnapshot  `json:"product"`
	Quantity        int              `json:"quantity"`
	SelectedOptions []SelectedOption `json:"selected_options"`
	TotalPrice      float64          `json:"total_price"`
}

// Storage persists cart contents across sessions. Saving is fire-and-forget:
// a failed write is logged, never surfaced, and the next mutation retries.
type Storage interface {
	Load() ([]LineItem, error)
	Save(items []LineItem) error
}

// Store is the ordered collection of cart lines. Adding the same product and
// option combination twice produces two independent lines on purpose.
type Store struct {
	mu      sync.Mutex
	items   []LineItem
	storage Storage
	log     *zap.Logger
}

// NewStore builds a store seeded from persisted state. A load failure starts
// the cart empty rather than failing the caller.
func NewStore(storage Storage, log *zap.Logger) *Store {
	s := &Store{storage: storage, log: log}
	items, err := storage.Load()
	if err != nil {
		log.Warn("failed to load persisted cart, starting empty", zap.Error(err))
		return s
	}
	s.items = items
	return s
}

// AddItem appends a new line with its total computed from the snapshot.
func (s *Store) AddItem(product ProductSnapshot, quantity int, selectedOptions []SelectedOption) {
	if quantity < 1 {
		quantity = 1
	}

	opts := make([]SelectedOption, len(selectedOptions))
	copy(opts, selectedOptions)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, LineItem{
		Product:         product,
		Quantity:        quantity,
		SelectedOptions: opts,
		TotalPrice:      LineTotal(product.BasePrice, optionPrices(opts), quantity),
	})
	s.persist()
}

// RemoveItem drops the line at the given position; out-of-range indices are
// a silent no-op.
func (s *Store) RemoveItem(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.persist()
}

// UpdateQuantity sets a line's quantity, clamped to a minimum of 1, and
// recomputes its total so it is never stale.
func (s *Store) UpdateQuantity(index, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return
	}
	item := &s.items[index]
	item.Quantity = quantity
	item.TotalPrice = LineTotal(item.Product.BasePrice, optionPrices(item.SelectedOptions), quantity)
	s.persist()
}

// Clear empties the cart; used after a successful order submission.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the current lines in order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalAmount is the sum of line totals, recomputed on demand.
func (s *Store) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.TotalPrice
	}
	return total
}

// TotalItems is the sum of line quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) persist() {
	if err := s.storage.Save(s.items); err != nil {
		s.log.Warn("failed to persist cart", zap.Error(err))
	}
}

func optionPrices(opts []SelectedOption) []float64 {
	prices := make([]float64, len(opts))
	for i, opt := range opts {
		prices[i] = opt.OptionPrice
	}
	return prices
}
