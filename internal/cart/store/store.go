package store

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ridloal/agri-storefront/internal/cart/domain"
	catalog "github.com/ridloal/agri-storefront/internal/catalog/domain"
)

// Listener is called synchronously after every state change.
type Listener func(domain.Snapshot)

// Store holds one shopper's cart. Items keep insertion order and there is at
// most one line per product id.
type Store struct {
	mu       sync.Mutex
	currency string
	items    []domain.CartItem
	index    map[int]int // product id -> position in items
	version  uint64

	totalVersion uint64
	totalAmount  decimal.Decimal
	totalValid   bool

	listeners map[uint64]Listener
	nextID    uint64
}

// New returns an empty cart. currency is used to format the total, including
// the total of an empty cart.
func New(currency string) *Store {
	return &Store{
		currency:  currency,
		index:     make(map[int]int),
		listeners: make(map[uint64]Listener),
	}
}

// AddToCart inserts p with quantity 1, or increments the quantity of the
// existing line, and returns the cart as it stood right after this change.
func (s *Store) AddToCart(p catalog.Product) domain.Snapshot {
	s.mu.Lock()
	if pos, ok := s.index[p.ID]; ok {
		s.items[pos].Quantity++
	} else {
		s.index[p.ID] = len(s.items)
		s.items = append(s.items, domain.CartItem{Product: p, Quantity: 1})
	}
	s.version++
	snap, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	return snap
}

// RemoveFromCart deletes the whole line for productID. Removing an absent id
// changes nothing and notifies nobody; the current cart is returned either way.
func (s *Store) RemoveFromCart(productID int) domain.Snapshot {
	s.mu.Lock()
	pos, ok := s.index[productID]
	if !ok {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, productID)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	s.version++
	snap, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	return snap
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItemsLocked()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) TotalAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// Total is the display form of TotalAmount, e.g. "$798".
func (s *Store) Total() string {
	return catalog.FormatPrice(s.TotalAmount(), s.currency)
}

// Currency is fixed at construction and used for every total.
func (s *Store) Currency() string {
	return s.currency
}

func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers l for future changes and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// totalLocked recomputes the sum only when the version moved since the last call.
func (s *Store) totalLocked() decimal.Decimal {
	if s.totalValid && s.totalVersion == s.version {
		return s.totalAmount
	}
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	s.totalAmount, s.totalVersion, s.totalValid = total, s.version, true
	return total
}

func (s *Store) snapshotLocked() domain.Snapshot {
	total := s.totalLocked()
	units := 0
	for _, item := range s.items {
		units += item.Quantity
	}
	return domain.Snapshot{
		Items:       s.copyItemsLocked(),
		Total:       catalog.FormatPrice(total, s.currency),
		TotalAmount: total,
		Currency:    s.currency,
		Count:       len(s.items),
		Units:       units,
		Version:     s.version,
	}
}

func (s *Store) copyItemsLocked() []domain.CartItem {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) listenersLocked() []Listener {
	if len(s.listeners) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	return listeners
}

func notify(listeners []Listener, snap domain.Snapshot) {
	for _, l := range listeners {
		l(snap)
	}
}
