// internal/domain/cart/store.go
package cart

import (
	"sync"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// Store owns the line items and derived totals of a single cart. The
// total is recomputed as a full fold after every structural mutation,
// never patched incrementally.
type Store struct {
	mu     sync.RWMutex
	items  []Item
	totals Totals
	isOpen bool
}

// NewStore constructs an empty cart
func NewStore() *Store {
	return &Store{items: []Item{}}
}

// AddItem adds one unit of the product. An existing line item for the
// same product id is incremented instead of duplicated.
func (s *Store) AddItem(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			s.recalculate()
			return
		}
	}

	s.items = append(s.items, Item{Product: product, Quantity: 1})
	s.recalculate()
}

// RemoveItem deletes the line item for the given product id. Absent
// ids are a no-op, not an error.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	s.recalculate()
}

// SetQuantity sets the quantity for an existing line item. A quantity
// of zero or less removes the line item entirely. Absent ids are a
// no-op.
func (s *Store) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			if quantity <= 0 {
				s.removeLocked(productID)
			} else {
				s.items[i].Quantity = quantity
			}
			s.recalculate()
			return
		}
	}
}

// Clear empties the cart
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []Item{}
	s.recalculate()
}

// SetOpen sets the drawer-visibility flag
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isOpen = open
}

// ToggleOpen flips the drawer-visibility flag and returns the new value
func (s *Store) ToggleOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isOpen = !s.isOpen
	return s.isOpen
}

// ItemCount returns the summed quantity across all line items
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.totals.TotalQuantity
}

// Snapshot returns a copy of the cart state
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)

	return Snapshot{
		Items:  items,
		Totals: s.totals,
		IsOpen: s.isOpen,
	}
}

// removeLocked must be called with the write lock held
func (s *Store) removeLocked(productID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// recalculate folds the totals from scratch; must be called with the
// write lock held after every structural mutation.
func (s *Store) recalculate() {
	totals := Totals{ItemCount: len(s.items)}
	for _, item := range s.items {
		totals.TotalQuantity += item.Quantity
		totals.Total += item.Product.Price * float64(item.Quantity)
	}
	s.totals = totals
}
