// internal/domain/catalog/store.go
package catalog

import (
	"fmt"
	"math"
	"sync"
)

// Store owns the catalog state: the raw product list, the active
// criteria and the derived filtered/sorted view. Every mutating
// operation recomputes the derived view before releasing the write
// lock, so readers always observe a consistent snapshot.
type Store struct {
	mu sync.RWMutex

	products    []Product
	filters     Filter
	sortKey     SortKey
	searchQuery string
	currentPage int
	pageSize    int

	filtered   []Product
	totalPages int
	facets     Facets
}

// NewStore constructs an empty catalog store. maxPrice seeds the upper
// bound of the default price-range criteria.
func NewStore(pageSize int, maxPrice float64) *Store {
	return &Store{
		products:    []Product{},
		filtered:    []Product{},
		filters:     DefaultFilter(maxPrice),
		sortKey:     SortNameAsc,
		currentPage: 1,
		pageSize:    pageSize,
		facets:      Facets{Categories: []string{}, Brands: []string{}},
	}
}

// DefaultFilter returns the unconstrained criteria
func DefaultFilter(maxPrice float64) Filter {
	return Filter{
		Categories:  []string{},
		Brands:      []string{},
		MinPrice:    0,
		MaxPrice:    maxPrice,
		MinRating:   0,
		InStockOnly: false,
	}
}

// LoadCatalog replaces the full product list and resets the derived
// view. Products are validated at ingestion: empty or duplicate IDs,
// negative or non-finite prices and ratings outside [0,5] are rejected
// and leave the store unchanged.
func (s *Store) LoadCatalog(products []Product) error {
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if p.ID == "" {
			return fmt.Errorf("invalid product: id cannot be empty")
		}
		if seen[p.ID] {
			return fmt.Errorf("invalid product %s: duplicate id", p.ID)
		}
		seen[p.ID] = true
		if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return fmt.Errorf("invalid product %s: price must be a non-negative finite number", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 || math.IsNaN(p.Rating) {
			return fmt.Errorf("invalid product %s: rating must be within [0,5]", p.ID)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]Product, len(products))
	copy(s.products, products)
	s.facets = CollectFacets(s.products)
	s.currentPage = 1
	s.recompute()
	return nil
}

// SetFilters merges the given partial criteria into the current ones
// and resets the page cursor to 1
func (s *Store) SetFilters(update FilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Categories != nil {
		s.filters.Categories = append([]string{}, (*update.Categories)...)
	}
	if update.Brands != nil {
		s.filters.Brands = append([]string{}, (*update.Brands)...)
	}
	if update.MinPrice != nil {
		s.filters.MinPrice = *update.MinPrice
	}
	if update.MaxPrice != nil {
		s.filters.MaxPrice = *update.MaxPrice
	}
	if update.MinRating != nil {
		s.filters.MinRating = *update.MinRating
	}
	if update.InStockOnly != nil {
		s.filters.InStockOnly = *update.InStockOnly
	}

	s.currentPage = 1
	s.recompute()
}

// ClearFilters resets the criteria to their defaults and resets the page cursor
func (s *Store) ClearFilters(maxPrice float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = DefaultFilter(maxPrice)
	s.currentPage = 1
	s.recompute()
}

// SetSortKey replaces the active sort key. The page cursor is kept.
func (s *Store) SetSortKey(key SortKey) error {
	if !ValidSortKey(key) {
		return fmt.Errorf("unknown sort key %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortKey = key
	s.recompute()
	return nil
}

// SetSearchQuery replaces the search string and resets the page cursor to 1
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = query
	s.currentPage = 1
	s.recompute()
}

// SetCurrentPage moves the page cursor. The cursor is stored as given
// and not clamped against the page count; reads of an out-of-range
// page yield an empty slice.
func (s *Store) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentPage = page
}

// Recompute rebuilds the derived view from the current raw catalog and
// criteria. Mutating operations already do this; calling it again is a
// deterministic no-op.
func (s *Store) Recompute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recompute()
}

// recompute must be called with the write lock held
func (s *Store) recompute() {
	s.filtered = ApplyFiltersAndSort(s.products, s.searchQuery, s.filters, s.sortKey)
	s.totalPages = TotalPages(len(s.filtered), s.pageSize)
}

// Snapshot returns the derived view for the given mode: the visible
// product slice plus the criteria and pagination state it was derived
// from.
func (s *Store) Snapshot(mode ViewMode) View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return View{
		Products:    SelectPage(s.filtered, s.currentPage, s.pageSize, mode),
		Filters:     s.copyFilters(),
		SortKey:     s.sortKey,
		SearchQuery: s.searchQuery,
		CurrentPage: s.currentPage,
		PageSize:    s.pageSize,
		TotalPages:  s.totalPages,
		TotalItems:  len(s.filtered),
	}
}

// FilteredProducts returns a copy of the whole filtered/sorted list
func (s *Store) FilteredProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// Product looks up a raw catalog entry by id
func (s *Store) Product(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Facets returns the distinct categories and brands of the raw catalog
func (s *Store) Facets() Facets {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Facets{
		Categories: append([]string{}, s.facets.Categories...),
		Brands:     append([]string{}, s.facets.Brands...),
	}
}

// PageWindow returns the visible page buttons for the current view
func (s *Store) PageWindow() []PageRef {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return VisiblePages(s.currentPage, s.totalPages)
}

func (s *Store) copyFilters() Filter {
	f := s.filters
	f.Categories = append([]string{}, s.filters.Categories...)
	f.Brands = append([]string{}, s.filters.Brands...)
	return f
}
