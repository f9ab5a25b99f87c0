// internal/domain/catalog/entity.go
package catalog

// Product represents an immutable catalog entry
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"` // pre-discount price, 0 when not discounted
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	InStock       bool     `json:"in_stock"`
	Tags          []string `json:"tags,omitempty"`
}

// DiscountPercentage returns the discount relative to the original price, 0 when not discounted
func (p *Product) DiscountPercentage() int {
	if p.OriginalPrice > 0 && p.Price < p.OriginalPrice {
		return int((p.OriginalPrice - p.Price) * 100 / p.OriginalPrice)
	}
	return 0
}

// Filter holds the active filter criteria for the catalog view.
// Empty category/brand sets mean no constraint; MinRating 0 means no constraint.
type Filter struct {
	Categories  []string `json:"categories"`
	Brands      []string `json:"brands"`
	MinPrice    float64  `json:"min_price"`
	MaxPrice    float64  `json:"max_price"`
	MinRating   float64  `json:"min_rating"`
	InStockOnly bool     `json:"in_stock_only"`
}

// FilterUpdate carries a partial criteria change; nil fields are left unchanged
type FilterUpdate struct {
	Categories  *[]string `json:"categories"`
	Brands      *[]string `json:"brands"`
	MinPrice    *float64  `json:"min_price"`
	MaxPrice    *float64  `json:"max_price"`
	MinRating   *float64  `json:"min_rating"`
	InStockOnly *bool     `json:"in_stock_only"`
}

// SortKey selects the ordering of the derived view
type SortKey string

const (
	SortNameAsc   SortKey = "name"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// ValidSortKey reports whether k is one of the supported sort keys
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortNameAsc, SortPriceAsc, SortPriceDesc, SortRating, SortNewest:
		return true
	}
	return false
}

// Facets holds the distinct filterable values present in the raw catalog
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// View is a read-only snapshot of the derived catalog state
type View struct {
	Products    []Product `json:"products"`
	Filters     Filter    `json:"filters"`
	SortKey     SortKey   `json:"sort"`
	SearchQuery string    `json:"search_query"`
	CurrentPage int       `json:"current_page"`
	PageSize    int       `json:"page_size"`
	TotalPages  int       `json:"total_pages"`
	TotalItems  int       `json:"total_items"`
}
