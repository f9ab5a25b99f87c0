// internal/domain/cart/entity.go
package cart

import "github.com/your-org/storefront/internal/domain/catalog"

// Item is one line item: a product plus a positive quantity.
// At most one line item exists per product id.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int     `json:"item_count"`     // number of unique line items
	TotalQuantity int     `json:"total_quantity"` // sum of all quantities
	Total         float64 `json:"total"`          // sum of price x quantity
}

// Snapshot is a read-only copy of the cart state
type Snapshot struct {
	Items  []Item `json:"items"`
	Totals Totals `json:"totals"`
	IsOpen bool   `json:"is_open"`
}
