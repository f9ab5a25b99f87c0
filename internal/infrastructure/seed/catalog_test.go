package seed

import (
	"testing"

	"github.com/your-org/storefront/internal/domain/catalog"
)

func TestProducts_LoadCleanly(t *testing.T) {
	store := catalog.NewStore(12, 1000)
	if err := store.LoadCatalog(Products()); err != nil {
		t.Fatalf("seed catalog rejected at ingestion: %v", err)
	}

	view := store.Snapshot(catalog.ViewPaged)
	if view.TotalItems != len(Products()) {
		t.Fatalf("expected %d products, got %d", len(Products()), view.TotalItems)
	}
	if view.TotalPages != 2 {
		t.Fatalf("expected 2 pages at size 12, got %d", view.TotalPages)
	}
}

func TestProducts_WithinDefaultPriceRange(t *testing.T) {
	for _, p := range Products() {
		if p.Price > 1000 {
			t.Errorf("product %s priced %v above the default range ceiling", p.ID, p.Price)
		}
		if p.OriginalPrice > 0 && p.OriginalPrice <= p.Price {
			t.Errorf("product %s has original price not above price", p.ID)
		}
	}
}
