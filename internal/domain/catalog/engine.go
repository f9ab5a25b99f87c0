// internal/domain/catalog/engine.go
package catalog

import (
	"sort"
	"strings"
)

// ApplyFiltersAndSort derives the visible product list from the raw
// catalog, the search query, the filter criteria and the sort key.
// It never mutates its inputs and always returns a fresh slice, so it
// is safe to call from any goroutine.
func ApplyFiltersAndSort(products []Product, query string, filter Filter, sortKey SortKey) []Product {
	filtered := make([]Product, 0, len(products))

	q := strings.ToLower(strings.TrimSpace(query))
	for _, p := range products {
		if q != "" && !matchesQuery(&p, q) {
			continue
		}
		if len(filter.Categories) > 0 && !contains(filter.Categories, p.Category) {
			continue
		}
		if len(filter.Brands) > 0 && !contains(filter.Brands, p.Brand) {
			continue
		}
		if p.Price < filter.MinPrice || p.Price > filter.MaxPrice {
			continue
		}
		if filter.MinRating > 0 && p.Rating < filter.MinRating {
			continue
		}
		if filter.InStockOnly && !p.InStock {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortKey {
	case SortNameAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortNewest:
		// No creation timestamp exists in the data model; reversing the
		// filtered order is the documented approximation.
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	return filtered
}

// matchesQuery reports whether the product matches the lowercased query
// on name, description, category or brand.
func matchesQuery(p *Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Brand), q)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// CollectFacets returns the distinct categories and brands of the raw
// catalog in first-seen order.
func CollectFacets(products []Product) Facets {
	facets := Facets{
		Categories: []string{},
		Brands:     []string{},
	}
	seenCategory := make(map[string]bool)
	seenBrand := make(map[string]bool)

	for _, p := range products {
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			facets.Categories = append(facets.Categories, p.Category)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			facets.Brands = append(facets.Brands, p.Brand)
		}
	}

	return facets
}
