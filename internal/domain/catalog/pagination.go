// internal/domain/catalog/pagination.go
package catalog

// Ellipsis marks a gap in the visible page window
const Ellipsis = "..."

// PageRef is either a page number or an ellipsis marker
type PageRef struct {
	Page     int    `json:"page,omitempty"`
	Ellipsis string `json:"ellipsis,omitempty"`
}

func pageRef(n int) PageRef { return PageRef{Page: n} }

func ellipsisRef() PageRef { return PageRef{Ellipsis: Ellipsis} }

// IsGap reports whether the ref is an ellipsis marker
func (r PageRef) IsGap() bool { return r.Ellipsis != "" }

// VisiblePages computes the page-button window for a pagination strip
// with a budget of 5 visible page numbers:
//
//	totalPages <= 5:              1 2 3 4 5
//	currentPage <= 3:             1 2 3 4 ... last
//	currentPage >= totalPages-2:  1 ... last-3 last-2 last-1 last
//	otherwise:                    1 ... cur-1 cur cur+1 ... last
func VisiblePages(currentPage, totalPages int) []PageRef {
	const maxVisible = 5

	pages := []PageRef{}
	if totalPages <= 0 {
		return pages
	}

	if totalPages <= maxVisible {
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, pageRef(i))
		}
		return pages
	}

	pages = append(pages, pageRef(1))

	switch {
	case currentPage <= 3:
		for i := 2; i <= 4; i++ {
			pages = append(pages, pageRef(i))
		}
		pages = append(pages, ellipsisRef(), pageRef(totalPages))
	case currentPage >= totalPages-2:
		pages = append(pages, ellipsisRef())
		for i := totalPages - 3; i <= totalPages; i++ {
			pages = append(pages, pageRef(i))
		}
	default:
		pages = append(pages, ellipsisRef())
		for i := currentPage - 1; i <= currentPage+1; i++ {
			pages = append(pages, pageRef(i))
		}
		pages = append(pages, ellipsisRef(), pageRef(totalPages))
	}

	return pages
}

// ViewMode selects how the visible slice of the filtered list grows
// as the page cursor advances.
type ViewMode string

const (
	// ViewPaged shows only the current page.
	ViewPaged ViewMode = "paged"
	// ViewInfinite shows everything through the current page, so the
	// visible set grows monotonically as the cursor advances.
	ViewInfinite ViewMode = "infinite"
)

// SelectPage returns the visible slice of the filtered list for the
// given cursor, page size and view mode. Out-of-range cursors yield an
// empty slice rather than a panic.
func SelectPage(filtered []Product, currentPage, pageSize int, mode ViewMode) []Product {
	if currentPage < 1 || pageSize <= 0 {
		return []Product{}
	}

	start := (currentPage - 1) * pageSize
	end := currentPage * pageSize
	if mode == ViewInfinite {
		start = 0
	}

	if start >= len(filtered) {
		return []Product{}
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	out := make([]Product, end-start)
	copy(out, filtered[start:end])
	return out
}

// TotalPages returns ceil(count/pageSize), 0 for an empty list
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
