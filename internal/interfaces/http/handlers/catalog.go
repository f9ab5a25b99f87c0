// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// CatalogHandler handles catalog view endpoints
type CatalogHandler struct {
	store  *catalog.Store
	config *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *catalog.Store, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		config: cfg,
	}
}

// SortRequest carries a sort-key change
type SortRequest struct {
	Sort catalog.SortKey `json:"sort" binding:"required"`
}

// SearchRequest carries a search-query change
type SearchRequest struct {
	Query string `json:"query"`
}

// PageRequest carries a page-cursor change
type PageRequest struct {
	Page int `json:"page" binding:"required"`
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	mode := catalog.ViewPaged
	if c.Query("view") == string(catalog.ViewInfinite) {
		mode = catalog.ViewInfinite
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    h.store.Snapshot(mode),
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.store.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetFacets handles GET /products/facets
func (h *CatalogHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Facets retrieved successfully",
		"data":    h.store.Facets(),
	})
}

// GetPageWindow handles GET /products/pages
func (h *CatalogHandler) GetPageWindow(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Page window retrieved successfully",
		"data": gin.H{
			"pages": h.store.PageWindow(),
		},
	})
}

// UpdateFilters handles PUT /products/filters
func (h *CatalogHandler) UpdateFilters(c *gin.Context) {
	var req catalog.FilterUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.store.SetFilters(req)

	c.JSON(http.StatusOK, gin.H{
		"message": "Filters updated successfully",
		"data":    h.store.Snapshot(catalog.ViewPaged),
	})
}

// ClearFilters handles DELETE /products/filters
func (h *CatalogHandler) ClearFilters(c *gin.Context) {
	h.store.ClearFilters(h.config.Catalog.MaxPrice)

	c.JSON(http.StatusOK, gin.H{
		"message": "Filters cleared successfully",
		"data":    h.store.Snapshot(catalog.ViewPaged),
	})
}

// UpdateSort handles PUT /products/sort
func (h *CatalogHandler) UpdateSort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.SetSortKey(req.Sort); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sort key updated successfully",
		"data":    h.store.Snapshot(catalog.ViewPaged),
	})
}

// UpdateSearch handles PUT /products/search
func (h *CatalogHandler) UpdateSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.store.SetSearchQuery(req.Query)

	c.JSON(http.StatusOK, gin.H{
		"message": "Search query updated successfully",
		"data":    h.store.Snapshot(catalog.ViewPaged),
	})
}

// UpdatePage handles PUT /products/page. Values below 1 are rejected
// here; the store itself does not clamp the cursor.
func (h *CatalogHandler) UpdatePage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.Page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Page must be at least 1",
		})
		return
	}

	h.store.SetCurrentPage(req.Page)

	c.JSON(http.StatusOK, gin.H{
		"message": "Page updated successfully",
		"data":    h.store.Snapshot(catalog.ViewPaged),
	})
}
