// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	registry *cart.Registry
	catalog  *catalog.Store
	config   *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(registry *cart.Registry, catalogStore *catalog.Store, cfg *config.Config) *CartHandler {
	return &CartHandler{
		registry: registry,
		catalog:  catalogStore,
		config:   cfg,
	}
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateItemRequest represents a quantity change for a line item
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// OpenRequest sets the cart drawer visibility
type OpenRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.sessionCart(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    store.Snapshot(),
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	store := h.sessionCart(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, ok := h.catalog.Product(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	store.AddItem(product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    store.Snapshot(),
	})
}

// UpdateItem handles PUT /cart/items/:id. A quantity of zero or less
// removes the line item; an absent id is a silent no-op.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	store := h.sessionCart(c)

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store.SetQuantity(c.Param("id"), *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    store.Snapshot(),
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	store := h.sessionCart(c)
	store.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    store.Snapshot(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.sessionCart(c)
	store.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    store.Snapshot(),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	store := h.sessionCart(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": store.ItemCount(),
		},
	})
}

// SetOpen handles PUT /cart/open
func (h *CartHandler) SetOpen(c *gin.Context) {
	store := h.sessionCart(c)

	var req OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store.SetOpen(*req.Open)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart visibility updated successfully",
		"data":    store.Snapshot(),
	})
}

// ToggleOpen handles POST /cart/toggle
func (h *CartHandler) ToggleOpen(c *gin.Context) {
	store := h.sessionCart(c)
	store.ToggleOpen()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart visibility toggled successfully",
		"data":    store.Snapshot(),
	})
}

// sessionCart resolves the cart for this request's guest session,
// minting a session cookie on first contact.
func (h *CartHandler) sessionCart(c *gin.Context) *cart.Store {
	sessionID, err := c.Cookie(h.config.Session.CookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		maxAge := int(h.config.Session.MaxAge.Seconds())
		c.SetCookie(h.config.Session.CookieName, sessionID, maxAge, "/", "", false, true)
	}

	return h.registry.GetOrCreate(sessionID)
}
