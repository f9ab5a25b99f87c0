// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
)

// SetupRoutes wires all API routes to their handlers
func SetupRoutes(rg *gin.RouterGroup, catalogStore *catalog.Store, cartRegistry *cart.Registry, cfg *config.Config) {
	SetupCatalogRoutes(rg, catalogStore, cfg)
	SetupCartRoutes(rg, cartRegistry, catalogStore, cfg)
}

// SetupCatalogRoutes sets up catalog view routes
func SetupCatalogRoutes(rg *gin.RouterGroup, catalogStore *catalog.Store, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(catalogStore, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/facets", catalogHandler.GetFacets)
		products.GET("/pages", catalogHandler.GetPageWindow)
		products.GET("/:id", catalogHandler.GetProduct)

		products.PUT("/filters", catalogHandler.UpdateFilters)
		products.DELETE("/filters", catalogHandler.ClearFilters)
		products.PUT("/sort", catalogHandler.UpdateSort)
		products.PUT("/search", catalogHandler.UpdateSearch)
		products.PUT("/page", catalogHandler.UpdatePage)
	}
}

// SetupCartRoutes sets up cart routes; carts are bound to guest sessions
func SetupCartRoutes(rg *gin.RouterGroup, cartRegistry *cart.Registry, catalogStore *catalog.Store, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cartRegistry, catalogStore, cfg)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.PUT("/open", cartHandler.SetOpen)
		cartGroup.POST("/toggle", cartHandler.ToggleOpen)
	}
}
