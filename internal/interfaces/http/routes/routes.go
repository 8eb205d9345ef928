// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/market-store-gateway/internal/domain/cart"
	"github.com/your-org/market-store-gateway/internal/domain/catalog"
	"github.com/your-org/market-store-gateway/internal/domain/checkout"
	"github.com/your-org/market-store-gateway/internal/domain/order"
	"github.com/your-org/market-store-gateway/internal/interfaces/http/handlers"
)

// Deps bundles the wired services the route handlers need
type Deps struct {
	Carts    *cart.Manager
	Catalog  *catalog.Client
	Orders   *order.Client
	Checkout *checkout.Service
}

// SetupRoutes registers all API routes
func SetupRoutes(rg *gin.RouterGroup, deps Deps) {
	setupCartRoutes(rg, deps)
	setupProductRoutes(rg, deps)
	setupOrderRoutes(rg, deps)
}

// setupCartRoutes sets up cart related routes
func setupCartRoutes(rg *gin.RouterGroup, deps Deps) {
	cartHandler := handlers.NewCartHandler(deps.Carts)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCount)

		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.POST("/items/:id/move", cartHandler.MoveItem)
	}
}

// setupProductRoutes sets up product related routes
func setupProductRoutes(rg *gin.RouterGroup, deps Deps) {
	productHandler := handlers.NewProductHandler(deps.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/search", productHandler.Search)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// setupOrderRoutes sets up order related routes
func setupOrderRoutes(rg *gin.RouterGroup, deps Deps) {
	orderHandler := handlers.NewOrderHandler(deps.Checkout, deps.Orders)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/code/:code", orderHandler.GetByCode)
		orders.GET("/code/:code/qr", orderHandler.GetCodeQR)

		// Cashier endpoints; credentials are forwarded to the market API
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/complete", orderHandler.CompleteOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	}
}
