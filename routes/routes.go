package routes

import (
	"storefront-service/controllers"
	"storefront-service/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint exactly once. The authorization
// requirement is declared here as part of the route's group, so a gated
// operation cannot also exist unguarded.
func RegisterRoutes(
	r *gin.Engine,
	auth *controllers.AuthController,
	catalog *controllers.CatalogController,
	cart *controllers.CartController,
	orders *controllers.OrderController,
	tokens middleware.TokenValidator,
) {
	api := r.Group("/api")

	// Public: registration, login, catalog browsing.
	authRoutes := api.Group("/")
	authRoutes.Use(middleware.RateLimitMiddleware())
	authRoutes.POST("/register", auth.Register)
	authRoutes.POST("/login", auth.Login)

	api.GET("/categories", catalog.GetCategories)
	api.GET("/products/:categoryId", catalog.GetProductsByCategory)
	api.GET("/product/:productId", catalog.GetProductByID)

	// Identity-gated: everything acting on behalf of a user.
	authed := api.Group("/")
	authed.Use(middleware.AuthMiddleware(tokens))

	cartRoutes := authed.Group("/cart")
	cartRoutes.GET("", cart.GetCart)
	cartRoutes.POST("/add", cart.AddItem)
	cartRoutes.PUT("/update/:productId", cart.UpdateItem)
	cartRoutes.DELETE("/remove/:productId", cart.RemoveItem)

	orderRoutes := authed.Group("/orders")
	orderRoutes.POST("/place", orders.PlaceOrder)
	orderRoutes.GET("/history", orders.GetOrderHistory)
	orderRoutes.GET("/details/:orderId", orders.GetOrderDetails)
}
