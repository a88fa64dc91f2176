package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/naxo-910/elsabor-api/controllers/cart"
	checkoutControllers "github.com/naxo-910/elsabor-api/controllers/checkout"
	productcontroller "github.com/naxo-910/elsabor-api/controllers/product"
	"github.com/naxo-910/elsabor-api/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Catalog, deps.Storage, deps.Stock))            // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(deps.Catalog, deps.Storage))                       // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.SetCartItemQuantity(deps.Catalog, deps.Storage))     // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Catalog, deps.Storage))       // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Catalog, deps.Storage))                   // DELETE /user/cart
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(deps.Catalog))        // GET /user/products
		userGroup.GET("/products/:id", productcontroller.GetProductByID(deps.Catalog)) // GET /user/products/:id
		userGroup.GET("/categories", productcontroller.GetCategories(deps.Catalog))    // GET /user/categories

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", checkoutControllers.SubmitCheckout(deps.Checkout, deps.Catalog, deps.Storage)) // POST /user/checkout
		userGroup.GET("/orders/last", checkoutControllers.GetLastOrder(deps.Checkout))                             // GET /user/orders/last
		userGroup.GET("/orders/ws", checkoutControllers.OrderEventsHandler)                                        // GET /user/orders/ws
	}
}
