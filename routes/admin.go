package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/naxo-910/elsabor-api/controllers/product"
	"github.com/naxo-910/elsabor-api/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires an admin session.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.Catalog))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.Catalog))
			productAdmin.GET("", productcontroller.GetProducts(deps.Catalog))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.Catalog))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.Catalog))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Catalog))
		}
	}
}
