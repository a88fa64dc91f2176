package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/checkout"
	"github.com/naxo-910/elsabor-api/session"
	"github.com/naxo-910/elsabor-api/stock"
	"github.com/naxo-910/elsabor-api/storage"
)

// Deps carries the constructed core components into the route groups.
type Deps struct {
	Catalog  *catalog.Store
	Storage  *storage.Store
	Stock    *stock.Reconciler
	Checkout *checkout.Orchestrator
	Sessions *session.Provider
}

// SetupRoutes is the single entry‐point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, deps)

	// 3️⃣ Admin routes (admin‐JWT‐protected)
	SetupAdminRoutes(r, deps)
}
