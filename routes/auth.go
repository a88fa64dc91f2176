package routes

import (
	"github.com/gin-gonic/gin"
	sessionControllers "github.com/naxo-910/elsabor-api/controllers/session"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", sessionControllers.Login(deps.Sessions))
		authGroup.POST("/register", sessionControllers.Register(deps.Sessions))
		authGroup.POST("/logout", sessionControllers.Logout(deps.Sessions))
		authGroup.GET("/me", sessionControllers.Me(deps.Sessions))
	}
}
