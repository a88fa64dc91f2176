package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests whose session does not carry the admin flag.
// Must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if !c.GetBool("is_admin") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
