package sessionControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/naxo-910/elsabor-api/models"
	"github.com/naxo-910/elsabor-api/session"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func Login(provider *session.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := provider.Login(input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		token, err := issueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// POST /auth/register
func Register(provider *session.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft session.RegisterDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := provider.Register(draft)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, session.ErrUserExists) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		token, err := issueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
	}
}

// POST /auth/logout
func Logout(provider *session.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := provider.Logout(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
	}
}

// GET /auth/me restores the persisted session, if any.
func Me(provider *session.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := provider.Restore()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func issueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"name":     user.Name,
		"is_admin": user.IsAdmin,
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
