package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user", ValidateToken, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
	})
	r.GET("/admin", ValidateToken, RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func request(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenAcceptsGoodToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id":  2,
		"is_admin": false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	w := request(r, "/user", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":2`)
}

func TestValidateTokenRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	w := request(r, "/user", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": 2,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := request(r, "/user", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": 2,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	w := request(r, "/user", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	userToken := signToken(t, "test-secret", jwt.MapClaims{
		"user_id":  2,
		"is_admin": false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	w := request(r, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := signToken(t, "test-secret", jwt.MapClaims{
		"user_id":  1,
		"is_admin": true,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	w = request(r, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
