package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/declanhart/order-management-api/auth"
	"github.com/declanhart/order-management-api/config"
	"github.com/declanhart/order-management-api/models"
)

func newTestProvider() *auth.JwtProvider {
	return auth.NewJwtProvider(&config.Config{
		JWTSecret:        "middleware-test-secret",
		JWTIssuer:        "order-management-api",
		JWTAudience:      "order-management-clients",
		JWTExpiryMinutes: 60,
	})
}

func setupTestRouter(provider *auth.JwtProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/me", EnsureValidToken(provider), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":  userID,
			"username": c.GetString(ContextUsernameKey),
			"role":     c.GetString(ContextRoleKey),
		})
	})
	router.GET("/admin", EnsureValidToken(provider), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func TestEnsureValidTokenAcceptsValidToken(t *testing.T) {
	provider := newTestProvider()
	router := setupTestRouter(provider)

	token, err := provider.Generate(&models.User{ID: 7, Username: "alice", Role: models.RoleCustomer})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestEnsureValidTokenRejections(t *testing.T) {
	provider := newTestProvider()
	router := setupTestRouter(provider)

	expiredProvider := auth.NewJwtProvider(&config.Config{
		JWTSecret:        "middleware-test-secret",
		JWTIssuer:        "order-management-api",
		JWTAudience:      "order-management-clients",
		JWTExpiryMinutes: -1,
	})
	expiredToken, err := expiredProvider.Generate(&models.User{ID: 7, Username: "alice", Role: models.RoleCustomer})
	assert.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer garbage"},
		{"expired token", "Bearer " + expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
		})
	}
}

func TestRequireRole(t *testing.T) {
	provider := newTestProvider()
	router := setupTestRouter(provider)

	adminToken, err := provider.Generate(&models.User{ID: 1, Username: "root", Role: models.RoleAdmin})
	assert.NoError(t, err)
	customerToken, err := provider.Generate(&models.User{ID: 2, Username: "alice", Role: models.RoleCustomer})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}
