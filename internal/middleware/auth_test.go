package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func protectedRouter(roles ...models.UserRole) *gin.Engine {
	router := gin.New()
	group := router.Group("/secure")
	group.Use(AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c), "role": GetRole(c)})
	})
	return router
}

func get(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := protectedRouter()
	w := get(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := protectedRouter()
	w := get(router, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAttachesPrincipal(t *testing.T) {
	token, err := auth.GenerateToken("u-42", "user")
	require.NoError(t, err)

	router := protectedRouter()
	w := get(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-42")
}

func TestRequireRolesInsufficient(t *testing.T) {
	token, err := auth.GenerateToken("u-42", "user")
	require.NoError(t, err)

	router := protectedRouter(models.UserRoleAdmin)
	w := get(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesCaseInsensitive(t *testing.T) {
	token, err := auth.GenerateToken("u-1", "Admin")
	require.NoError(t, err)

	router := protectedRouter(models.UserRoleAdmin)
	w := get(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	router := gin.New()
	router.Use(OptionalAuthMiddleware())
	router.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"isAdmin": IsAdmin(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")
}
