package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()

	group := NewDomainGroup("billing", "/billing")
	group.GET("/summary", func(c *gin.Context) {
		c.String(http.StatusOK, "summary")
	})

	NewRouter(engine).Register(group).Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/summary", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "summary", w.Body.String())
}

func TestRouterCustomVersion(t *testing.T) {
	engine := gin.New()

	group := NewDomainGroup("system", "/system")
	group.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	NewRouter(engine, WithAPIVersion("v2")).Register(group).Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v2/system/ping", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDomainGroupMiddleware(t *testing.T) {
	engine := gin.New()

	called := false
	group := NewDomainGroup("property", "/apartments")
	group.Use(func(c *gin.Context) {
		called = true
		c.Next()
	})
	group.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	NewRouter(engine).Register(group).Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/apartments", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestDomainGroupAccessors(t *testing.T) {
	group := NewDomainGroup("utility", "/utilities")
	assert.Equal(t, "utility", group.Name())
	assert.Equal(t, "/utilities", group.Prefix())
}
