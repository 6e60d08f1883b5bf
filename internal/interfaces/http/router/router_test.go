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

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterRegister(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test")
	r.Register(group)

	assert.Len(t, r.registrars, 1)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/test/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("billing", "/billing")
		assert.Equal(t, "billing", g.Name())
		assert.Equal(t, "/billing", g.Prefix())
	})

	t.Run("registers routes for each method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		handler := func(c *gin.Context) { c.Status(http.StatusOK) }
		g.GET("/items", handler)
		g.POST("/items", handler)
		g.PUT("/items/:id", handler)
		g.DELETE("/items/:id", handler)

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		for _, tc := range []struct {
			method string
			path   string
		}{
			{"GET", "/api/v1/test/items"},
			{"POST", "/api/v1/test/items"},
			{"PUT", "/api/v1/test/items/1"},
			{"DELETE", "/api/v1/test/items/1"},
		} {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
		}
	})

	t.Run("applies group middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.Use(func(c *gin.Context) {
			c.Header("X-Group", "test")
			c.Next()
		})
		g.GET("/items", func(c *gin.Context) { c.Status(http.StatusOK) })

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/test/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "test", w.Header().Get("X-Group"))
	})
}
