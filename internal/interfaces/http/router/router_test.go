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

type registrarFunc func(rg *gin.RouterGroup)

func (f registrarFunc) RegisterRoutes(rg *gin.RouterGroup) { f(rg) }

func TestNew(t *testing.T) {
	engine := gin.New()
	r := New(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := New(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestSetup(t *testing.T) {
	engine := gin.New()
	r := New(engine)

	r.Register(registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})
	}))
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestUse(t *testing.T) {
	engine := gin.New()
	r := New(engine)

	r.Use(func(c *gin.Context) {
		c.Header("X-Test-Middleware", "applied")
		c.Next()
	})
	r.Register(registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
	}))
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/items", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
}

func TestMultipleRegistrars(t *testing.T) {
	engine := gin.New()
	r := New(engine, WithAPIVersion("v1"))

	inventories := registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/inventories", func(c *gin.Context) {
			c.String(http.StatusOK, "inventories")
		})
	})
	items := registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "items")
		})
	})

	r.Register(inventories).Register(items).Setup()

	req1 := httptest.NewRequest("GET", "/api/v1/inventories", nil)
	w1 := httptest.NewRecorder()
	engine.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, "inventories", w1.Body.String())

	req2 := httptest.NewRequest("GET", "/api/v1/items", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "items", w2.Body.String())
}
