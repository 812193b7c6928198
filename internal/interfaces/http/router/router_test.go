package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(status int) gin.HandlerFunc {
	return func(c *gin.Context) { c.Status(status) }
}

func TestRouter_Prefix(t *testing.T) {
	assert.Equal(t, "/api/v1", NewRouter(gin.New()).Prefix())
	assert.Equal(t, "/api/v2", NewRouter(gin.New(), WithAPIVersion("v2")).Prefix())
}

func TestRouter_Setup(t *testing.T) {
	engine := gin.New()

	routes := NewRouter(engine).
		Register(
			NewDomainGroup("cart", "/cart").
				GET("", ok(http.StatusOK)).
				POST("/items", ok(http.StatusNoContent)),
			NewDomainGroup("orders", "/orders").
				GET("/:code", ok(http.StatusOK)),
		).
		Setup()

	assert.Equal(t, []MountedRoute{
		{Group: "cart", Method: http.MethodGet, Path: "/api/v1/cart"},
		{Group: "cart", Method: http.MethodPost, Path: "/api/v1/cart/items"},
		{Group: "orders", Method: http.MethodGet, Path: "/api/v1/orders/:code"},
	}, routes)

	tests := []struct {
		method string
		target string
		status int
	}{
		{http.MethodGet, "/api/v1/cart", http.StatusOK},
		{http.MethodPost, "/api/v1/cart/items", http.StatusNoContent},
		{http.MethodGet, "/api/v1/orders/ORD-1", http.StatusOK},
		{http.MethodGet, "/cart", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRouter_SetupEmpty(t *testing.T) {
	assert.Empty(t, NewRouter(gin.New()).Setup())
}

func TestDomainGroup_Middleware(t *testing.T) {
	engine := gin.New()

	var order []string
	g := NewDomainGroup("account", "/account").
		Use(func(c *gin.Context) {
			order = append(order, "group")
			c.Header("X-Group", "account")
			c.Next()
		}).
		GET("/profile", func(c *gin.Context) {
			order = append(order, "handler")
			c.Status(http.StatusOK)
		})
	assert.Equal(t, "account", g.Name())

	routes := NewRouter(engine).Register(g).Setup()
	require.Len(t, routes, 1)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/account/profile", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "account", w.Header().Get("X-Group"))
	assert.Equal(t, []string{"group", "handler"}, order)
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/api/v1/checkout", joinPath("/api/v1", "/checkout", ""))
	assert.Equal(t, "/api/v1/orders/:code", joinPath("/api/v1", "/orders", "/:code"))
	assert.Equal(t, "/", joinPath(""))
}
