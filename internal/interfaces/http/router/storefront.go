package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/application/container"
	"github.com/fredonbytes/backend/internal/infrastructure/config"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
	"github.com/fredonbytes/backend/internal/interfaces/http/handler"
	"github.com/fredonbytes/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every storefront handler
type Handlers struct {
	System   *handler.SystemHandler
	Config   *handler.ConfigHandler
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Orders   *handler.OrderHandler
	Account  *handler.AccountHandler
}

// NewHandlers builds the storefront handlers on the container's contracts
func NewHandlers(c *container.ServiceContainer, client config.ClientConfig, system *handler.SystemHandler) Handlers {
	return Handlers{
		System:   system,
		Config:   handler.NewConfigHandler(client),
		Auth:     handler.NewAuthHandler(c.Auth()),
		Catalog:  handler.NewCatalogHandler(c.Catalog()),
		Cart:     handler.NewCartHandler(c.Cart()),
		Checkout: handler.NewCheckoutHandler(c.Checkout()),
		Orders:   handler.NewOrderHandler(c.Orders()),
		Account:  handler.NewAccountHandler(c.Accounts()),
	}
}

// Groups returns the storefront route groups, relative to /api/v1
func (h Handlers) Groups() []*DomainGroup {
	system := NewDomainGroup("system", "/system").
		GET("/ping", h.System.Ping).
		GET("/info", h.System.GetSystemInfo)

	cfg := NewDomainGroup("config", "/config").
		GET("/client", h.Config.GetClientConfig)

	auth := NewDomainGroup("auth", "/auth").
		POST("/sign-in", h.Auth.SignIn).
		POST("/sign-out", h.Auth.SignOut)

	catalog := NewDomainGroup("catalog", "/catalog").
		GET("/products", h.Catalog.ListProducts).
		GET("/collections", h.Catalog.ListCollections)

	cart := NewDomainGroup("cart", "/cart").
		GET("", h.Cart.GetActiveCart).
		POST("/items", h.Cart.AddItem)

	checkout := NewDomainGroup("checkout", "/checkout").
		POST("", h.Checkout.PlaceOrder)

	orders := NewDomainGroup("orders", "/orders").
		GET("/:code", h.Orders.GetByCode)

	account := NewDomainGroup("account", "/account").
		GET("/profile", h.Account.GetProfile)

	return []*DomainGroup{system, cfg, auth, catalog, cart, checkout, orders, account}
}

// EngineConfig configures the middleware chain of NewEngine
type EngineConfig struct {
	ServiceName    string
	TracingEnabled bool
	MaxBodyBytes   int64
	CORS           middleware.CORSConfig
}

// NewEngine creates a gin engine with the storefront middleware chain and
// mounts h under /api/v1. /health stays outside the versioned prefix.
func NewEngine(cfg EngineConfig, log *zap.Logger, h Handlers) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.ServiceName,
		Enabled:     cfg.TracingEnabled,
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	if cfg.MaxBodyBytes > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	}

	engine.GET("/health", h.System.Health)

	routes := NewRouter(engine, WithAPIVersion("v1")).
		Register(h.Groups()...).
		Setup()
	for _, rt := range routes {
		log.Debug("Route mounted",
			zap.String("group", rt.Group),
			zap.String("method", rt.Method),
			zap.String("path", rt.Path),
		)
	}

	return engine
}
