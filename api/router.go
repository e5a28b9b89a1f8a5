// Package api wires the HTTP surface: middleware chain, route groups, and
// the controllers behind them.
package api

import (
	"shopapi/api/health"
	"shopapi/api/middleware"
	"shopapi/api/order"
	"shopapi/api/payment"
	"shopapi/api/product"
	"shopapi/api/user"
	"shopapi/config"

	"github.com/gin-gonic/gin"
)

// Router holds the gin engine and the controllers it routes to.
type Router struct {
	engine            *gin.Engine
	config            *config.Config
	healthController  *health.Controller
	productController *product.Controller
	orderController   *order.Controller
	userController    *user.Controller
	paymentController *payment.Controller
}

// NewRouter builds the engine with the full middleware chain.
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	productController *product.Controller,
	orderController *order.Controller,
	userController *user.Controller,
	paymentController *payment.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Order matters: the request id must exist before anything logs.
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logging())
	engine.Use(middleware.CORS(&cfg.CORS))
	engine.Use(middleware.RateLimit(&cfg.Server.RateLimit))
	engine.Use(middleware.Identity())

	return &Router{
		engine:            engine,
		config:            cfg,
		healthController:  healthController,
		productController: productController,
		orderController:   orderController,
		userController:    userController,
		paymentController: paymentController,
	}
}

// SetupRoutes registers every controller under /api/v1.
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.productController.RegisterRoutes(apiGroup)
		r.orderController.RegisterRoutes(apiGroup)
		r.userController.RegisterRoutes(apiGroup)
		r.paymentController.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
