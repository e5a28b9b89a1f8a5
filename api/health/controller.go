package health

import (
	"context"
	"net/http"
	"time"

	"shopapi/api/response"
	"shopapi/config"

	"github.com/gin-gonic/gin"
)

// Pinger checks the backing store. A nil Pinger skips the check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Controller is the health HTTP surface.
type Controller struct {
	cfg    *config.Config
	pinger Pinger
}

// NewController creates the health controller.
func NewController(cfg *config.Config, pinger Pinger) *Controller {
	return &Controller{cfg: cfg, pinger: pinger}
}

// RegisterRoutes registers health routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.Health)
}

// Health reports liveness and the backing store's reachability.
func (c *Controller) Health(ctx *gin.Context) {
	status := gin.H{
		"status":  "ok",
		"name":    c.cfg.App.Name,
		"version": c.cfg.App.Version,
		"env":     c.cfg.App.Env,
	}

	if c.pinger != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.pinger.Ping(pingCtx); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}

	response.HandleSuccess(ctx, status, "Service healthy")
}
