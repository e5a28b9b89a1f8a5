package payment

import (
	"net/http"

	"shopapi/api/middleware"
	"shopapi/api/response"
	paymentapp "shopapi/application/payment"

	"github.com/gin-gonic/gin"
)

// Controller is the payment HTTP surface.
type Controller struct {
	payments *paymentapp.Service
}

// NewController creates the payment controller.
func NewController(payments *paymentapp.Service) *Controller {
	return &Controller{payments: payments}
}

// RegisterRoutes registers payment routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments", middleware.RequireIdentity())
	{
		payments.GET("/key", c.PublishableKey)
		payments.POST("/capture", c.Capture)
	}
}

// PublishableKey returns the storefront tokenization key.
func (c *Controller) PublishableKey(ctx *gin.Context) {
	response.HandleSuccess(ctx, gin.H{"key": c.payments.PublishableKey()}, "Key retrieved successfully")
}

// Capture charges an order total through the gateway.
func (c *Controller) Capture(ctx *gin.Context) {
	var req paymentapp.CaptureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.payments.Capture(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "Payment captured successfully")
}
