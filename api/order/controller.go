package order

import (
	"net/http"

	"shopapi/api/middleware"
	"shopapi/api/response"
	orderapp "shopapi/application/order"
	"shopapi/domain/order"
	"shopapi/domain/user"

	"github.com/gin-gonic/gin"
)

// Controller is the order HTTP surface.
type Controller struct {
	orders *orderapp.Service
}

// NewController creates the order controller.
func NewController(orders *orderapp.Service) *Controller {
	return &Controller{orders: orders}
}

// RegisterRoutes registers order routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders", middleware.RequireIdentity())
	{
		orders.POST("", c.CreateOrder)
		orders.GET("", c.GetMyOrders)
		orders.GET("/:id", c.GetOrder)
	}

	admin := router.Group("/admin/orders", middleware.RequireRole(user.RoleAdmin))
	{
		admin.GET("", c.ListOrders)
		admin.PUT("/:id/status", c.UpdateOrderStatus)
		admin.DELETE("/:id", c.DeleteOrder)
	}
}

// CreateOrder places an order for the calling user.
func (c *Controller) CreateOrder(ctx *gin.Context) {
	var req orderapp.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	o, err := c.orders.CreateOrder(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, o, "Order created successfully")
}

// GetMyOrders returns the calling user's orders.
func (c *Controller) GetMyOrders(ctx *gin.Context) {
	orders, err := c.orders.GetUserOrders(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "Orders retrieved successfully")
}

// GetOrder returns one order. Users see only their own orders; admins see all.
func (c *Controller) GetOrder(ctx *gin.Context) {
	o, err := c.orders.GetOrder(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	if o.UserID != middleware.UserID(ctx) && middleware.Role(ctx) != user.RoleAdmin {
		response.HandleAppError(ctx, order.ErrOrderNotFound)
		return
	}

	response.HandleSuccess(ctx, o, "Order retrieved successfully")
}

// ListOrders returns every order.
func (c *Controller) ListOrders(ctx *gin.Context) {
	orders, err := c.orders.ListOrders(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "Orders retrieved successfully")
}

// StatusUpdateRequest is the admin payload for a status transition.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus runs the fulfillment transition. When stock adjustments
// fail for some line items the order keeps its status and the failed product
// ids come back with a 409.
func (c *Controller) UpdateOrderStatus(ctx *gin.Context) {
	var req StatusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	result, err := c.orders.SetOrderStatus(ctx.Request.Context(), ctx.Param("id"), status)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	if !result.Success {
		ctx.JSON(http.StatusConflict, &response.Response{
			Success:   false,
			Data:      result,
			Error:     "INSUFFICIENT_STOCK",
			Message:   "Stock adjustment failed for some items",
			Code:      http.StatusConflict,
			RequestID: response.GetRequestID(ctx),
		})
		return
	}

	response.HandleSuccess(ctx, result, "Order status updated successfully")
}

// DeleteOrder removes an order.
func (c *Controller) DeleteOrder(ctx *gin.Context) {
	if err := c.orders.DeleteOrder(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, nil, "Order deleted successfully")
}
