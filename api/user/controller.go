package user

import (
	"net/http"

	"shopapi/api/middleware"
	"shopapi/api/response"
	userapp "shopapi/application/user"
	"shopapi/domain/user"

	"github.com/gin-gonic/gin"
)

// Controller is the user HTTP surface.
type Controller struct {
	users *userapp.Service
}

// NewController creates the user controller.
func NewController(users *userapp.Service) *Controller {
	return &Controller{users: users}
}

// RegisterRoutes registers user routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users", c.Register)

	me := router.Group("/me", middleware.RequireIdentity())
	{
		me.GET("", c.GetProfile)
		me.PUT("", c.UpdateProfile)
	}

	admin := router.Group("/admin/users", middleware.RequireRole(user.RoleAdmin))
	{
		admin.GET("", c.ListUsers)
		admin.GET("/:id", c.GetUser)
		admin.PUT("/:id/role", c.UpdateUserRole)
		admin.DELETE("/:id", c.DeleteUser)
	}

	manager := router.Group("/manager", middleware.RequireRole(user.RoleAdmin, user.RoleManager))
	{
		manager.GET("/customers", c.ListCustomers)
	}
}

// Register creates an account.
func (c *Controller) Register(ctx *gin.Context) {
	var req userapp.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	u, err := c.users.Register(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, u, "User created successfully")
}

// GetProfile returns the calling user's record.
func (c *Controller) GetProfile(ctx *gin.Context) {
	u, err := c.users.GetProfile(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, u, "Profile retrieved successfully")
}

// UpdateProfile edits the calling user's record.
func (c *Controller) UpdateProfile(ctx *gin.Context) {
	var req userapp.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	u, err := c.users.UpdateProfile(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, u, "Profile updated successfully")
}

// ListUsers returns every account.
func (c *Controller) ListUsers(ctx *gin.Context) {
	users, err := c.users.ListUsers(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, users, "Users retrieved successfully")
}

// ListCustomers returns accounts with the plain user role.
func (c *Controller) ListCustomers(ctx *gin.Context) {
	users, err := c.users.ListCustomers(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, users, "Customers retrieved successfully")
}

// GetUser returns any account.
func (c *Controller) GetUser(ctx *gin.Context) {
	u, err := c.users.GetUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, u, "User retrieved successfully")
}

// UpdateUserRole changes an account's role.
func (c *Controller) UpdateUserRole(ctx *gin.Context) {
	var req userapp.RoleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	u, err := c.users.UpdateUserRole(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, u, "User role updated successfully")
}

// DeleteUser removes an account.
func (c *Controller) DeleteUser(ctx *gin.Context) {
	if err := c.users.DeleteUser(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, nil, "User deleted successfully")
}
