package product

import (
	"net/http"

	"shopapi/api/middleware"
	"shopapi/api/response"
	productapp "shopapi/application/product"
	"shopapi/domain/user"

	"github.com/gin-gonic/gin"
)

// Controller is the product HTTP surface.
type Controller struct {
	products *productapp.Service
}

// NewController creates the product controller.
func NewController(products *productapp.Service) *Controller {
	return &Controller{products: products}
}

// RegisterRoutes registers product routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:id", c.GetProduct)
		products.GET("/:id/reviews", c.GetReviews)
		products.PUT("/:id/reviews", middleware.RequireIdentity(), c.SaveReview)
		products.DELETE("/:id/reviews", middleware.RequireIdentity(), c.DeleteReview)
	}

	admin := router.Group("/admin/products", middleware.RequireRole(user.RoleAdmin))
	{
		admin.GET("", c.AdminListProducts)
		admin.POST("", c.CreateProduct)
		admin.PUT("/:id", c.UpdateProduct)
		admin.DELETE("/:id", c.DeleteProduct)
		admin.POST("/:id/stock", c.CorrectStock)
	}
}

// ListProducts returns one catalog page selected by the query string.
func (c *Controller) ListProducts(ctx *gin.Context) {
	products, pager, err := c.products.ListProducts(ctx.Request.Context(), queryParams(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandlePaginated(ctx, products, pager, len(products), "Products retrieved successfully")
}

// AdminListProducts is the admin listing with the admin page size.
func (c *Controller) AdminListProducts(ctx *gin.Context) {
	products, pager, err := c.products.AdminListProducts(ctx.Request.Context(), queryParams(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandlePaginated(ctx, products, pager, len(products), "Products retrieved successfully")
}

// GetProduct returns one product.
func (c *Controller) GetProduct(ctx *gin.Context) {
	p, err := c.products.GetProduct(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, p, "Product retrieved successfully")
}

// CreateProduct adds a catalog entry.
func (c *Controller) CreateProduct(ctx *gin.Context) {
	var req productapp.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	p, err := c.products.CreateProduct(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, p, "Product created successfully")
}

// UpdateProduct edits a catalog entry.
func (c *Controller) UpdateProduct(ctx *gin.Context) {
	var req productapp.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	p, err := c.products.UpdateProduct(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, p, "Product updated successfully")
}

// DeleteProduct removes a catalog entry.
func (c *Controller) DeleteProduct(ctx *gin.Context) {
	if err := c.products.DeleteProduct(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, nil, "Product deleted successfully")
}

// CorrectStock applies a signed stock delta without the non-negativity guard.
func (c *Controller) CorrectStock(ctx *gin.Context) {
	var req productapp.StockCorrectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	if err := c.products.CorrectStock(ctx.Request.Context(), ctx.Param("id"), req.Delta); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, nil, "Stock corrected successfully")
}

// GetReviews returns a product's reviews.
func (c *Controller) GetReviews(ctx *gin.Context) {
	reviews, err := c.products.GetReviews(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, reviews, "Reviews retrieved successfully")
}

// SaveReview inserts or replaces the caller's review.
func (c *Controller) SaveReview(ctx *gin.Context) {
	var req productapp.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	err := c.products.AddReview(ctx.Request.Context(), ctx.Param("id"),
		middleware.UserID(ctx), middleware.UserName(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, nil, "Review saved successfully")
}

// DeleteReview removes the caller's review.
func (c *Controller) DeleteReview(ctx *gin.Context) {
	err := c.products.DeleteReview(ctx.Request.Context(), ctx.Param("id"), middleware.UserID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, nil, "Review deleted successfully")
}

// queryParams flattens the query string to the first value per key, the shape
// the descriptor builder consumes.
func queryParams(ctx *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range ctx.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
