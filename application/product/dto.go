package product

import "shopapi/domain/product"

// CreateProductRequest is the admin payload for adding a product.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Brand       string  `json:"brand"`
	Stock       int     `json:"stock" binding:"min=0"`
}

// UpdateProductRequest is the admin payload for editing a product. Zero
// values leave the stored field untouched.
type UpdateProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Stock       *int     `json:"stock"`
}

// ReviewRequest is the payload for adding or replacing a review.
type ReviewRequest struct {
	Rating  float64 `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment" binding:"required"`
}

// StockCorrectionRequest is the admin payload for a signed stock delta.
type StockCorrectionRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (req CreateProductRequest) toDomain() *product.Product {
	return &product.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Brand:       req.Brand,
		Stock:       req.Stock,
	}
}

func (req UpdateProductRequest) apply(p *product.Product) {
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.Brand != "" {
		p.Brand = req.Brand
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
}
