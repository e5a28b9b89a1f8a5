// Package product holds the product catalog entities and the repository
// contract, including the stock ledger operation.
package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry stored in the products collection.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Brand       string             `bson:"brand" json:"brand"`
	Stock       int                `bson:"stock" json:"stock"`
	Ratings     float64            `bson:"ratings" json:"ratings"`
	ReviewCount int                `bson:"review_count" json:"review_count"`
	Reviews     []Review           `bson:"reviews" json:"reviews"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Review is a user review embedded in a product document.
type Review struct {
	UserID  string  `bson:"user_id" json:"user_id"`
	Name    string  `bson:"name" json:"name"`
	Rating  float64 `bson:"rating" json:"rating"`
	Comment string  `bson:"comment" json:"comment"`
}

// RecalculateRatings recomputes the aggregate rating fields from Reviews.
func (p *Product) RecalculateRatings() {
	p.ReviewCount = len(p.Reviews)
	if p.ReviewCount == 0 {
		p.Ratings = 0
		return
	}
	var sum float64
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	p.Ratings = sum / float64(p.ReviewCount)
}
