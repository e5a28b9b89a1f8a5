package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopapi/domain/listing"
	"shopapi/domain/product"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCollection = "products"

// ProductRepository is the MongoDB product store.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a product repository on the given database.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection(productCollection)}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Reviews == nil {
		p.Reviews = []product.Review{}
	}

	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, product.ErrProductNotFound
	}

	var p product.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, p *product.Product) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product.ErrProductNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"name":        p.Name,
			"price":       p.Price,
			"description": p.Description,
			"category":    p.Category,
			"brand":       p.Brand,
			"stock":       p.Stock,
			"updated_at":  time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product.ErrProductNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// List executes a listing descriptor: search and filters become one filter
// document, the pager becomes skip/limit. An empty page is returned as an
// empty slice, not an error.
func (r *ProductRepository) List(ctx context.Context, d *listing.Descriptor) ([]*product.Product, error) {
	filter, opts := TranslateDescriptor(d)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*product.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	if products == nil {
		products = []*product.Product{}
	}
	return products, nil
}

// AdjustStock applies a signed stock delta as a single server-side $inc so
// concurrent adjustments never lose updates. Document validation is bypassed
// because a stock-only update must not re-trigger unrelated field validators.
func (r *ProductRepository) AdjustStock(ctx context.Context, id string, delta int, opts product.AdjustOptions) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product.ErrProductNotFound
	}

	filter := bson.M{"_id": objID}
	if !opts.AllowNegative && delta < 0 {
		filter["stock"] = bson.M{"$gte": -delta}
	}

	update := bson.M{
		"$inc": bson.M{"stock": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update,
		options.Update().SetBypassDocumentValidation(true))
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// The guarded filter hides the reason for a miss; look the product up to
	// tell a missing product from insufficient stock.
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}
	if count == 0 {
		return product.ErrProductNotFound
	}
	return product.ErrInsufficientStock
}

func (r *ProductRepository) SaveReview(ctx context.Context, productID string, review product.Review) error {
	p, err := r.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range p.Reviews {
		if existing.UserID == review.UserID {
			p.Reviews[i] = review
			replaced = true
			break
		}
	}
	if !replaced {
		p.Reviews = append(p.Reviews, review)
	}
	p.RecalculateRatings()

	return r.writeReviews(ctx, p)
}

func (r *ProductRepository) DeleteReview(ctx context.Context, productID, userID string) error {
	p, err := r.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	kept := p.Reviews[:0]
	for _, existing := range p.Reviews {
		if existing.UserID != userID {
			kept = append(kept, existing)
		}
	}
	p.Reviews = kept
	p.RecalculateRatings()

	return r.writeReviews(ctx, p)
}

func (r *ProductRepository) writeReviews(ctx context.Context, p *product.Product) error {
	update := bson.M{
		"$set": bson.M{
			"reviews":      p.Reviews,
			"ratings":      p.Ratings,
			"review_count": p.ReviewCount,
			"updated_at":   time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to write reviews: %w", err)
	}
	if result.MatchedCount == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

var _ product.Repository = (*ProductRepository)(nil)
