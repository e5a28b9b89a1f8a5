// Package memory provides in-memory implementations of the persistence
// contracts. They back the "memory" database type for local development and
// give tests deterministic setup and teardown without a running store.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"shopapi/domain/listing"
	"shopapi/domain/product"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository is an in-memory product store.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*product.Product
}

// NewProductRepository creates an empty in-memory product store.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]*product.Product)}
}

func (r *ProductRepository) Create(_ context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Reviews == nil {
		p.Reviews = []product.Review{}
	}

	clone := *p
	r.products[p.ID.Hex()] = &clone
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *ProductRepository) Update(_ context.Context, id string, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok {
		return product.ErrProductNotFound
	}
	existing.Name = p.Name
	existing.Price = p.Price
	existing.Description = p.Description
	existing.Category = p.Category
	existing.Brand = p.Brand
	existing.Stock = p.Stock
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return product.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// List evaluates the descriptor in memory with the same semantics as the
// MongoDB translation: search AND filters, then skip/limit.
func (r *ProductRepository) List(_ context.Context, d *listing.Descriptor) ([]*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*product.Product
	for _, p := range r.products {
		if matchesDescriptor(p, d) {
			clone := *p
			matched = append(matched, &clone)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	start := d.Pager.Skip
	if start >= len(matched) {
		return []*product.Product{}, nil
	}
	end := start + d.Pager.Limit
	if d.Pager.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *ProductRepository) AdjustStock(_ context.Context, id string, delta int, opts product.AdjustOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return product.ErrProductNotFound
	}
	if !opts.AllowNegative && delta < 0 && p.Stock+delta < 0 {
		return product.ErrInsufficientStock
	}
	p.Stock += delta
	p.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepository) SaveReview(_ context.Context, productID string, review product.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return product.ErrProductNotFound
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
	p.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepository) DeleteReview(_ context.Context, productID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return product.ErrProductNotFound
	}

	kept := p.Reviews[:0]
	for _, existing := range p.Reviews {
		if existing.UserID != userID {
			kept = append(kept, existing)
		}
	}
	p.Reviews = kept
	p.RecalculateRatings()
	p.UpdatedAt = time.Now()
	return nil
}

func matchesDescriptor(p *product.Product, d *listing.Descriptor) bool {
	if d.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(d.Search)) {
		return false
	}

	for field, conds := range d.Filters {
		value, ok := fieldValue(p, field)
		if !ok {
			return false
		}
		for _, cond := range conds {
			if !matchCondition(value, cond) {
				return false
			}
		}
	}
	return true
}

func fieldValue(p *product.Product, field string) (interface{}, bool) {
	switch field {
	case "name":
		return p.Name, true
	case "price":
		return p.Price, true
	case "category":
		return p.Category, true
	case "brand":
		return p.Brand, true
	case "stock":
		return float64(p.Stock), true
	case "ratings":
		return p.Ratings, true
	default:
		return nil, false
	}
}

func matchCondition(value interface{}, cond listing.Condition) bool {
	lhs, lhsNum := value.(float64)
	rhs, rhsNum := cond.Value.(float64)

	switch cond.Op {
	case listing.OpEq:
		if lhsNum && rhsNum {
			return lhs == rhs
		}
		return value == cond.Value
	case listing.OpGt:
		return lhsNum && rhsNum && lhs > rhs
	case listing.OpGte:
		return lhsNum && rhsNum && lhs >= rhs
	case listing.OpLt:
		return lhsNum && rhsNum && lhs < rhs
	case listing.OpLte:
		return lhsNum && rhsNum && lhs <= rhs
	default:
		return false
	}
}

var _ product.Repository = (*ProductRepository)(nil)
