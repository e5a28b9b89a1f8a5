package memory

import (
	"context"
	"sync"
	"time"

	"shopapi/domain/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is an in-memory user store.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*user.User
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*user.User)}
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = user.RoleUser
	}

	clone := *u
	r.users[u.ID.Hex()] = &clone
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepository) FindAll(_ context.Context) ([]*user.User, error) {
	return r.filter(func(*user.User) bool { return true })
}

func (r *UserRepository) FindByRole(_ context.Context, role string) ([]*user.User, error) {
	return r.filter(func(u *user.User) bool { return u.Role == role })
}

func (r *UserRepository) filter(keep func(*user.User) bool) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*user.User{}
	for _, u := range r.users {
		if keep(u) {
			clone := *u
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *UserRepository) Update(_ context.Context, id string, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	existing.Name = u.Name
	existing.Email = u.Email
	existing.Role = u.Role
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

var _ user.Repository = (*UserRepository)(nil)
