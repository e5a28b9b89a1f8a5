// Package user exposes profile operations and the admin user surface.
package user

import (
	"context"

	"shopapi/domain/user"
)

// Service coordinates user operations.
type Service struct {
	users user.Repository
}

// NewService creates the user service.
func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Register stores a new account. The default role is "user".
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*user.User, error) {
	u := &user.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  user.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetProfile returns the calling user's own record.
func (s *Service) GetProfile(ctx context.Context, userID string) (*user.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile edits the calling user's name and email. The role is not
// editable here.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*user.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if err := s.users.Update(ctx, userID, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns every account (admin surface).
func (s *Service) ListUsers(ctx context.Context) ([]*user.User, error) {
	return s.users.FindAll(ctx)
}

// ListCustomers returns accounts with the plain user role (manager surface).
func (s *Service) ListCustomers(ctx context.Context) ([]*user.User, error) {
	return s.users.FindByRole(ctx, user.RoleUser)
}

// GetUser returns any account by id (admin surface).
func (s *Service) GetUser(ctx context.Context, id string) (*user.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateUserRole changes an account's role (admin surface).
func (s *Service) UpdateUserRole(ctx context.Context, id string, req RoleUpdateRequest) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Role = req.Role
	if err := s.users.Update(ctx, id, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes an account (admin surface).
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
