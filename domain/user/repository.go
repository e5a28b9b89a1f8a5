package user

import "context"

// Repository is the user persistence contract.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	FindByRole(ctx context.Context, role string) ([]*User, error)
	Update(ctx context.Context, id string, u *User) error
	Delete(ctx context.Context, id string) error
}
