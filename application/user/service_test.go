package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"shopapi/domain/user"
	"shopapi/infrastructure/persistence/memory"
)

func TestRegisterDefaultsToUserRole(t *testing.T) {
	svc := NewService(memory.NewUserRepository())

	u, err := svc.Register(context.Background(), RegisterRequest{Name: "Asha", Email: "asha@example.com"})
	require.NoError(t, err)
	require.Equal(t, user.RoleUser, u.Role)
	require.False(t, u.ID.IsZero())
}

func TestUpdateProfileKeepsRole(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, u.ID.Hex(), UpdateProfileRequest{Name: "Asha K"})
	require.NoError(t, err)
	require.Equal(t, "Asha K", updated.Name)
	require.Equal(t, "asha@example.com", updated.Email)
	require.Equal(t, user.RoleUser, updated.Role)
}

func TestListCustomersFiltersByRole(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewService(repo)
	ctx := context.Background()

	customer, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com"})
	require.NoError(t, err)
	admin, err := svc.Register(ctx, RegisterRequest{Name: "Ben", Email: "ben@example.com"})
	require.NoError(t, err)

	_, err = svc.UpdateUserRole(ctx, admin.ID.Hex(), RoleUpdateRequest{Role: user.RoleAdmin})
	require.NoError(t, err)

	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, customer.ID, customers[0].ID)

	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewService(memory.NewUserRepository())

	_, err := svc.GetUser(context.Background(), "missing")
	require.ErrorIs(t, err, user.ErrUserNotFound)
}
