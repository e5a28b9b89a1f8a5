package user

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateProfileRequest is the payload for editing the caller's own record.
// Empty fields leave the stored value untouched.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// RoleUpdateRequest is the admin payload for changing an account's role.
type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required,oneof=user manager admin"`
}
