package dto

// LoginRequest is sent to POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is sent to POST /auth/register.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse is the backend's user object. Role is kept raw.
type UserResponse struct {
	ID        string `json:"id" validate:"required"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role" validate:"required"`
	Status    string `json:"status"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
