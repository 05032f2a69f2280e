package entity

import "time"

type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountInactive  AccountStatus = "inactive"
	AccountSuspended AccountStatus = "suspended"
)

// UserAccount is a platform account as seen by administrators.
type UserAccount struct {
	ID        string        `json:"id"`
	FullName  string        `json:"full_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Role      Role          `json:"role"`
	Status    AccountStatus `json:"status"`
	Verified  bool          `json:"verified"`
	CreatedAt time.Time     `json:"created_at"`
	LastLogin *time.Time    `json:"last_login,omitempty"`
}

// UserFilter is a domain-level filter for the users page.
type UserFilter struct {
	Search string
	Role   Role
	Status AccountStatus
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FullName string
	Phone    string
}

// PasswordChange carries the change-password form.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
}
