package entity

import "time"

// Session is the live authenticated identity of one visitor.
// Role keeps the raw value sent by the backend so that an unrecognised
// role can be surfaced instead of silently mapped onto a known one.
type Session struct {
	UserID          string    `json:"user_id"`
	Role            Role      `json:"role"`
	DisplayName     string    `json:"display_name"`
	Email           string    `json:"email"`
	CredentialToken string    `json:"credential_token"`
	CreatedAt       time.Time `json:"created_at"`
}

// HasAnyRole reports whether the session role is one of roles.
func (s *Session) HasAnyRole(roles ...Role) bool {
	if s == nil {
		return false
	}
	return ContainsRole(roles, s.Role)
}

// Registration is the payload sent to the backend when creating an account.
type Registration struct {
	FullName string
	Email    string
	Phone    string
	Password string
	Role     Role
}

// Notice is a transient, dismissible message shown with the next rendered view.
// Key is looked up in the message catalog; Text is shown verbatim (server messages).
type Notice struct {
	Level NoticeLevel `json:"level"`
	Key   string      `json:"key,omitempty"`
	Text  string      `json:"text,omitempty"`
}

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice keys shared between the guard, the API adapter and handlers.
const (
	NoticeInsufficientPermissions = "Access denied. Insufficient permissions."
	NoticeSessionExpired          = "Session expired. Please login again."
	NoticeServerError             = "Server error. Please try again later."
	NoticeGenericError            = "Something went wrong"
	NoticeLoginSuccess            = "Login successful"
	NoticeRegisterSuccess         = "Registration successful"
	NoticeLogoutSuccess           = "You have been logged out"
	NoticeAppointmentBooked       = "Appointment booked. We will contact you to confirm soon."
	NoticeDonationReceived        = "Thank you for your donation! We will contact you to confirm soon."
	NoticeAssistanceSubmitted     = "Assistance request submitted successfully!"
	NoticePasswordChanged         = "Password changed successfully"
	NoticeProfileUpdated          = "Profile updated successfully"
	NoticeSubmissionInFlight      = "This form is already being submitted"
	NoticeStatusUpdated           = "Status updated"
	NoticePatientVerified         = "Patient verified"
)
