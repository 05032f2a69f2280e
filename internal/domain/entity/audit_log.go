package entity

import "time"

// AuditEvent is a structured trail entry for security-relevant portal actions.
type AuditEvent struct {
	Action    string                 `json:"action"`
	VisitorID string                 `json:"visitor_id"`
	UserID    string                 `json:"user_id,omitempty"`
	Role      Role                   `json:"role,omitempty"`
	Path      string                 `json:"path,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Common audit actions
const (
	AuditActionUserLogin         = "user.login"
	AuditActionUserLogout        = "user.logout"
	AuditActionUserRegister      = "user.register"
	AuditActionSessionForcedOut  = "session.forced_logout"
	AuditActionInvalidRole       = "access.invalid_role"
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentStatus = "appointment.status"
	AuditActionDonationCreate    = "donation.create"
	AuditActionAssistanceCreate  = "assistance.create"
	AuditActionAssistanceStatus  = "assistance.status"
	AuditActionPatientVerify     = "patient.verify"
	AuditActionProfileUpdate     = "profile.update"
	AuditActionPasswordChange    = "profile.password_change"
)
