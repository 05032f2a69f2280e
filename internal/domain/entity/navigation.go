package entity

// NavigationEntry is one sidebar link. A nil RequiredRoles means any
// authenticated session may follow it.
type NavigationEntry struct {
	Path          string `json:"path"`
	LabelKey      string `json:"label_key"`
	RequiredRoles []Role `json:"required_roles,omitempty"`
}

// Record is implemented by every record type that is listed on role-filtered pages.
type Record interface {
	// OwnerID is the patient (or donor) the record belongs to.
	OwnerID() string
	// AssignedTo reports whether doctorID is the assigned party for the record.
	AssignedTo(doctorID string) bool
	// FinanciallyFlagged reports whether the record needs financial support
	// or has already been approved for it.
	FinanciallyFlagged() bool
}
