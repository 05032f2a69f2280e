package dto

// PatientResponse is one entry of GET /patients.
type PatientResponse struct {
	ID               string `json:"id" validate:"required"`
	UserID           string `json:"userId"`
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Condition        string `json:"condition"`
	EconomicStatus   string `json:"economicStatus"`
	IsVerified       bool   `json:"isVerified"`
	AssignedDoctorID string `json:"assignedDoctorId,omitempty"`
	RegisteredAt     string `json:"registeredAt"`
	LastVisit        string `json:"lastVisit,omitempty"`
}
