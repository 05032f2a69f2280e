package entity

import (
	"strings"
	"time"
)

// ConditionHealthy is the sentinel the backend sends for patients with no
// medical condition on file. An empty condition is treated the same way.
const ConditionHealthy = "healthy"

type EconomicStatus string

const (
	EconomicVeryPoor EconomicStatus = "very_poor"
	EconomicPoor     EconomicStatus = "poor"
	EconomicMiddle   EconomicStatus = "middle"
)

// PatientRecord is a patient as listed on the patients page.
type PatientRecord struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	FullName         string         `json:"full_name"`
	Age              int            `json:"age"`
	Condition        string         `json:"condition"`
	EconomicStatus   EconomicStatus `json:"economic_status"`
	IsVerified       bool           `json:"is_verified"`
	AssignedDoctorID string         `json:"assigned_doctor_id,omitempty"`
	RegisteredAt     time.Time      `json:"registered_at"`
	LastVisit        *time.Time     `json:"last_visit,omitempty"`
}

// IsHealthy reports whether the record carries the no-condition sentinel.
func (p PatientRecord) IsHealthy() bool {
	condition := strings.ToLower(strings.TrimSpace(p.Condition))
	return condition == "" || condition == ConditionHealthy
}

// NeedsFinancialSupport is true for the two lowest economic brackets.
func (p PatientRecord) NeedsFinancialSupport() bool {
	return p.EconomicStatus == EconomicVeryPoor || p.EconomicStatus == EconomicPoor
}

func (p PatientRecord) OwnerID() string {
	return p.UserID
}

// AssignedTo: a doctor is responsible for every patient with a condition that
// is either unassigned (triage pool) or assigned to them.
func (p PatientRecord) AssignedTo(doctorID string) bool {
	if p.IsHealthy() {
		return false
	}
	return p.AssignedDoctorID == "" || p.AssignedDoctorID == doctorID
}

func (p PatientRecord) FinanciallyFlagged() bool {
	return p.NeedsFinancialSupport() || p.IsVerified
}

// PatientFilter narrows the backend query for the patients page.
type PatientFilter struct {
	Search     string
	IsVerified *bool
}
