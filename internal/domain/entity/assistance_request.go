package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssistanceStatus string

const (
	AssistancePending    AssistanceStatus = "pending"
	AssistanceInProgress AssistanceStatus = "in_progress"
	AssistanceApproved   AssistanceStatus = "approved"
	AssistanceRejected   AssistanceStatus = "rejected"
)

func ParseAssistanceStatus(raw string) (AssistanceStatus, bool) {
	switch s := AssistanceStatus(raw); s {
	case AssistancePending, AssistanceInProgress, AssistanceApproved, AssistanceRejected:
		return s, true
	}
	return "", false
}

// AssistanceRequest is a patient's request for medical or financial help.
type AssistanceRequest struct {
	ID               string           `json:"id"`
	PatientID        string           `json:"patient_id"`
	PatientName      string           `json:"patient_name"`
	ReviewerID       string           `json:"reviewer_id,omitempty"`
	RequestType      string           `json:"request_type"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	MedicalCondition string           `json:"medical_condition"`
	RequestedAmount  decimal.Decimal  `json:"requested_amount"`
	RaisedAmount     decimal.Decimal  `json:"raised_amount"`
	Status           AssistanceStatus `json:"status"`
	Urgency          string           `json:"urgency"`
	SubmittedAt      time.Time        `json:"submitted_at"`
	ApprovedBy       string           `json:"approved_by,omitempty"`
}

func (a AssistanceRequest) OwnerID() string {
	return a.PatientID
}

func (a AssistanceRequest) AssignedTo(doctorID string) bool {
	return a.ReviewerID != "" && a.ReviewerID == doctorID
}

// NeedsFinancialSupport is true while the request is open and not fully funded.
func (a AssistanceRequest) NeedsFinancialSupport() bool {
	open := a.Status == AssistancePending || a.Status == AssistanceInProgress
	return open && a.RaisedAmount.LessThan(a.RequestedAmount)
}

func (a AssistanceRequest) FinanciallyFlagged() bool {
	return a.NeedsFinancialSupport() || a.Status == AssistanceApproved
}

// Progress returns the funded percentage, capped at 100.
func (a AssistanceRequest) Progress() decimal.Decimal {
	if !a.RequestedAmount.IsPositive() {
		return decimal.Zero
	}
	pct := a.RaisedAmount.Div(a.RequestedAmount).Mul(decimal.NewFromInt(100)).Round(1)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return pct
}

// AssistanceSubmission is what the assistance form submits to the backend.
type AssistanceSubmission struct {
	RequestType      string
	Title            string
	Description      string
	RequestedAmount  decimal.Decimal
	Urgency          string
	ContactPhone     string
	MedicalCondition string
	Attachments      []Attachment
}

// Attachment is a validated file waiting to be submitted with a form.
type Attachment struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	MIME        string `json:"mime"`
	Fingerprint uint64 `json:"fingerprint"`
	Content     []byte `json:"content"`
}
