package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// AttachmentPayload carries a staged file; Content is base64 encoded.
type AttachmentPayload struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Content  string `json:"content"`
}

// CreateAssistanceRequest is sent to POST /assistance.
type CreateAssistanceRequest struct {
	RequestType      string              `json:"requestType"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	RequestedAmount  json.Number         `json:"requestedAmount"`
	Urgency          string              `json:"urgency"`
	ContactPhone     string              `json:"contactPhone"`
	MedicalCondition string              `json:"medicalCondition"`
	Attachments      []AttachmentPayload `json:"attachments,omitempty"`
}

type AssistanceResponse struct {
	ID               string          `json:"id" validate:"required"`
	PatientID        string          `json:"patientId"`
	PatientName      string          `json:"patientName"`
	ReviewerID       string          `json:"reviewerId,omitempty"`
	RequestType      string          `json:"requestType"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	MedicalCondition string          `json:"medicalCondition"`
	RequestedAmount  decimal.Decimal `json:"requestedAmount"`
	RaisedAmount     decimal.Decimal `json:"raisedAmount"`
	Status           string          `json:"status"`
	Urgency          string          `json:"urgency"`
	SubmittedAt      string          `json:"submittedAt"`
	ApprovedBy       string          `json:"approvedBy,omitempty"`
}
