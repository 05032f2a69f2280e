package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateDonationRequest is sent to POST /donations.
type CreateDonationRequest struct {
	Amount        json.Number `json:"amount"`
	DonorName     string      `json:"donorName"`
	DonorEmail    string      `json:"donorEmail"`
	DonorPhone    string      `json:"donorPhone"`
	Message       string      `json:"message,omitempty"`
	PaymentMethod string      `json:"paymentMethod"`
	IsAnonymous   bool        `json:"isAnonymous"`
	CampaignID    string      `json:"campaignId,omitempty"`
}

type DonationResponse struct {
	ID            string          `json:"id" validate:"required"`
	DonorID       string          `json:"donorId"`
	DonorName     string          `json:"donorName"`
	CampaignID    string          `json:"campaignId,omitempty"`
	CampaignTitle string          `json:"campaignTitle,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	IsAnonymous   bool            `json:"isAnonymous"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt"`
}
