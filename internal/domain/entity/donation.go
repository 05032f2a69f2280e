package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationConfirmed DonationStatus = "confirmed"
	DonationFailed    DonationStatus = "failed"
)

// Donation is a single contribution towards a campaign.
type Donation struct {
	ID            string          `json:"id"`
	DonorID       string          `json:"donor_id"`
	DonorName     string          `json:"donor_name"`
	CampaignID    string          `json:"campaign_id,omitempty"`
	CampaignTitle string          `json:"campaign_title,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	IsAnonymous   bool            `json:"is_anonymous"`
	Status        DonationStatus  `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (d Donation) OwnerID() string {
	return d.DonorID
}

// AssignedTo is always false: no doctor is a party to a donation.
func (d Donation) AssignedTo(string) bool {
	return false
}

func (d Donation) FinanciallyFlagged() bool {
	return true
}

// Campaign is the public fundraising projection of an assistance request.
type Campaign struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Target      decimal.Decimal `json:"target"`
	Raised      decimal.Decimal `json:"raised"`
	Progress    decimal.Decimal `json:"progress"`
}

// DonationSubmission is what the donation form submits to the backend.
type DonationSubmission struct {
	Amount        decimal.Decimal
	DonorName     string
	DonorEmail    string
	DonorPhone    string
	Message       string
	PaymentMethod string
	IsAnonymous   bool
	CampaignID    string
}
