package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

type DonationRepository interface {
	FindAll(ctx context.Context) ([]entity.Donation, error)
	Create(ctx context.Context, submission *entity.DonationSubmission) (*entity.Donation, error)
}
