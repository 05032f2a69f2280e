package repository

import (
	"context"

	"charity-care-portal/internal/converter"
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/apiclient"
)

type donationRepository struct {
	client *apiclient.Client
}

func NewDonationRepository(client *apiclient.Client) domainRepo.DonationRepository {
	return &donationRepository{client: client}
}

func (r *donationRepository) FindAll(ctx context.Context) ([]entity.Donation, error) {
	var resp []dto.DonationResponse
	if err := r.client.Get(ctx, "/donations", nil, &resp); err != nil {
		return nil, err
	}
	return converter.DonationResponsesToEntities(resp), nil
}

func (r *donationRepository) Create(ctx context.Context, submission *entity.DonationSubmission) (*entity.Donation, error) {
	var resp dto.DonationResponse
	if err := r.client.Post(ctx, "/donations", converter.DonationSubmissionToDTO(submission), &resp); err != nil {
		return nil, err
	}
	donation := converter.DonationResponseToEntity(&resp)
	return &donation, nil
}
