package repository

import (
	"context"

	"charity-care-portal/internal/converter"
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/apiclient"
)

type assistanceRepository struct {
	client *apiclient.Client
}

func NewAssistanceRepository(client *apiclient.Client) domainRepo.AssistanceRepository {
	return &assistanceRepository{client: client}
}

func (r *assistanceRepository) FindAll(ctx context.Context) ([]entity.AssistanceRequest, error) {
	var resp []dto.AssistanceResponse
	if err := r.client.Get(ctx, "/assistance", nil, &resp); err != nil {
		return nil, err
	}
	return converter.AssistanceResponsesToEntities(resp), nil
}

func (r *assistanceRepository) Create(ctx context.Context, submission *entity.AssistanceSubmission) (*entity.AssistanceRequest, error) {
	var resp dto.AssistanceResponse
	if err := r.client.Post(ctx, "/assistance", converter.AssistanceSubmissionToDTO(submission), &resp); err != nil {
		return nil, err
	}
	request := converter.AssistanceResponseToEntity(&resp)
	return &request, nil
}

func (r *assistanceRepository) UpdateStatus(ctx context.Context, id string, status entity.AssistanceStatus) (*entity.AssistanceRequest, error) {
	var resp dto.AssistanceResponse
	req := dto.UpdateStatusRequest{Status: string(status)}
	if err := r.client.Patch(ctx, apiclient.Path("assistance", id, "status"), req, &resp); err != nil {
		return nil, err
	}
	request := converter.AssistanceResponseToEntity(&resp)
	return &request, nil
}
