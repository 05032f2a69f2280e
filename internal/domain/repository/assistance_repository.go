package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

type AssistanceRepository interface {
	FindAll(ctx context.Context) ([]entity.AssistanceRequest, error)
	Create(ctx context.Context, submission *entity.AssistanceSubmission) (*entity.AssistanceRequest, error)
	UpdateStatus(ctx context.Context, id string, status entity.AssistanceStatus) (*entity.AssistanceRequest, error)
}
