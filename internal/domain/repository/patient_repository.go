package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

type PatientRepository interface {
	FindAll(ctx context.Context, filter entity.PatientFilter) ([]entity.PatientRecord, error)
	Verify(ctx context.Context, id string) error
}
