package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

type CharityRepository interface {
	FindAll(ctx context.Context) ([]entity.CharityOrganization, error)
}
