package repository

import (
	"context"
	"net/url"
	"strconv"

	"charity-care-portal/internal/converter"
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/apiclient"
)

type patientRepository struct {
	client *apiclient.Client
}

func NewPatientRepository(client *apiclient.Client) domainRepo.PatientRepository {
	return &patientRepository{client: client}
}

func (r *patientRepository) FindAll(ctx context.Context, filter entity.PatientFilter) ([]entity.PatientRecord, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.IsVerified != nil {
		query.Set("isVerified", strconv.FormatBool(*filter.IsVerified))
	}

	var resp []dto.PatientResponse
	if err := r.client.Get(ctx, "/patients", query, &resp); err != nil {
		return nil, err
	}
	return converter.PatientResponsesToEntities(resp), nil
}

func (r *patientRepository) Verify(ctx context.Context, id string) error {
	return r.client.Patch(ctx, apiclient.Path("patients", id, "verify"), nil, nil)
}
