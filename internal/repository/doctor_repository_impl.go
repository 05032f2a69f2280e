package repository

import (
	"context"
	"net/url"
	"time"

	"charity-care-portal/internal/converter"
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/apiclient"
)

type doctorRepository struct {
	client *apiclient.Client
}

func NewDoctorRepository(client *apiclient.Client) domainRepo.DoctorRepository {
	return &doctorRepository{client: client}
}

func (r *doctorRepository) FindAll(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	query := url.Values{}
	if filter.Specialty != "" {
		query.Set("specialty", filter.Specialty)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var resp []dto.DoctorResponse
	if err := r.client.Get(ctx, "/doctors", query, &resp); err != nil {
		return nil, err
	}
	return converter.DoctorResponsesToEntities(resp), nil
}

func (r *doctorRepository) UnavailableSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	query := url.Values{}
	query.Set("date", date.Format("2006-01-02"))

	var resp dto.AvailabilityResponse
	if err := r.client.Get(ctx, apiclient.Path("doctors", doctorID, "availability"), query, &resp); err != nil {
		return nil, err
	}
	return resp.BookedSlots, nil
}

type charityRepository struct {
	client *apiclient.Client
}

func NewCharityRepository(client *apiclient.Client) domainRepo.CharityRepository {
	return &charityRepository{client: client}
}

func (r *charityRepository) FindAll(ctx context.Context) ([]entity.CharityOrganization, error) {
	var resp []dto.CharityResponse
	if err := r.client.Get(ctx, "/charity", nil, &resp); err != nil {
		return nil, err
	}
	return converter.CharityResponsesToEntities(resp), nil
}
