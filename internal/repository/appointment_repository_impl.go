package repository

import (
	"context"

	"charity-care-portal/internal/converter"
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/apiclient"
)

type appointmentRepository struct {
	client *apiclient.Client
}

func NewAppointmentRepository(client *apiclient.Client) domainRepo.AppointmentRepository {
	return &appointmentRepository{client: client}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var resp []dto.AppointmentResponse
	if err := r.client.Get(ctx, "/appointments", nil, &resp); err != nil {
		return nil, err
	}
	return converter.AppointmentResponsesToEntities(resp), nil
}

func (r *appointmentRepository) Create(ctx context.Context, request *entity.AppointmentRequest) (*entity.Appointment, error) {
	var resp dto.AppointmentResponse
	if err := r.client.Post(ctx, "/appointments", converter.AppointmentRequestToDTO(request), &resp); err != nil {
		return nil, err
	}
	appointment := converter.AppointmentResponseToEntity(&resp)
	return &appointment, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	var resp dto.AppointmentResponse
	req := dto.UpdateStatusRequest{Status: string(status)}
	if err := r.client.Patch(ctx, apiclient.Path("appointments", id, "status"), req, &resp); err != nil {
		return nil, err
	}
	appointment := converter.AppointmentResponseToEntity(&resp)
	return &appointment, nil
}
