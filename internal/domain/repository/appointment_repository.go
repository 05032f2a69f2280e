package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	Create(ctx context.Context, request *entity.AppointmentRequest) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error)
}
