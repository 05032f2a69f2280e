package repository

import (
	"context"
	"time"

	"charity-care-portal/internal/domain/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error)
	// UnavailableSlots returns the booked HH:MM slots of a doctor on date.
	UnavailableSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error)
}
