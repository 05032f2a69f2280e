package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/service"
	"charity-care-portal/pkg/validator"
)

// Slot is one clinic time on the booking form.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type AppointmentUsecase interface {
	List(ctx context.Context) ([]entity.Appointment, error)
	Slots(ctx context.Context, doctorID, date string) ([]Slot, error)
	Book(ctx context.Context, formID string, values validator.Values) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Appointment, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo domainRepo.AppointmentRepository
	doctorRepo      domainRepo.DoctorRepository
	formRepo        domainRepo.FormStateRepository
	visitorRepo     domainRepo.VisitorRepository
	audit           service.AuditService
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo domainRepo.AppointmentRepository,
	doctorRepo domainRepo.DoctorRepository,
	formRepo domainRepo.FormStateRepository,
	visitorRepo domainRepo.VisitorRepository,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		formRepo:        formRepo,
		visitorRepo:     visitorRepo,
		audit:           audit,
		now:             time.Now,
	}
}

func (u *appointmentUsecase) List(ctx context.Context) ([]entity.Appointment, error) {
	session, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return service.FilterVisible(session, appointments)
}

// Slots lists every clinic slot on date with its availability for doctorID.
func (u *appointmentUsecase) Slots(ctx context.Context, doctorID, date string) ([]Slot, error) {
	if doctorID == "" || date == "" {
		return nil, ErrMissingRouteParam
	}
	day, err := time.Parse(form.DateLayout, date)
	if err != nil {
		return nil, validator.Errors{{Field: "appointmentDate", Message: "Invalid date"}}
	}

	taken, err := u.doctorRepo.UnavailableSlots(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to load availability for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	busy := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		busy[t] = struct{}{}
	}
	slots := make([]Slot, 0, len(form.ClinicSlots))
	for _, t := range form.ClinicSlots {
		_, isBusy := busy[t]
		slots = append(slots, Slot{Time: t, Available: !isBusy})
	}
	return slots, nil
}

// Book validates the form, rejects a slot the doctor already has taken, and
// creates the appointment.
func (u *appointmentUsecase) Book(ctx context.Context, formID string, values validator.Values) (*entity.Appointment, error) {
	request, err := validate(form.AppointmentForm(u.now()), values)
	if err != nil {
		return nil, err
	}

	var appointment *entity.Appointment
	err = submitOnce(ctx, u.formRepo, u.log, formID, func() error {
		taken, err := u.doctorRepo.UnavailableSlots(ctx, request.DoctorID, request.AppointmentDate)
		if err != nil {
			u.log.Warnf("Failed to load availability for doctor %s: %+v", request.DoctorID, err)
			return err
		}
		for _, t := range taken {
			if t == request.AppointmentTime {
				return validator.Errors{{Field: "appointmentTime", Message: "This time slot is not available"}}
			}
		}

		appointment, err = u.appointmentRepo.Create(ctx, &request)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.audit.Record(ctx, auditEvent(ctx, entity.AuditActionAppointmentCreate, map[string]interface{}{
		"appointment_id": appointment.ID,
		"doctor_id":      request.DoctorID,
	}))
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticeAppointmentBooked))
	return appointment, nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id, status string) (*entity.Appointment, error) {
	if id == "" {
		return nil, ErrMissingRouteParam
	}
	parsed, ok := entity.ParseAppointmentStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", id, err)
		return nil, err
	}

	u.audit.Record(ctx, auditEvent(ctx, entity.AuditActionAppointmentStatus, map[string]interface{}{
		"appointment_id": id,
		"status":         string(parsed),
	}))
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticeStatusUpdated))
	return appointment, nil
}
