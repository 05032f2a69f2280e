package converter

import (
	"time"

	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
)

const (
	dateLayout = "2006-01-02"
	slotLayout = "15:04"
)

func AppointmentResponseToEntity(resp *dto.AppointmentResponse) entity.Appointment {
	scheduledAt := parseTime(resp.AppointmentDate)
	if slot, err := time.Parse(slotLayout, resp.AppointmentTime); err == nil && !scheduledAt.IsZero() {
		y, m, d := scheduledAt.Date()
		scheduledAt = time.Date(y, m, d, slot.Hour(), slot.Minute(), 0, 0, scheduledAt.Location())
	}

	status, ok := entity.ParseAppointmentStatus(resp.Status)
	if !ok {
		status = entity.AppointmentScheduled
	}

	return entity.Appointment{
		ID:          resp.ID,
		PatientID:   resp.PatientID,
		PatientName: resp.PatientName,
		DoctorID:    resp.DoctorID,
		DoctorName:  resp.DoctorName,
		Specialty:   resp.Specialty,
		ScheduledAt: scheduledAt,
		Status:      status,
		Type:        resp.Type,
	}
}

func AppointmentResponsesToEntities(resps []dto.AppointmentResponse) []entity.Appointment {
	appointments := make([]entity.Appointment, 0, len(resps))
	for i := range resps {
		appointments = append(appointments, AppointmentResponseToEntity(&resps[i]))
	}
	return appointments
}

func AppointmentRequestToDTO(req *entity.AppointmentRequest) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate.Format(dateLayout),
		AppointmentTime: req.AppointmentTime,
		PatientName:     req.PatientName,
		PatientPhone:    req.PatientPhone,
		PatientAge:      req.PatientAge,
		Symptoms:        req.Symptoms,
		Notes:           req.Notes,
	}
}
