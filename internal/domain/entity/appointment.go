package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	switch s := AppointmentStatus(raw); s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return s, true
	}
	return "", false
}

// Appointment is a patient visit with a volunteer doctor.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patient_id"`
	PatientName string            `json:"patient_name"`
	DoctorID    string            `json:"doctor_id"`
	DoctorName  string            `json:"doctor_name"`
	Specialty   string            `json:"specialty"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Status      AppointmentStatus `json:"status"`
	Type        string            `json:"type"`
}

func (a Appointment) OwnerID() string {
	return a.PatientID
}

func (a Appointment) AssignedTo(doctorID string) bool {
	return a.DoctorID != "" && a.DoctorID == doctorID
}

// FinanciallyFlagged is always false: appointments carry no funding state.
func (a Appointment) FinanciallyFlagged() bool {
	return false
}

// IsUpcoming checks if the appointment is still ahead of now
func (a Appointment) IsUpcoming(now time.Time) bool {
	return a.ScheduledAt.After(now) && a.Status != AppointmentCancelled && a.Status != AppointmentCompleted
}

// AppointmentRequest is what the booking form submits to the backend.
type AppointmentRequest struct {
	DoctorID        string
	AppointmentDate time.Time
	AppointmentTime string
	PatientName     string
	PatientPhone    string
	PatientAge      int
	Symptoms        string
	Notes           string
}
