package dto

// CreateAppointmentRequest is sent to POST /appointments.
type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	PatientName     string `json:"patientName"`
	PatientPhone    string `json:"patientPhone"`
	PatientAge      int    `json:"patientAge"`
	Symptoms        string `json:"symptoms"`
	Notes           string `json:"notes,omitempty"`
}

type AppointmentResponse struct {
	ID              string `json:"id" validate:"required"`
	PatientID       string `json:"patientId"`
	PatientName     string `json:"patientName"`
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
	Specialty       string `json:"specialty"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Status          string `json:"status"`
	Type            string `json:"type"`
}

// UpdateStatusRequest is shared by every PATCH .../status endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AvailabilityResponse is returned by GET /doctors/{id}/availability.
type AvailabilityResponse struct {
	Date        string   `json:"date"`
	BookedSlots []string `json:"bookedSlots"`
}
