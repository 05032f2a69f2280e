package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/usecase"
)

type AppointmentHandler struct {
	renderer           *Renderer
	appointmentUsecase usecase.AppointmentUsecase
	directoryUsecase   usecase.DirectoryUsecase
}

func NewAppointmentHandler(
	renderer *Renderer,
	appointmentUsecase usecase.AppointmentUsecase,
	directoryUsecase usecase.DirectoryUsecase,
) *AppointmentHandler {
	return &AppointmentHandler{
		renderer:           renderer,
		appointmentUsecase: appointmentUsecase,
		directoryUsecase:   directoryUsecase,
	}
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "appointments", TitleKey: "Appointments"}

	appointments, err := h.appointmentUsecase.List(r.Context())
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = appointments
	h.renderer.Page(w, r, http.StatusOK, page)
}

// BookingForm renders the booking form with the doctor list and clinic slots.
func (h *AppointmentHandler) BookingForm(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "appointment_form", TitleKey: "Appointments", FormID: formIDFromQuery(r)}

	doctors, err := h.directoryUsecase.Doctors(r.Context(), doctorFilter(r))
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = map[string]interface{}{
		"doctors": doctors,
		"slots":   form.ClinicSlots,
	}
	h.renderer.Page(w, r, http.StatusOK, page)
}

// Availability lists the clinic slots of a doctor on a date.
// @Summary Doctor availability
// @Tags Appointments
// @Produce json
// @Param doctorId query string true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.View
// @Router /appointments/availability [get]
func (h *AppointmentHandler) Availability(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "appointment_availability"}
	query := r.URL.Query()

	slots, err := h.appointmentUsecase.Slots(r.Context(), query.Get("doctorId"), query.Get("date"))
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = slots
	h.renderer.Page(w, r, http.StatusOK, page)
}

// Book handles the booking form
// @Summary Book an appointment
// @Tags Appointments
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 303 {object} response.RedirectBody
// @Failure 409 {object} dto.View
// @Failure 422 {object} dto.View
// @Router /appointments [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "appointment_form", TitleKey: "Appointments"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	if _, err := h.appointmentUsecase.Book(r.Context(), sub.FormID, sub.Values); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, "/appointments")
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "appointments", TitleKey: "Appointments"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	if _, err := h.appointmentUsecase.UpdateStatus(r.Context(), mux.Vars(r)["id"], sub.Values.Get("status")); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, "/appointments")
}
