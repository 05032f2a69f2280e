package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/internal/usecase"
)

type PatientHandler struct {
	renderer       *Renderer
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(renderer *Renderer, patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{
		renderer:       renderer,
		patientUsecase: patientUsecase,
	}
}

// List renders the patients page
// @Summary List patients
// @Tags Patients
// @Produce json
// @Param search query string false "Search by name"
// @Param verified query bool false "Filter by verification"
// @Success 200 {object} dto.View
// @Router /patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "patients", TitleKey: "Patients"}

	filter := entity.PatientFilter{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("verified"); raw != "" {
		if verified, err := strconv.ParseBool(raw); err == nil {
			filter.IsVerified = &verified
		}
	}

	patients, err := h.patientUsecase.List(r.Context(), filter)
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = patients
	h.renderer.Page(w, r, http.StatusOK, page)
}

func (h *PatientHandler) Verify(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "patients", TitleKey: "Patients"}

	if err := h.patientUsecase.Verify(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, "/patients")
}
