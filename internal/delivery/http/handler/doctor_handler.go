package handler

import (
	"net/http"

	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/internal/usecase"
)

// DirectoryHandler serves the doctor directory and the charity page.
type DirectoryHandler struct {
	renderer         *Renderer
	directoryUsecase usecase.DirectoryUsecase
}

func NewDirectoryHandler(renderer *Renderer, directoryUsecase usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{
		renderer:         renderer,
		directoryUsecase: directoryUsecase,
	}
}

func (h *DirectoryHandler) Doctors(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "doctors", TitleKey: "Doctors"}

	doctors, err := h.directoryUsecase.Doctors(r.Context(), doctorFilter(r))
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = doctors
	h.renderer.Page(w, r, http.StatusOK, page)
}

func (h *DirectoryHandler) Charity(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "charity", TitleKey: "Charity"}

	orgs, err := h.directoryUsecase.Organizations(r.Context())
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = orgs
	h.renderer.Page(w, r, http.StatusOK, page)
}

func doctorFilter(r *http.Request) entity.DoctorFilter {
	query := r.URL.Query()
	return entity.DoctorFilter{
		Specialty: query.Get("specialty"),
		Search:    query.Get("search"),
	}
}
