package handler

import (
	"net/http"

	"charity-care-portal/internal/usecase"
)

// PageHandler serves the landing page, the public information pages and the
// role-specific dashboard.
type PageHandler struct {
	renderer         *Renderer
	dashboardUsecase usecase.DashboardUsecase
}

func NewPageHandler(renderer *Renderer, dashboardUsecase usecase.DashboardUsecase) *PageHandler {
	return &PageHandler{
		renderer:         renderer,
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, Page{
		View:     "landing",
		TitleKey: "Home",
		Data: map[string]interface{}{
			"programs": programs[:3],
			"services": services,
		},
	})
}

func (h *PageHandler) Programs(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, Page{View: "programs", TitleKey: "Programs", Data: programs})
}

func (h *PageHandler) Services(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, Page{View: "services", TitleKey: "Services", Data: services})
}

func (h *PageHandler) Organizations(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, Page{View: "organizations", TitleKey: "Organizations", Data: organizations})
}

// Dashboard renders the dashboard of the session role. An unrecognised role
// gets the invalid_role view, never a default dashboard.
// @Summary Role dashboard
// @Tags Pages
// @Produce json
// @Success 200 {object} dto.View
// @Router /dashboard [get]
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "dashboard", TitleKey: "Dashboard"}

	dashboard, err := h.dashboardUsecase.Get(r.Context())
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.View = dashboard.View.Name
	page.TitleKey = dashboard.View.TitleKey
	page.Data = dashboard.Widgets
	h.renderer.Page(w, r, http.StatusOK, page)
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.NotFound(w, r)
}
