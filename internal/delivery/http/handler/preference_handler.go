package handler

import (
	"net/http"

	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/internal/usecase"
)

// PreferenceHandler changes language and theme. Preferences belong to the
// visitor, so these work with or without a session.
type PreferenceHandler struct {
	renderer          *Renderer
	preferenceUsecase usecase.PreferenceUsecase
}

func NewPreferenceHandler(renderer *Renderer, preferenceUsecase usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{
		renderer:          renderer,
		preferenceUsecase: preferenceUsecase,
	}
}

func (h *PreferenceHandler) Language(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(sub string) (entity.Preferences, error) {
		if sub == "" {
			return h.preferenceUsecase.ToggleLanguage(r.Context())
		}
		return h.preferenceUsecase.SetLanguage(r.Context(), sub)
	}, "language")
}

func (h *PreferenceHandler) Theme(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(sub string) (entity.Preferences, error) {
		if sub == "" {
			return h.preferenceUsecase.ToggleTheme(r.Context())
		}
		return h.preferenceUsecase.SetTheme(r.Context(), sub)
	}, "theme")
}

// apply sets field to the submitted value, or toggles it when none is given.
func (h *PreferenceHandler) apply(w http.ResponseWriter, r *http.Request, change func(value string) (entity.Preferences, error), field string) {
	page := Page{View: "preferences"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	prefs, err := change(sub.Values.Get(field))
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = prefs
	h.renderer.Page(w, r, http.StatusOK, page)
}
