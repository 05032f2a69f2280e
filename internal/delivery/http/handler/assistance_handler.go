package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/usecase"
	"charity-care-portal/pkg/validator"
)

type AssistanceHandler struct {
	renderer          *Renderer
	assistanceUsecase usecase.AssistanceUsecase
}

func NewAssistanceHandler(renderer *Renderer, assistanceUsecase usecase.AssistanceUsecase) *AssistanceHandler {
	return &AssistanceHandler{
		renderer:          renderer,
		assistanceUsecase: assistanceUsecase,
	}
}

func (h *AssistanceHandler) List(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "assistance", TitleKey: "Assistance"}

	requests, err := h.assistanceUsecase.List(r.Context())
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = requests
	h.renderer.Page(w, r, http.StatusOK, page)
}

func (h *AssistanceHandler) RequestForm(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "assistance_form", TitleKey: "Assistance", FormID: formIDFromQuery(r)}

	staged, err := h.assistanceUsecase.StagedAttachments(r.Context(), page.FormID)
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = h.formData(staged)
	h.renderer.Page(w, r, http.StatusOK, page)
}

// AddAttachments stages uploaded files on the form instance
// @Summary Stage attachments
// @Description Each file is checked on its own: jpeg, png, pdf or plain text, at most 5 MB
// @Tags Assistance
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} dto.View
// @Router /assistance/attachments [post]
func (h *AssistanceHandler) AddAttachments(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "assistance_form", TitleKey: "Assistance"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	staged, err := h.assistanceUsecase.AddAttachments(r.Context(), sub.FormID, sub.Uploads)
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = h.formData(staged)
	for _, rejection := range staged.Rejections {
		page.Errors = append(page.Errors, validator.FieldError{
			Field:   "attachments[" + rejection.Name + "]",
			Message: rejection.Reason,
		})
	}
	h.renderer.Page(w, r, http.StatusOK, page)
}

func (h *AssistanceHandler) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "assistance_form", TitleKey: "Assistance"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		h.renderer.Fail(w, r, page, usecase.ErrMissingRouteParam)
		return
	}

	staged, err := h.assistanceUsecase.RemoveAttachment(r.Context(), sub.FormID, index)
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = h.formData(staged)
	h.renderer.Page(w, r, http.StatusOK, page)
}

// Submit handles the assistance request form
// @Summary Submit an assistance request
// @Tags Assistance
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 303 {object} response.RedirectBody
// @Failure 409 {object} dto.View
// @Failure 422 {object} dto.View
// @Router /assistance [post]
func (h *AssistanceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "assistance_form", TitleKey: "Assistance"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	if _, err := h.assistanceUsecase.Submit(r.Context(), sub.FormID, sub.Values); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, "/assistance")
}

func (h *AssistanceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "assistance", TitleKey: "Assistance"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	if _, err := h.assistanceUsecase.UpdateStatus(r.Context(), mux.Vars(r)["id"], sub.Values.Get("status")); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, "/assistance")
}

func (h *AssistanceHandler) formData(staged *usecase.StagedAttachments) map[string]interface{} {
	return map[string]interface{}{
		"request_types":  form.RequestTypes,
		"urgency_levels": form.UrgencyLevels,
		"attachments":    staged,
	}
}
