package handler

import (
	"net/http"

	"charity-care-portal/internal/usecase"
)

type ProfileHandler struct {
	renderer       *Renderer
	profileUsecase usecase.ProfileUsecase
	chatbotUsecase usecase.ChatbotUsecase
}

func NewProfileHandler(renderer *Renderer, profileUsecase usecase.ProfileUsecase, chatbotUsecase usecase.ChatbotUsecase) *ProfileHandler {
	return &ProfileHandler{
		renderer:       renderer,
		profileUsecase: profileUsecase,
		chatbotUsecase: chatbotUsecase,
	}
}

func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "profile", TitleKey: "Profile", FormID: formIDFromQuery(r)}

	user, err := h.profileUsecase.Get(r.Context())
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = user
	h.renderer.Page(w, r, http.StatusOK, page)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "profile", TitleKey: "Profile"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	if _, err := h.profileUsecase.Update(r.Context(), sub.FormID, sub.Values); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, "/profile")
}

func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "change_password", TitleKey: "Profile"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	if err := h.profileUsecase.ChangePassword(r.Context(), sub.FormID, sub.Values); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, "/profile")
}

func (h *ProfileHandler) Chat(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "chatbot", TitleKey: "AI Assistant", FormID: formIDFromQuery(r)}

	history, err := h.chatbotUsecase.History(r.Context())
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = history
	h.renderer.Page(w, r, http.StatusOK, page)
}

// SendChat posts a message to the assistant and renders its reply.
func (h *ProfileHandler) SendChat(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "chatbot", TitleKey: "AI Assistant"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	reply, err := h.chatbotUsecase.Send(r.Context(), sub.FormID, sub.Values)
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = reply
	h.renderer.Page(w, r, http.StatusOK, page)
}
