package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"charity-care-portal/internal/usecase"
)

type NotificationHandler struct {
	renderer            *Renderer
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(renderer *Renderer, notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		renderer:            renderer,
		notificationUsecase: notificationUsecase,
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "notifications", TitleKey: "Notifications"}

	list, err := h.notificationUsecase.List(r.Context())
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = list
	h.renderer.Page(w, r, http.StatusOK, page)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "notifications", TitleKey: "Notifications"}

	unread, err := h.notificationUsecase.MarkAsRead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = map[string]int{"unread_count": unread}
	h.renderer.Page(w, r, http.StatusOK, page)
}

func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "notifications", TitleKey: "Notifications"}

	if err := h.notificationUsecase.MarkAllAsRead(r.Context()); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = map[string]int{"unread_count": 0}
	h.renderer.Page(w, r, http.StatusOK, page)
}
