package handler

import (
	"net/http"

	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/internal/usecase"
)

type UserHandler struct {
	renderer    *Renderer
	userUsecase usecase.UserUsecase
}

func NewUserHandler(renderer *Renderer, userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		renderer:    renderer,
		userUsecase: userUsecase,
	}
}

// List renders the users page
// @Summary List users
// @Tags Users
// @Produce json
// @Param search query string false "Search by name or email"
// @Param role query string false "Role"
// @Param status query string false "Account status"
// @Success 200 {object} dto.View
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "users", TitleKey: "Users"}
	query := r.URL.Query()

	users, err := h.userUsecase.List(r.Context(), entity.UserFilter{
		Search: query.Get("search"),
		Role:   entity.Role(query.Get("role")),
		Status: entity.AccountStatus(query.Get("status")),
	})
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = users
	h.renderer.Page(w, r, http.StatusOK, page)
}

func (h *UserHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "analytics", TitleKey: "Analytics"}

	analytics, err := h.userUsecase.Analytics(r.Context())
	if err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	page.Data = analytics
	h.renderer.Page(w, r, http.StatusOK, page)
}
