package handler

import (
	"net/http"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/service"
	"charity-care-portal/internal/usecase"
)

type AuthHandler struct {
	renderer    *Renderer
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(renderer *Renderer, authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		renderer:    renderer,
		authUsecase: authUsecase,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, Page{View: "login", TitleKey: "Login", FormID: newFormID()})
}

// Login handles the login form
// @Summary Login
// @Description Authenticate with email and password; on success the visitor is redirected to the dashboard
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 303 {object} response.RedirectBody
// @Failure 422 {object} dto.View
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	page := Page{View: "login", TitleKey: "Login"}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	if _, err := h.authUsecase.Login(r.Context(), sub.FormID, sub.Values); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, service.PathDashboard)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, Page{
		View:     "register",
		TitleKey: "Register",
		FormID:   newFormID(),
		Data:     map[string]interface{}{"roles": form.RegisterRoles},
	})
}

// Register handles the registration form
// @Summary Register
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 303 {object} response.RedirectBody
// @Failure 422 {object} dto.View
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	page := Page{
		View:     "register",
		TitleKey: "Register",
		Data:     map[string]interface{}{"roles": form.RegisterRoles},
	}
	sub, ok := h.renderer.readSubmission(w, r, &page)
	if !ok {
		return
	}

	if _, err := h.authUsecase.Register(r.Context(), sub.FormID, sub.Values); err != nil {
		h.renderer.Fail(w, r, page, err)
		return
	}

	h.renderer.Redirect(w, service.PathDashboard)
}

// Logout destroys the session; without one it just redirects.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUsecase.Logout(r.Context()); err != nil {
		h.renderer.Fail(w, r, Page{View: "logout"}, err)
		return
	}

	h.renderer.Redirect(w, service.PathLogin)
}
