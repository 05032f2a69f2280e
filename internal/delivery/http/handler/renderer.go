package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/internal/service"
	"charity-care-portal/internal/usecase"
	"charity-care-portal/pkg/apiclient"
	"charity-care-portal/pkg/i18n"
	"charity-care-portal/pkg/response"
	"charity-care-portal/pkg/validator"
)

const (
	ViewNotFound    = "not_found"
	ViewInvalidRole = "invalid_role"

	invalidRoleMessage = "Your account role is not recognised. Please contact support."
)

// Page describes one view to render.
type Page struct {
	View     string
	TitleKey string
	FormID   string
	Data     interface{}
	Errors   validator.Errors
	// Notices are shown in addition to the visitor's queued notices.
	Notices []entity.Notice
}

// Renderer turns a Page into the localized view document, adding the
// visitor's navigation, preferences and pending notices.
type Renderer struct {
	layout usecase.LayoutUsecase
	log    *logrus.Logger
}

func NewRenderer(layout usecase.LayoutUsecase, log *logrus.Logger) *Renderer {
	return &Renderer{
		layout: layout,
		log:    log,
	}
}

func (rd *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, page Page) {
	pc, err := rd.layout.Load(r.Context())
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	// an unknown role never falls through to a page, only to this error view
	if pc.InvalidRole && page.View != ViewNotFound {
		page, status = invalidRolePage(), http.StatusOK
	}

	lang := string(pc.Preferences.Language)
	view := dto.View{
		View:        page.View,
		Preferences: pc.Preferences,
		FormID:      page.FormID,
		Data:        page.Data,
	}
	if page.TitleKey != "" {
		view.Title = i18n.T(lang, page.TitleKey)
	}
	if pc.Session != nil {
		view.User = &dto.UserView{
			ID:    pc.Session.UserID,
			Name:  pc.Session.DisplayName,
			Email: pc.Session.Email,
			Role:  pc.Session.Role,
		}
	}
	for _, entry := range pc.Navigation {
		view.Navigation = append(view.Navigation, dto.NavItem{
			Path:          entry.Path,
			Label:         i18n.T(lang, entry.LabelKey),
			Active:        isActive(r.URL.Path, entry.Path),
			RequiredRoles: entry.RequiredRoles,
		})
	}
	for _, notice := range append(pc.Notices, page.Notices...) {
		view.Notices = append(view.Notices, localizeNotice(lang, notice))
	}
	for _, fe := range page.Errors {
		view.Errors = append(view.Errors, dto.FieldErrorView{
			Field:   fe.Field,
			Message: i18n.T(lang, fe.Message, fe.Args...),
		})
	}

	response.JSON(w, status, view)
}

func (rd *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rd.Page(w, r, http.StatusNotFound, Page{View: ViewNotFound, TitleKey: "Page not found"})
}

// Redirect sends the visitor elsewhere; queued notices ride along to the next view.
func (rd *Renderer) Redirect(w http.ResponseWriter, to string) {
	response.Redirect(w, to)
}

// Fail renders page again with err explained. Validation errors become inline
// field errors; backend failures become a notice and leave the form retryable.
func (rd *Renderer) Fail(w http.ResponseWriter, r *http.Request, page Page, err error) {
	var fieldErrs validator.Errors
	if errors.As(err, &fieldErrs) {
		page.Errors = fieldErrs
		rd.Page(w, r, http.StatusUnprocessableEntity, page)
		return
	}

	switch {
	case apiclient.IsUnauthenticated(err), errors.Is(err, service.ErrNoSession):
		rd.Redirect(w, service.PathLogin)
		return
	case errors.Is(err, entity.ErrInvalidRole):
		rd.Page(w, r, http.StatusOK, invalidRolePage())
		return
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		page.Notices = append(page.Notices, entity.Notice{Level: entity.NoticeError, Key: entity.NoticeSubmissionInFlight})
		rd.Page(w, r, http.StatusConflict, page)
		return
	case errors.Is(err, usecase.ErrMissingFormID),
		errors.Is(err, usecase.ErrMissingRouteParam),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPreference),
		errors.Is(err, usecase.ErrAttachmentNotFound),
		errors.Is(err, form.ErrUnknownQuickAmount),
		errors.Is(err, form.ErrUnsupportedBody):
		page.Notices = append(page.Notices, entity.Notice{Level: entity.NoticeError, Key: "Invalid request"})
		rd.Page(w, r, http.StatusBadRequest, page)
		return
	}

	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		page.Notices = append(page.Notices, apiErr.Notice())
		rd.Page(w, r, backendStatus(apiErr), page)
		return
	}

	rd.log.Warnf("Failed to render %s: %+v", page.View, err)
	page.Notices = append(page.Notices, entity.Notice{Level: entity.NoticeError, Key: entity.NoticeGenericError})
	rd.Page(w, r, http.StatusInternalServerError, page)
}

func invalidRolePage() Page {
	return Page{
		View:    ViewInvalidRole,
		Notices: []entity.Notice{{Level: entity.NoticeError, Key: invalidRoleMessage}},
	}
}

func backendStatus(err *apiclient.Error) int {
	switch err.Kind {
	case apiclient.KindForbidden:
		return http.StatusForbidden
	case apiclient.KindServer:
		return http.StatusBadGateway
	case apiclient.KindTransport:
		return http.StatusServiceUnavailable
	}
	if err.Status >= 400 && err.Status < 500 {
		return err.Status
	}
	return http.StatusBadRequest
}

func localizeNotice(lang string, notice entity.Notice) dto.NoticeView {
	message := notice.Text
	if notice.Key != "" {
		message = i18n.T(lang, notice.Key)
	}
	return dto.NoticeView{Level: notice.Level, Message: message}
}

func isActive(current, entry string) bool {
	return current == entry || strings.HasPrefix(current, entry+"/")
}
