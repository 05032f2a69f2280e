package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"charity-care-portal/internal/delivery/http/handler"
	"charity-care-portal/internal/delivery/http/middleware"
	"charity-care-portal/internal/domain/entity"
)

type Handlers struct {
	Page         *handler.PageHandler
	Auth         *handler.AuthHandler
	Preference   *handler.PreferenceHandler
	Directory    *handler.DirectoryHandler
	Appointment  *handler.AppointmentHandler
	Assistance   *handler.AssistanceHandler
	Donation     *handler.DonationHandler
	Patient      *handler.PatientHandler
	Notification *handler.NotificationHandler
	User         *handler.UserHandler
	Profile      *handler.ProfileHandler
}

type Router struct {
	router            *mux.Router
	handlers          Handlers
	authMiddleware    *middleware.AuthMiddleware
	guardMiddleware   *middleware.GuardMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	guardMiddleware *middleware.GuardMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		handlers:          handlers,
		authMiddleware:    authMiddleware,
		guardMiddleware:   guardMiddleware,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	// Infrastructure
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Visitor actions (no guard)
	r.router.Handle("/logout", r.visitor(h.Auth.Logout)).Methods(http.MethodPost)
	r.router.Handle("/preferences/language", r.visitor(h.Preference.Language)).Methods(http.MethodPost)
	r.router.Handle("/preferences/theme", r.visitor(h.Preference.Theme)).Methods(http.MethodPost)

	// Public and guest-only pages
	r.router.Handle("/", r.page(h.Page.Landing)).Methods(http.MethodGet)
	r.router.Handle("/programs", r.page(h.Page.Programs)).Methods(http.MethodGet)
	r.router.Handle("/services", r.page(h.Page.Services)).Methods(http.MethodGet)
	r.router.Handle("/organizations", r.page(h.Page.Organizations)).Methods(http.MethodGet)
	r.router.Handle("/login", r.page(h.Auth.LoginPage)).Methods(http.MethodGet)
	r.router.Handle("/login", r.page(h.Auth.Login)).Methods(http.MethodPost)
	r.router.Handle("/register", r.page(h.Auth.RegisterPage)).Methods(http.MethodGet)
	r.router.Handle("/register", r.page(h.Auth.Register)).Methods(http.MethodPost)

	// Any session
	r.router.Handle("/dashboard", r.page(h.Page.Dashboard)).Methods(http.MethodGet)
	r.router.Handle("/profile", r.page(h.Profile.Show)).Methods(http.MethodGet)
	r.router.Handle("/profile", r.page(h.Profile.Update)).Methods(http.MethodPost)
	r.router.Handle("/profile/password", r.page(h.Profile.ChangePassword)).Methods(http.MethodPost)
	r.router.Handle("/chatbot", r.page(h.Profile.Chat)).Methods(http.MethodGet)
	r.router.Handle("/chatbot", r.page(h.Profile.SendChat)).Methods(http.MethodPost)
	r.router.Handle("/doctors", r.page(h.Directory.Doctors)).Methods(http.MethodGet)
	r.router.Handle("/notifications", r.page(h.Notification.List)).Methods(http.MethodGet)
	r.router.Handle("/notifications/read-all", r.page(h.Notification.MarkAllAsRead)).Methods(http.MethodPost)
	r.router.Handle("/notifications/{id}/read", r.page(h.Notification.MarkAsRead)).Methods(http.MethodPost)
	r.router.Handle("/donations", r.page(h.Donation.Overview)).Methods(http.MethodGet)
	r.router.Handle("/donations", r.page(h.Donation.Donate)).Methods(http.MethodPost)
	r.router.Handle("/donations/quick-amount", r.page(h.Donation.SelectQuickAmount)).Methods(http.MethodPost)
	r.router.Handle("/donations/amount", r.page(h.Donation.EditAmount)).Methods(http.MethodPost)

	// Role-restricted
	r.router.Handle("/appointments", r.page(h.Appointment.List)).Methods(http.MethodGet)
	r.router.Handle("/appointments/new", r.page(h.Appointment.BookingForm)).Methods(http.MethodGet)
	r.router.Handle("/appointments/availability", r.page(h.Appointment.Availability)).Methods(http.MethodGet)
	r.router.Handle("/appointments", r.page(h.Appointment.Book)).Methods(http.MethodPost)
	r.router.Handle("/appointments/{id}/status", r.page(h.Appointment.UpdateStatus, entity.RoleDoctor, entity.RoleAdmin)).Methods(http.MethodPatch)

	r.router.Handle("/assistance", r.page(h.Assistance.List)).Methods(http.MethodGet)
	r.router.Handle("/assistance/new", r.page(h.Assistance.RequestForm)).Methods(http.MethodGet)
	r.router.Handle("/assistance", r.page(h.Assistance.Submit)).Methods(http.MethodPost)
	r.router.Handle("/assistance/attachments", r.page(h.Assistance.AddAttachments)).Methods(http.MethodPost)
	r.router.Handle("/assistance/attachments/{index}", r.page(h.Assistance.RemoveAttachment)).Methods(http.MethodDelete)
	r.router.Handle("/assistance/{id}/status", r.page(h.Assistance.UpdateStatus, entity.RoleAdmin, entity.RoleCharityAdmin)).Methods(http.MethodPatch)

	r.router.Handle("/patients", r.page(h.Patient.List)).Methods(http.MethodGet)
	r.router.Handle("/patients/{id}/verify", r.page(h.Patient.Verify, entity.RoleAdmin, entity.RoleCharityAdmin)).Methods(http.MethodPost)

	r.router.Handle("/charity", r.page(h.Directory.Charity)).Methods(http.MethodGet)
	r.router.Handle("/users", r.page(h.User.List)).Methods(http.MethodGet)
	r.router.Handle("/analytics", r.page(h.User.Analytics)).Methods(http.MethodGet)

	r.router.NotFoundHandler = r.visitor(h.Page.NotFound)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// visitor identifies the visitor and logs the request, without a guard check.
func (r *Router) visitor(next http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(r.loggingMiddleware.Handle(next))
}

// page runs the guard before next. roles, when given, replace the path's
// role set from the permission table.
func (r *Router) page(next http.HandlerFunc, roles ...entity.Role) http.Handler {
	return r.visitor(r.guardMiddleware.RequireRole(roles...)(next).ServeHTTP)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
