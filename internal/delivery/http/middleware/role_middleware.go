package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/metrics"
	"charity-care-portal/internal/service"
	"charity-care-portal/pkg/response"
)

// GuardMiddleware applies RouteGuard decisions to HTTP requests. It must run
// after AuthMiddleware.
type GuardMiddleware struct {
	guard       *service.RouteGuard
	visitorRepo domainRepo.VisitorRepository
	notFound    http.Handler
	log         *logrus.Logger
}

func NewGuardMiddleware(
	guard *service.RouteGuard,
	visitorRepo domainRepo.VisitorRepository,
	notFound http.Handler,
	log *logrus.Logger,
) *GuardMiddleware {
	return &GuardMiddleware{
		guard:       guard,
		visitorRepo: visitorRepo,
		notFound:    notFound,
		log:         log,
	}
}

// Protect checks the request path against the permission table.
func (m *GuardMiddleware) Protect(next http.Handler) http.Handler {
	return m.RequireRole()(next)
}

// RequireRole narrows the permission table to roles for a single route.
// With no roles it behaves like Protect.
func (m *GuardMiddleware) RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			visitorID, _ := GetVisitorIDFromContext(ctx)
			session, _ := GetSessionFromContext(ctx)

			decision := m.guard.CanRender(session, r.URL.Path, roles...)
			metrics.GuardDecisions.WithLabelValues(decision.String()).Inc()

			switch decision.Kind {
			case service.DecisionNotFound:
				m.notFound.ServeHTTP(w, r)
				return
			case service.DecisionRedirect:
				if decision.Notice != nil && visitorID != "" {
					if err := m.visitorRepo.PushNotice(ctx, visitorID, *decision.Notice); err != nil {
						m.log.Warnf("Failed to queue guard notice for visitor %s: %+v", visitorID, err)
					}
				}
				response.Redirect(w, decision.To)
				return
			}

			if r.Method == http.MethodGet && session != nil && visitorID != "" {
				seq, err := m.visitorRepo.BeginNavigation(ctx, visitorID)
				if err != nil {
					m.log.Warnf("Failed to begin navigation for visitor %s: %+v", visitorID, err)
				} else {
					r = r.WithContext(withNavigationSeq(ctx, seq))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
