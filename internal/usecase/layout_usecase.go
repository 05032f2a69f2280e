package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/http/middleware"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/service"
)

// PageContext is the visitor state every rendered view carries.
type PageContext struct {
	Session     *entity.Session
	Preferences entity.Preferences
	Notices     []entity.Notice
	Navigation  []entity.NavigationEntry
	// InvalidRole is set when the session role matches no known role.
	InvalidRole bool
}

type LayoutUsecase interface {
	// Load pops the visitor's queued notices; each notice is returned once.
	Load(ctx context.Context) (*PageContext, error)
}

type layoutUsecase struct {
	log         *logrus.Logger
	prefRepo    domainRepo.PreferenceRepository
	visitorRepo domainRepo.VisitorRepository
	selector    *service.ViewSelector
	audit       service.AuditService
}

func NewLayoutUsecase(
	log *logrus.Logger,
	prefRepo domainRepo.PreferenceRepository,
	visitorRepo domainRepo.VisitorRepository,
	selector *service.ViewSelector,
	audit service.AuditService,
) LayoutUsecase {
	return &layoutUsecase{
		log:         log,
		prefRepo:    prefRepo,
		visitorRepo: visitorRepo,
		selector:    selector,
		audit:       audit,
	}
}

func (u *layoutUsecase) Load(ctx context.Context) (*PageContext, error) {
	pc := &PageContext{Preferences: entity.DefaultPreferences()}

	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return pc, nil
	}

	prefs, err := u.prefRepo.Get(ctx, visitorID)
	if err != nil {
		u.log.Warnf("Failed to load preferences for visitor %s: %+v", visitorID, err)
		return nil, err
	}
	pc.Preferences = prefs

	notices, err := u.visitorRepo.PopNotices(ctx, visitorID)
	if err != nil {
		u.log.Warnf("Failed to pop notices for visitor %s: %+v", visitorID, err)
		return nil, err
	}
	pc.Notices = notices

	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return pc, nil
	}
	pc.Session = session

	nav, err := u.selector.SelectNavigation(session.Role)
	switch {
	case errors.Is(err, entity.ErrInvalidRole):
		pc.InvalidRole = true
		u.audit.Record(ctx, auditEvent(ctx, entity.AuditActionInvalidRole, map[string]interface{}{
			"raw_role": string(session.Role),
		}))
	case err != nil:
		return nil, err
	default:
		pc.Navigation = nav
	}
	return pc, nil
}
