package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/delivery/http/middleware"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/service"
	"charity-care-portal/pkg/apiclient"
	"charity-care-portal/pkg/validator"
)

var ErrNoVisitor = errors.New("visitor not identified")

type AuthUsecase interface {
	Login(ctx context.Context, formID string, values validator.Values) (*entity.Session, error)
	Register(ctx context.Context, formID string, values validator.Values) (*entity.Session, error)
	Logout(ctx context.Context) error
}

type authUsecase struct {
	log         *logrus.Logger
	authRepo    domainRepo.AuthRepository
	sessionRepo domainRepo.SessionRepository
	visitorRepo domainRepo.VisitorRepository
	formRepo    domainRepo.FormStateRepository
	audit       service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	authRepo domainRepo.AuthRepository,
	sessionRepo domainRepo.SessionRepository,
	visitorRepo domainRepo.VisitorRepository,
	formRepo domainRepo.FormStateRepository,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		authRepo:    authRepo,
		sessionRepo: sessionRepo,
		visitorRepo: visitorRepo,
		formRepo:    formRepo,
		audit:       audit,
	}
}

// Login authenticates against the backend and replaces the visitor's session.
func (u *authUsecase) Login(ctx context.Context, formID string, values validator.Values) (*entity.Session, error) {
	creds, err := validate(form.LoginForm, values)
	if err != nil {
		return nil, err
	}

	var session *entity.Session
	err = submitOnce(ctx, u.formRepo, u.log, formID, func() error {
		var err error
		session, err = u.authRepo.Login(ctx, creds.Email, creds.Password)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := u.establish(ctx, session, entity.AuditActionUserLogin); err != nil {
		return nil, err
	}
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticeLoginSuccess))
	return session, nil
}

func (u *authUsecase) Register(ctx context.Context, formID string, values validator.Values) (*entity.Session, error) {
	registration, err := validate(form.RegisterForm, values)
	if err != nil {
		return nil, err
	}

	var session *entity.Session
	err = submitOnce(ctx, u.formRepo, u.log, formID, func() error {
		var err error
		session, err = u.authRepo.Register(ctx, &registration)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := u.establish(ctx, session, entity.AuditActionUserRegister); err != nil {
		return nil, err
	}
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticeRegisterSuccess))
	return session, nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return ErrNoVisitor
	}

	event := auditEvent(ctx, entity.AuditActionUserLogout, nil)
	if err := u.sessionRepo.Logout(ctx, visitorID); err != nil {
		u.log.Warnf("Failed to logout visitor %s: %+v", visitorID, err)
		return err
	}
	u.audit.Record(ctx, event)
	pushNotice(ctx, u.visitorRepo, u.log, entity.Notice{Level: entity.NoticeInfo, Key: entity.NoticeLogoutSuccess})
	return nil
}

func (u *authUsecase) establish(ctx context.Context, session *entity.Session, action string) error {
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return ErrNoVisitor
	}

	session.CreatedAt = time.Now().UTC()
	if err := u.sessionRepo.Login(ctx, visitorID, session); err != nil {
		u.log.Warnf("Failed to store session for visitor %s: %+v", visitorID, err)
		return err
	}

	u.audit.Record(ctx, entity.AuditEvent{
		Action:    action,
		VisitorID: visitorID,
		UserID:    session.UserID,
		Role:      session.Role,
	})
	return nil
}

// SessionTerminator destroys a visitor's session when the backend rejects
// its credential.
type SessionTerminator struct {
	log         *logrus.Logger
	sessionRepo domainRepo.SessionRepository
	visitorRepo domainRepo.VisitorRepository
	audit       service.AuditService
}

var _ apiclient.SessionTerminator = (*SessionTerminator)(nil)

func NewSessionTerminator(
	log *logrus.Logger,
	sessionRepo domainRepo.SessionRepository,
	visitorRepo domainRepo.VisitorRepository,
	audit service.AuditService,
) *SessionTerminator {
	return &SessionTerminator{
		log:         log,
		sessionRepo: sessionRepo,
		visitorRepo: visitorRepo,
		audit:       audit,
	}
}

func (t *SessionTerminator) Terminate(ctx context.Context, visitorID string) error {
	if err := t.sessionRepo.Logout(ctx, visitorID); err != nil {
		return err
	}

	notice := entity.Notice{Level: entity.NoticeError, Key: entity.NoticeSessionExpired}
	if err := t.visitorRepo.PushNotice(ctx, visitorID, notice); err != nil {
		t.log.Warnf("Failed to queue session expired notice for visitor %s: %+v", visitorID, err)
	}

	t.audit.Record(ctx, entity.AuditEvent{
		Action:    entity.AuditActionSessionForcedOut,
		VisitorID: visitorID,
	})
	return nil
}
