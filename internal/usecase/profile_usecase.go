package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/service"
	"charity-care-portal/pkg/validator"
)

type ProfileUsecase interface {
	Get(ctx context.Context) (*entity.UserAccount, error)
	Update(ctx context.Context, formID string, values validator.Values) (*entity.UserAccount, error)
	ChangePassword(ctx context.Context, formID string, values validator.Values) error
}

type profileUsecase struct {
	log         *logrus.Logger
	authRepo    domainRepo.AuthRepository
	userRepo    domainRepo.UserRepository
	formRepo    domainRepo.FormStateRepository
	visitorRepo domainRepo.VisitorRepository
	audit       service.AuditService
}

func NewProfileUsecase(
	log *logrus.Logger,
	authRepo domainRepo.AuthRepository,
	userRepo domainRepo.UserRepository,
	formRepo domainRepo.FormStateRepository,
	visitorRepo domainRepo.VisitorRepository,
	audit service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		log:         log,
		authRepo:    authRepo,
		userRepo:    userRepo,
		formRepo:    formRepo,
		visitorRepo: visitorRepo,
		audit:       audit,
	}
}

func (u *profileUsecase) Get(ctx context.Context) (*entity.UserAccount, error) {
	user, err := u.authRepo.CurrentUser(ctx)
	if err != nil {
		u.log.Warnf("Failed to load current user: %+v", err)
		return nil, err
	}
	return user, nil
}

func (u *profileUsecase) Update(ctx context.Context, formID string, values validator.Values) (*entity.UserAccount, error) {
	update, err := validate(form.ProfileForm, values)
	if err != nil {
		return nil, err
	}

	var user *entity.UserAccount
	err = submitOnce(ctx, u.formRepo, u.log, formID, func() error {
		var err error
		user, err = u.userRepo.UpdateProfile(ctx, &update)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.audit.Record(ctx, auditEvent(ctx, entity.AuditActionProfileUpdate, nil))
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticeProfileUpdated))
	return user, nil
}

func (u *profileUsecase) ChangePassword(ctx context.Context, formID string, values validator.Values) error {
	change, err := validate(form.ChangePasswordForm, values)
	if err != nil {
		return err
	}

	err = submitOnce(ctx, u.formRepo, u.log, formID, func() error {
		return u.userRepo.ChangePassword(ctx, &change)
	})
	if err != nil {
		return err
	}

	u.audit.Record(ctx, auditEvent(ctx, entity.AuditActionPasswordChange, nil))
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticePasswordChanged))
	return nil
}
