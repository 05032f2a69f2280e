package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/http/middleware"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
)

var ErrInvalidPreference = errors.New("invalid preference value")

type PreferenceUsecase interface {
	Get(ctx context.Context) (entity.Preferences, error)
	SetLanguage(ctx context.Context, raw string) (entity.Preferences, error)
	ToggleLanguage(ctx context.Context) (entity.Preferences, error)
	SetTheme(ctx context.Context, raw string) (entity.Preferences, error)
	ToggleTheme(ctx context.Context) (entity.Preferences, error)
}

type preferenceUsecase struct {
	log      *logrus.Logger
	prefRepo domainRepo.PreferenceRepository
}

func NewPreferenceUsecase(log *logrus.Logger, prefRepo domainRepo.PreferenceRepository) PreferenceUsecase {
	return &preferenceUsecase{
		log:      log,
		prefRepo: prefRepo,
	}
}

func (u *preferenceUsecase) Get(ctx context.Context) (entity.Preferences, error) {
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return entity.Preferences{}, ErrNoVisitor
	}
	return u.prefRepo.Get(ctx, visitorID)
}

func (u *preferenceUsecase) SetLanguage(ctx context.Context, raw string) (entity.Preferences, error) {
	language, ok := entity.ParseLanguage(raw)
	if !ok {
		return entity.Preferences{}, ErrInvalidPreference
	}
	return u.update(ctx, "language", func(visitorID string) error {
		return u.prefRepo.SetLanguage(ctx, visitorID, language)
	})
}

func (u *preferenceUsecase) ToggleLanguage(ctx context.Context) (entity.Preferences, error) {
	return u.update(ctx, "language", func(visitorID string) error {
		_, err := u.prefRepo.ToggleLanguage(ctx, visitorID)
		return err
	})
}

func (u *preferenceUsecase) SetTheme(ctx context.Context, raw string) (entity.Preferences, error) {
	theme, ok := entity.ParseTheme(raw)
	if !ok {
		return entity.Preferences{}, ErrInvalidPreference
	}
	return u.update(ctx, "theme", func(visitorID string) error {
		return u.prefRepo.SetTheme(ctx, visitorID, theme)
	})
}

func (u *preferenceUsecase) ToggleTheme(ctx context.Context) (entity.Preferences, error) {
	return u.update(ctx, "theme", func(visitorID string) error {
		_, err := u.prefRepo.ToggleTheme(ctx, visitorID)
		return err
	})
}

func (u *preferenceUsecase) update(ctx context.Context, field string, apply func(visitorID string) error) (entity.Preferences, error) {
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return entity.Preferences{}, ErrNoVisitor
	}
	if err := apply(visitorID); err != nil {
		u.log.Warnf("Failed to update %s for visitor %s: %+v", field, visitorID, err)
		return entity.Preferences{}, err
	}
	return u.prefRepo.Get(ctx, visitorID)
}
