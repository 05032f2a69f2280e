package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/http/middleware"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/metrics"
	"charity-care-portal/internal/service"
	"charity-care-portal/pkg/validator"
)

var (
	ErrMissingFormID      = errors.New("form id is required")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrMissingRouteParam  = errors.New("missing route parameter")
	ErrInvalidStatus      = errors.New("invalid status")
)

// validate runs form against values and counts rejections. It returns a nil
// error, never a nil validator.Errors, on success.
func validate[T any](form *validator.Form[T], values validator.Values) (T, error) {
	out, errs := form.Validate(values)
	if len(errs) > 0 {
		metrics.FormValidationFailures.WithLabelValues(form.Name()).Inc()
		return out, errs
	}
	return out, nil
}

// formOwner returns the visitor that owns formID. Form state is never shared
// between visitors, even when they send the same formID.
func formOwner(ctx context.Context, formID string) (string, error) {
	if formID == "" {
		return "", ErrMissingFormID
	}
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok || visitorID == "" {
		return "", ErrNoVisitor
	}
	return visitorID, nil
}

// submitOnce holds the per-form-instance lock around fn. The lock is released
// whether fn succeeds or fails.
func submitOnce(ctx context.Context, formRepo domainRepo.FormStateRepository, log *logrus.Logger, formID string, fn func() error) error {
	visitorID, err := formOwner(ctx, formID)
	if err != nil {
		return err
	}

	acquired, err := formRepo.AcquireSubmit(ctx, visitorID, formID)
	if err != nil {
		log.Warnf("Failed to acquire submit lock for form %s: %+v", formID, err)
		return err
	}
	if !acquired {
		return ErrSubmissionInFlight
	}
	defer func() {
		if err := formRepo.ReleaseSubmit(context.WithoutCancel(ctx), visitorID, formID); err != nil {
			log.Warnf("Failed to release submit lock for form %s: %+v", formID, err)
		}
	}()

	return fn()
}

func currentSession(ctx context.Context) (*entity.Session, error) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil, service.ErrNoSession
	}
	return session, nil
}

func auditEvent(ctx context.Context, action string, metadata map[string]interface{}) entity.AuditEvent {
	visitorID, _ := middleware.GetVisitorIDFromContext(ctx)
	event := entity.AuditEvent{
		Action:    action,
		VisitorID: visitorID,
		Metadata:  metadata,
	}
	if session, ok := middleware.GetSessionFromContext(ctx); ok {
		event.UserID = session.UserID
		event.Role = session.Role
	}
	return event
}

func pushNotice(ctx context.Context, visitorRepo domainRepo.VisitorRepository, log *logrus.Logger, notice entity.Notice) {
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return
	}
	if err := visitorRepo.PushNotice(ctx, visitorID, notice); err != nil {
		log.Warnf("Failed to queue notice for visitor %s: %+v", visitorID, err)
	}
}

func successNotice(key string) entity.Notice {
	return entity.Notice{Level: entity.NoticeSuccess, Key: key}
}
