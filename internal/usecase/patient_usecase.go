package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/service"
)

type PatientUsecase interface {
	List(ctx context.Context, filter entity.PatientFilter) ([]entity.PatientRecord, error)
	Verify(ctx context.Context, id string) error
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo domainRepo.PatientRepository
	visitorRepo domainRepo.VisitorRepository
	audit       service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo domainRepo.PatientRepository,
	visitorRepo domainRepo.VisitorRepository,
	audit service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		visitorRepo: visitorRepo,
		audit:       audit,
	}
}

// List returns the patients the session may see; a doctor sees the triage
// pool plus their own patients.
func (u *patientUsecase) List(ctx context.Context, filter entity.PatientFilter) ([]entity.PatientRecord, error) {
	session, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	return service.FilterVisible(session, patients)
}

func (u *patientUsecase) Verify(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingRouteParam
	}
	if err := u.patientRepo.Verify(ctx, id); err != nil {
		u.log.Warnf("Failed to verify patient %s: %+v", id, err)
		return err
	}

	u.audit.Record(ctx, auditEvent(ctx, entity.AuditActionPatientVerify, map[string]interface{}{
		"patient_id": id,
	}))
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticePatientVerified))
	return nil
}
