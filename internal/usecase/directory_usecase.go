package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
)

// DirectoryUsecase serves the doctor directory and the charity organization list.
type DirectoryUsecase interface {
	Doctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error)
	Organizations(ctx context.Context) ([]entity.CharityOrganization, error)
}

type directoryUsecase struct {
	log         *logrus.Logger
	doctorRepo  domainRepo.DoctorRepository
	charityRepo domainRepo.CharityRepository
}

func NewDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo domainRepo.DoctorRepository,
	charityRepo domainRepo.CharityRepository,
) DirectoryUsecase {
	return &directoryUsecase{
		log:         log,
		doctorRepo:  doctorRepo,
		charityRepo: charityRepo,
	}
}

func (u *directoryUsecase) Doctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	return doctors, nil
}

func (u *directoryUsecase) Organizations(ctx context.Context) ([]entity.CharityOrganization, error) {
	orgs, err := u.charityRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find charity organizations: %+v", err)
		return nil, err
	}
	return orgs, nil
}
