package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
)

// Analytics is the admin analytics page.
type Analytics struct {
	Stats                PlatformStats                    `json:"stats"`
	UsersByRole          map[entity.Role]int              `json:"users_by_role"`
	AppointmentsByStatus map[entity.AppointmentStatus]int `json:"appointments_by_status"`
	AssistanceByStatus   map[entity.AssistanceStatus]int  `json:"assistance_by_status"`
	DonationsByMethod    map[string]decimal.Decimal       `json:"donations_by_method"`
}

type UserUsecase interface {
	List(ctx context.Context, filter entity.UserFilter) ([]entity.UserAccount, error)
	Analytics(ctx context.Context) (*Analytics, error)
}

type userUsecase struct {
	log             *logrus.Logger
	userRepo        domainRepo.UserRepository
	patientRepo     domainRepo.PatientRepository
	appointmentRepo domainRepo.AppointmentRepository
	assistanceRepo  domainRepo.AssistanceRepository
	donationRepo    domainRepo.DonationRepository
	now             func() time.Time
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo domainRepo.UserRepository,
	patientRepo domainRepo.PatientRepository,
	appointmentRepo domainRepo.AppointmentRepository,
	assistanceRepo domainRepo.AssistanceRepository,
	donationRepo domainRepo.DonationRepository,
) UserUsecase {
	return &userUsecase{
		log:             log,
		userRepo:        userRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		assistanceRepo:  assistanceRepo,
		donationRepo:    donationRepo,
		now:             time.Now,
	}
}

func (u *userUsecase) List(ctx context.Context, filter entity.UserFilter) ([]entity.UserAccount, error) {
	users, err := u.userRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}
	return users, nil
}

// Analytics loads every platform list concurrently; the first failure
// cancels the remaining calls.
func (u *userUsecase) Analytics(ctx context.Context) (*Analytics, error) {
	data := &records{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.users, err = u.userRepo.FindAll(gctx, entity.UserFilter{})
		return err
	})
	g.Go(func() (err error) {
		data.patients, err = u.patientRepo.FindAll(gctx, entity.PatientFilter{})
		return err
	})
	g.Go(func() (err error) {
		data.appointments, err = u.appointmentRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.assistance, err = u.assistanceRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.donations, err = u.donationRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load analytics: %+v", err)
		return nil, err
	}

	analytics := &Analytics{
		Stats:                data.stats(u.now()),
		UsersByRole:          map[entity.Role]int{},
		AppointmentsByStatus: map[entity.AppointmentStatus]int{},
		AssistanceByStatus:   map[entity.AssistanceStatus]int{},
		DonationsByMethod:    map[string]decimal.Decimal{},
	}
	for _, user := range data.users {
		analytics.UsersByRole[user.Role]++
	}
	for _, a := range data.appointments {
		analytics.AppointmentsByStatus[a.Status]++
	}
	for _, r := range data.assistance {
		analytics.AssistanceByStatus[r.Status]++
	}
	for _, d := range data.donations {
		if d.Status == entity.DonationFailed {
			continue
		}
		analytics.DonationsByMethod[d.PaymentMethod] = analytics.DonationsByMethod[d.PaymentMethod].Add(d.Amount)
	}
	return analytics, nil
}
