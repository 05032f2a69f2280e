package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/service"
	"charity-care-portal/pkg/validator"
)

// DonationOverview is the donations page: the visible donations and the
// campaigns still open for funding.
type DonationOverview struct {
	Donations    []entity.Donation `json:"donations"`
	Campaigns    []entity.Campaign `json:"campaigns"`
	QuickAmounts []int64           `json:"quick_amounts"`
}

type DonationUsecase interface {
	Overview(ctx context.Context) (*DonationOverview, error)
	Draft(ctx context.Context, formID string) (*form.DonationDraft, error)
	SelectQuickAmount(ctx context.Context, formID string, amount int64) (*form.DonationDraft, error)
	EditAmount(ctx context.Context, formID, raw string) (*form.DonationDraft, error)
	Donate(ctx context.Context, formID string, values validator.Values) (*entity.Donation, error)
}

type donationUsecase struct {
	log            *logrus.Logger
	donationRepo   domainRepo.DonationRepository
	assistanceRepo domainRepo.AssistanceRepository
	formRepo       domainRepo.FormStateRepository
	visitorRepo    domainRepo.VisitorRepository
	audit          service.AuditService
}

func NewDonationUsecase(
	log *logrus.Logger,
	donationRepo domainRepo.DonationRepository,
	assistanceRepo domainRepo.AssistanceRepository,
	formRepo domainRepo.FormStateRepository,
	visitorRepo domainRepo.VisitorRepository,
	audit service.AuditService,
) DonationUsecase {
	return &donationUsecase{
		log:            log,
		donationRepo:   donationRepo,
		assistanceRepo: assistanceRepo,
		formRepo:       formRepo,
		visitorRepo:    visitorRepo,
		audit:          audit,
	}
}

func (u *donationUsecase) Overview(ctx context.Context) (*DonationOverview, error) {
	session, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	var (
		donations []entity.Donation
		requests  []entity.AssistanceRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		donations, err = u.donationRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		requests, err = u.assistanceRepo.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load donations page: %+v", err)
		return nil, err
	}

	visible, err := service.FilterVisible(session, donations)
	if err != nil {
		return nil, err
	}

	return &DonationOverview{
		Donations:    recentDonations(visible),
		Campaigns:    campaigns(requests),
		QuickAmounts: form.QuickAmounts,
	}, nil
}

func (u *donationUsecase) Draft(ctx context.Context, formID string) (*form.DonationDraft, error) {
	visitorID, err := formOwner(ctx, formID)
	if err != nil {
		return nil, err
	}
	draft := &form.DonationDraft{}
	if _, err := u.formRepo.LoadDraft(ctx, visitorID, formID, draft); err != nil {
		u.log.Warnf("Failed to load donation draft %s: %+v", formID, err)
		return nil, err
	}
	return draft, nil
}

func (u *donationUsecase) SelectQuickAmount(ctx context.Context, formID string, amount int64) (*form.DonationDraft, error) {
	return u.editDraft(ctx, formID, func(d *form.DonationDraft) error {
		return d.SelectQuickAmount(amount)
	})
}

func (u *donationUsecase) EditAmount(ctx context.Context, formID, raw string) (*form.DonationDraft, error) {
	return u.editDraft(ctx, formID, func(d *form.DonationDraft) error {
		d.EditAmount(raw)
		return nil
	})
}

func (u *donationUsecase) editDraft(ctx context.Context, formID string, edit func(*form.DonationDraft) error) (*form.DonationDraft, error) {
	visitorID, err := formOwner(ctx, formID)
	if err != nil {
		return nil, err
	}
	draft, err := u.Draft(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := edit(draft); err != nil {
		return nil, err
	}
	if err := u.formRepo.SaveDraft(ctx, visitorID, formID, draft); err != nil {
		u.log.Warnf("Failed to save donation draft %s: %+v", formID, err)
		return nil, err
	}
	return draft, nil
}

// Donate submits the donation. A missing amount falls back to the draft so
// a quick-amount selection need not be re-sent.
func (u *donationUsecase) Donate(ctx context.Context, formID string, values validator.Values) (*entity.Donation, error) {
	if values.Get("amount") == "" && formID != "" {
		draft, err := u.Draft(ctx, formID)
		if err != nil {
			return nil, err
		}
		if draft.Amount != "" {
			values["amount"] = draft.Amount
		}
	}

	submission, err := validate(form.DonationForm, values)
	if err != nil {
		return nil, err
	}

	visitorID, err := formOwner(ctx, formID)
	if err != nil {
		return nil, err
	}

	var donation *entity.Donation
	err = submitOnce(ctx, u.formRepo, u.log, formID, func() error {
		var err error
		donation, err = u.donationRepo.Create(ctx, &submission)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := u.formRepo.Clear(ctx, visitorID, formID); err != nil {
		u.log.Warnf("Failed to clear form %s: %+v", formID, err)
	}
	u.audit.Record(ctx, auditEvent(ctx, entity.AuditActionDonationCreate, map[string]interface{}{
		"donation_id":    donation.ID,
		"amount":         submission.Amount.String(),
		"payment_method": submission.PaymentMethod,
	}))
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticeDonationReceived))
	return donation, nil
}
