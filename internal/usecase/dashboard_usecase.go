package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"charity-care-portal/internal/converter"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/service"
)

const dashboardListLimit = 5

// QuickAction is a shortcut tile on the patient dashboard.
type QuickAction struct {
	Path     string `json:"path"`
	LabelKey string `json:"label_key"`
}

var patientQuickActions = []QuickAction{
	{Path: "/appointments", LabelKey: "Appointments"},
	{Path: "/doctors", LabelKey: "Doctors"},
	{Path: "/assistance", LabelKey: "Assistance"},
	{Path: "/donations", LabelKey: "Donations"},
}

// PlatformStats aggregates platform-wide counters for administrators.
type PlatformStats struct {
	TotalUsers           int             `json:"total_users"`
	TotalPatients        int             `json:"total_patients"`
	VerifiedPatients     int             `json:"verified_patients"`
	TotalAppointments    int             `json:"total_appointments"`
	UpcomingAppointments int             `json:"upcoming_appointments"`
	PendingAssistance    int             `json:"pending_assistance"`
	DonationCount        int             `json:"donation_count"`
	TotalDonations       decimal.Decimal `json:"total_donations"`
}

// Dashboard is the selected view plus the data of each of its widgets.
type Dashboard struct {
	View    service.DashboardView          `json:"view"`
	Widgets map[service.Widget]interface{} `json:"widgets"`
}

type DashboardUsecase interface {
	Get(ctx context.Context) (*Dashboard, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	selector        *service.ViewSelector
	appointmentRepo domainRepo.AppointmentRepository
	assistanceRepo  domainRepo.AssistanceRepository
	donationRepo    domainRepo.DonationRepository
	patientRepo     domainRepo.PatientRepository
	userRepo        domainRepo.UserRepository
	now             func() time.Time
}

func NewDashboardUsecase(
	log *logrus.Logger,
	selector *service.ViewSelector,
	appointmentRepo domainRepo.AppointmentRepository,
	assistanceRepo domainRepo.AssistanceRepository,
	donationRepo domainRepo.DonationRepository,
	patientRepo domainRepo.PatientRepository,
	userRepo domainRepo.UserRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		selector:        selector,
		appointmentRepo: appointmentRepo,
		assistanceRepo:  assistanceRepo,
		donationRepo:    donationRepo,
		patientRepo:     patientRepo,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

// records holds every list a dashboard may need, each fetched at most once.
type records struct {
	appointments []entity.Appointment
	assistance   []entity.AssistanceRequest
	donations    []entity.Donation
	patients     []entity.PatientRecord
	users        []entity.UserAccount
}

type source int

const (
	sourceAppointments source = iota
	sourceAssistance
	sourceDonations
	sourcePatients
	sourceUsers
)

var widgetSources = map[service.Widget][]source{
	service.WidgetUpcomingAppointments: {sourceAppointments},
	service.WidgetTodaySchedule:        {sourceAppointments},
	service.WidgetAssistanceRequests:   {sourceAssistance},
	service.WidgetPendingAssistance:    {sourceAssistance},
	service.WidgetDonations:            {sourceDonations},
	service.WidgetPatients:             {sourcePatients},
	service.WidgetCampaigns:            {sourceAssistance},
	service.WidgetPlatformStats:        {sourceUsers, sourcePatients, sourceAppointments, sourceAssistance, sourceDonations},
}

// Get selects the dashboard for the session role and loads its widgets
// concurrently. entity.ErrInvalidRole is returned for an unknown role.
func (u *dashboardUsecase) Get(ctx context.Context) (*Dashboard, error) {
	session, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	view, err := u.selector.SelectDashboard(session.Role)
	if err != nil {
		return nil, err
	}

	needed := map[source]bool{}
	for _, w := range view.Widgets {
		for _, s := range widgetSources[w] {
			needed[s] = true
		}
	}

	data, err := u.load(ctx, needed)
	if err != nil {
		return nil, err
	}

	if err := data.restrictTo(session); err != nil {
		return nil, err
	}

	now := u.now()
	dashboard := &Dashboard{View: view, Widgets: make(map[service.Widget]interface{}, len(view.Widgets))}
	for _, w := range view.Widgets {
		dashboard.Widgets[w] = data.widget(w, now)
	}
	return dashboard, nil
}

func (u *dashboardUsecase) load(ctx context.Context, needed map[source]bool) (*records, error) {
	data := &records{}
	g, gctx := errgroup.WithContext(ctx)

	if needed[sourceAppointments] {
		g.Go(func() (err error) {
			data.appointments, err = u.appointmentRepo.FindAll(gctx)
			return err
		})
	}
	if needed[sourceAssistance] {
		g.Go(func() (err error) {
			data.assistance, err = u.assistanceRepo.FindAll(gctx)
			return err
		})
	}
	if needed[sourceDonations] {
		g.Go(func() (err error) {
			data.donations, err = u.donationRepo.FindAll(gctx)
			return err
		})
	}
	if needed[sourcePatients] {
		g.Go(func() (err error) {
			data.patients, err = u.patientRepo.FindAll(gctx, entity.PatientFilter{})
			return err
		})
	}
	if needed[sourceUsers] {
		g.Go(func() (err error) {
			data.users, err = u.userRepo.FindAll(gctx, entity.UserFilter{})
			return err
		})
	}

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard data: %+v", err)
		return nil, err
	}
	return data, nil
}

// restrictTo applies the same visibility rule the list pages use.
func (d *records) restrictTo(session *entity.Session) (err error) {
	if d.appointments, err = service.FilterVisible(session, d.appointments); err != nil {
		return err
	}
	if d.assistance, err = service.FilterVisible(session, d.assistance); err != nil {
		return err
	}
	if d.donations, err = service.FilterVisible(session, d.donations); err != nil {
		return err
	}
	d.patients, err = service.FilterVisible(session, d.patients)
	return err
}

func (d *records) widget(w service.Widget, now time.Time) interface{} {
	switch w {
	case service.WidgetQuickActions:
		return patientQuickActions
	case service.WidgetUpcomingAppointments:
		return limit(upcoming(d.appointments, now), dashboardListLimit)
	case service.WidgetTodaySchedule:
		return onDay(d.appointments, now)
	case service.WidgetAssistanceRequests:
		return limit(d.assistance, dashboardListLimit)
	case service.WidgetPendingAssistance:
		return limit(pendingAssistance(d.assistance), dashboardListLimit)
	case service.WidgetDonations:
		return limit(recentDonations(d.donations), dashboardListLimit)
	case service.WidgetPatients:
		return limit(d.patients, dashboardListLimit)
	case service.WidgetCampaigns:
		return campaigns(d.assistance)
	case service.WidgetPlatformStats:
		return d.stats(now)
	}
	return nil
}

func (d *records) stats(now time.Time) PlatformStats {
	stats := PlatformStats{
		TotalUsers:           len(d.users),
		TotalPatients:        len(d.patients),
		TotalAppointments:    len(d.appointments),
		UpcomingAppointments: len(upcoming(d.appointments, now)),
		PendingAssistance:    len(pendingAssistance(d.assistance)),
		DonationCount:        len(d.donations),
		TotalDonations:       decimal.Zero,
	}
	for _, p := range d.patients {
		if p.IsVerified {
			stats.VerifiedPatients++
		}
	}
	for _, donation := range d.donations {
		if donation.Status != entity.DonationFailed {
			stats.TotalDonations = stats.TotalDonations.Add(donation.Amount)
		}
	}
	return stats
}

func upcoming(appointments []entity.Appointment, now time.Time) []entity.Appointment {
	out := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.IsUpcoming(now) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out
}

func onDay(appointments []entity.Appointment, day time.Time) []entity.Appointment {
	y, m, dd := day.Date()
	out := make([]entity.Appointment, 0)
	for _, a := range appointments {
		ay, am, ad := a.ScheduledAt.In(day.Location()).Date()
		if ay == y && am == m && ad == dd && a.Status != entity.AppointmentCancelled {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out
}

func pendingAssistance(requests []entity.AssistanceRequest) []entity.AssistanceRequest {
	out := make([]entity.AssistanceRequest, 0)
	for _, r := range requests {
		if r.Status == entity.AssistancePending {
			out = append(out, r)
		}
	}
	return out
}

func recentDonations(donations []entity.Donation) []entity.Donation {
	out := make([]entity.Donation, len(donations))
	copy(out, donations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// campaigns projects the requests still open for funding.
func campaigns(requests []entity.AssistanceRequest) []entity.Campaign {
	out := make([]entity.Campaign, 0)
	for _, r := range requests {
		if r.NeedsFinancialSupport() {
			out = append(out, converter.AssistanceRequestToCampaign(r))
		}
	}
	return out
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
