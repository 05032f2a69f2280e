package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"charity-care-portal/internal/delivery/http/middleware"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/repository"
	"charity-care-portal/internal/service"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

// repositoryPair holds the Redis-backed visitor state repositories.
type repositoryPair struct {
	form    domainRepo.FormStateRepository
	visitor domainRepo.VisitorRepository
	pref    domainRepo.PreferenceRepository
}

func newRepositoryPair(t *testing.T) *repositoryPair {
	t.Helper()
	client := setupRedis(t)
	return &repositoryPair{
		form:    repository.NewFormStateRepository(client),
		visitor: repository.NewVisitorRepository(client),
		pref:    repository.NewPreferenceRepository(client),
	}
}

// visitorContext builds the request context AuthMiddleware would produce.
func visitorContext(visitorID string, session *entity.Session) context.Context {
	ctx := context.WithValue(context.Background(), middleware.VisitorIDKey, visitorID)
	if session != nil {
		ctx = middleware.WithSession(ctx, session)
	}
	return ctx
}

func sessionFor(userID string, role entity.Role) *entity.Session {
	return &entity.Session{UserID: userID, Role: role, DisplayName: "User " + userID, CreatedAt: time.Now()}
}

type nopAudit struct{}

func (nopAudit) Record(context.Context, entity.AuditEvent) {}

var _ service.AuditService = nopAudit{}

type mockAssistanceRepo struct {
	mock.Mock
}

func (m *mockAssistanceRepo) FindAll(ctx context.Context) ([]entity.AssistanceRequest, error) {
	args := m.Called(ctx)
	requests, _ := args.Get(0).([]entity.AssistanceRequest)
	return requests, args.Error(1)
}

func (m *mockAssistanceRepo) Create(ctx context.Context, submission *entity.AssistanceSubmission) (*entity.AssistanceRequest, error) {
	args := m.Called(ctx, submission)
	request, _ := args.Get(0).(*entity.AssistanceRequest)
	return request, args.Error(1)
}

func (m *mockAssistanceRepo) UpdateStatus(ctx context.Context, id string, status entity.AssistanceStatus) (*entity.AssistanceRequest, error) {
	args := m.Called(ctx, id, status)
	request, _ := args.Get(0).(*entity.AssistanceRequest)
	return request, args.Error(1)
}

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, request *entity.AppointmentRequest) (*entity.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	args := m.Called(ctx, id, status)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

type mockDoctorRepo struct {
	mock.Mock
}

func (m *mockDoctorRepo) FindAll(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	args := m.Called(ctx, filter)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

func (m *mockDoctorRepo) UnavailableSlots(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	args := m.Called(ctx, doctorID, date)
	slots, _ := args.Get(0).([]string)
	return slots, args.Error(1)
}

type mockDonationRepo struct {
	mock.Mock
}

func (m *mockDonationRepo) FindAll(ctx context.Context) ([]entity.Donation, error) {
	args := m.Called(ctx)
	donations, _ := args.Get(0).([]entity.Donation)
	return donations, args.Error(1)
}

func (m *mockDonationRepo) Create(ctx context.Context, submission *entity.DonationSubmission) (*entity.Donation, error) {
	args := m.Called(ctx, submission)
	donation, _ := args.Get(0).(*entity.Donation)
	return donation, args.Error(1)
}

type mockPatientRepo struct {
	mock.Mock
}

func (m *mockPatientRepo) FindAll(ctx context.Context, filter entity.PatientFilter) ([]entity.PatientRecord, error) {
	args := m.Called(ctx, filter)
	patients, _ := args.Get(0).([]entity.PatientRecord)
	return patients, args.Error(1)
}

func (m *mockPatientRepo) Verify(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindAll(ctx context.Context, filter entity.UserFilter) ([]entity.UserAccount, error) {
	args := m.Called(ctx, filter)
	users, _ := args.Get(0).([]entity.UserAccount)
	return users, args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, update *entity.ProfileUpdate) (*entity.UserAccount, error) {
	args := m.Called(ctx, update)
	user, _ := args.Get(0).(*entity.UserAccount)
	return user, args.Error(1)
}

func (m *mockUserRepo) ChangePassword(ctx context.Context, change *entity.PasswordChange) error {
	return m.Called(ctx, change).Error(0)
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) FindAll(ctx context.Context) ([]entity.Notification, error) {
	args := m.Called(ctx)
	notifications, _ := args.Get(0).([]entity.Notification)
	return notifications, args.Error(1)
}

func (m *mockNotificationRepo) MarkAsRead(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNotificationRepo) MarkAllAsRead(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
