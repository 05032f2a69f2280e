package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"charity-care-portal/config"
	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/pkg/apiclient"
	"charity-care-portal/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIClient(t *testing.T, handler http.Handler) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return apiclient.NewClient(config.APIConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil, log)
}

func TestAuthRepository_Login(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "lan@example.vn", req["email"])
		io.WriteString(w, `{"user":{"id":"u1","fullName":"Nguyễn Thị Lan","email":"lan@example.vn","role":"patient"},"token":"tok-1"}`)
	})

	repo := NewAuthRepository(newAPIClient(t, mux), validator.NewValidator())
	session, err := repo.Login(context.Background(), "lan@example.vn", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, entity.RolePatient, session.Role)
	assert.Equal(t, "tok-1", session.CredentialToken)
}

func TestAuthRepository_LoginMalformedResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"user":{"id":"u1"}}`)
	})

	repo := NewAuthRepository(newAPIClient(t, mux), validator.NewValidator())
	_, err := repo.Login(context.Background(), "lan@example.vn", "secret")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPatientRepository_FindAllSendsFilter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/patients", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Lan", r.URL.Query().Get("search"))
		assert.Equal(t, "true", r.URL.Query().Get("isVerified"))
		io.WriteString(w, `[{"id":"p1","userId":"u1","name":"Nguyễn Thị Lan","condition":"Bệnh tim","economicStatus":"very_poor","isVerified":true,"registeredAt":"2024-01-15"}]`)
	})

	verified := true
	repo := NewPatientRepository(newAPIClient(t, mux))
	records, err := repo.FindAll(context.Background(), entity.PatientFilter{Search: "Lan", IsVerified: &verified})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Nguyễn Thị Lan", records[0].FullName)
	assert.True(t, records[0].NeedsFinancialSupport())
}

func TestAssistanceRepository_UpdateStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/assistance/a1/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "approved", req["status"])
		io.WriteString(w, `{"id":"a1","status":"approved","requestedAmount":1000000,"raisedAmount":"0"}`)
	})

	repo := NewAssistanceRepository(newAPIClient(t, mux))
	req, err := repo.UpdateStatus(context.Background(), "a1", entity.AssistanceApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.AssistanceApproved, req.Status)
	assert.Equal(t, "1000000", req.RequestedAmount.String())
}

func TestDoctorRepository_UnavailableSlots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/doctors/d1/availability", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-12-26", r.URL.Query().Get("date"))
		io.WriteString(w, `{"date":"2024-12-26","bookedSlots":["08:00","14:30"]}`)
	})

	repo := NewDoctorRepository(newAPIClient(t, mux))
	slots, err := repo.UnavailableSlots(context.Background(), "d1", time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "14:30"}, slots)
}
