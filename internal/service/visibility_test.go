package service

import (
	"testing"

	"charity-care-portal/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patientIDs(records []entity.PatientRecord) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func samplePatients() []entity.PatientRecord {
	return []entity.PatientRecord{
		{ID: "p1", UserID: "user-patient", Condition: "Bệnh tim bẩm sinh", EconomicStatus: entity.EconomicVeryPoor, IsVerified: true},
		{ID: "p2", UserID: "u2", Condition: "healthy", EconomicStatus: entity.EconomicMiddle},
		{ID: "p3", UserID: "u3", Condition: "Ung thư phổi", EconomicStatus: entity.EconomicMiddle, AssignedDoctorID: "user-doctor"},
		{ID: "p4", UserID: "u4", Condition: "Tiểu đường", EconomicStatus: entity.EconomicPoor, AssignedDoctorID: "another-doctor"},
		{ID: "p5", UserID: "u5", Condition: "", EconomicStatus: entity.EconomicPoor},
	}
}

func TestFilterVisible_Patients(t *testing.T) {
	tests := []struct {
		role entity.Role
		want []string
	}{
		{entity.RolePatient, []string{"p1"}},
		{entity.RoleDoctor, []string{"p1", "p3"}},
		{entity.RoleAdmin, []string{"p1", "p2", "p3", "p4", "p5"}},
		{entity.RoleCharityAdmin, []string{"p1", "p4", "p5"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got, err := FilterVisible(sessionFor(tt.role), samplePatients())
			require.NoError(t, err)
			assert.Equal(t, tt.want, patientIDs(got))
		})
	}
}

func TestFilterVisible_DoctorNeverSeesHealthySentinel(t *testing.T) {
	records := []entity.PatientRecord{
		{ID: "h1", Condition: "healthy", AssignedDoctorID: "user-doctor"},
		{ID: "h2", Condition: " Healthy "},
	}

	doctorView, err := FilterVisible(sessionFor(entity.RoleDoctor), records)
	require.NoError(t, err)
	assert.Empty(t, doctorView)

	adminView, err := FilterVisible(sessionFor(entity.RoleAdmin), records)
	require.NoError(t, err)
	assert.Len(t, adminView, 2)
}

func TestFilterVisible_AssistanceRequests(t *testing.T) {
	requests := []entity.AssistanceRequest{
		{ID: "a1", PatientID: "user-patient", Status: entity.AssistancePending, RequestedAmount: decimal.NewFromInt(1000000)},
		{ID: "a2", PatientID: "u2", Status: entity.AssistanceRejected, RequestedAmount: decimal.NewFromInt(500000)},
		{ID: "a3", PatientID: "u3", Status: entity.AssistanceApproved, ReviewerID: "user-doctor"},
	}

	got, err := FilterVisible(sessionFor(entity.RolePatient), requests)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)

	got, err = FilterVisible(sessionFor(entity.RoleCharityAdmin), requests)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a3", got[1].ID)

	got, err = FilterVisible(sessionFor(entity.RoleDoctor), requests)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a3", got[0].ID)
}

func TestFilterVisible_Errors(t *testing.T) {
	_, err := FilterVisible[entity.Appointment](nil, nil)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = FilterVisible(&entity.Session{UserID: "u", Role: "ghost"}, []entity.Appointment{{ID: "x"}})
	assert.ErrorIs(t, err, entity.ErrInvalidRole)
}
