package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPatientRecordAssignment(t *testing.T) {
	assert.False(t, PatientRecord{Condition: "healthy"}.AssignedTo("d1"))
	assert.False(t, PatientRecord{Condition: ""}.AssignedTo("d1"))
	assert.True(t, PatientRecord{Condition: "Asthma"}.AssignedTo("d1"))
	assert.True(t, PatientRecord{Condition: "Asthma", AssignedDoctorID: "d1"}.AssignedTo("d1"))
	assert.False(t, PatientRecord{Condition: "Asthma", AssignedDoctorID: "d2"}.AssignedTo("d1"))
}

func TestAssistanceProgressIsCapped(t *testing.T) {
	a := AssistanceRequest{
		RequestedAmount: decimal.NewFromInt(1000000),
		RaisedAmount:    decimal.NewFromInt(250000),
	}
	assert.True(t, decimal.NewFromInt(25).Equal(a.Progress()))

	a.RaisedAmount = decimal.NewFromInt(3000000)
	assert.True(t, decimal.NewFromInt(100).Equal(a.Progress()))

	assert.True(t, AssistanceRequest{}.Progress().IsZero())
}

func TestAssistanceNeedsFinancialSupport(t *testing.T) {
	open := AssistanceRequest{Status: AssistanceInProgress, RequestedAmount: decimal.NewFromInt(100), RaisedAmount: decimal.NewFromInt(40)}
	assert.True(t, open.NeedsFinancialSupport())

	funded := open
	funded.RaisedAmount = decimal.NewFromInt(100)
	assert.False(t, funded.NeedsFinancialSupport())

	rejected := open
	rejected.Status = AssistanceRejected
	assert.False(t, rejected.FinanciallyFlagged())
}

func TestAppointmentIsUpcoming(t *testing.T) {
	now := time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)
	a := Appointment{ScheduledAt: now.Add(time.Hour), Status: AppointmentConfirmed}
	assert.True(t, a.IsUpcoming(now))

	a.Status = AppointmentCancelled
	assert.False(t, a.IsUpcoming(now))

	a = Appointment{ScheduledAt: now.Add(-time.Hour), Status: AppointmentScheduled}
	assert.False(t, a.IsUpcoming(now))
}
