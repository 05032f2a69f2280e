package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/pkg/validator"
)

func newDonationUsecase(t *testing.T) (DonationUsecase, *mockDonationRepo, *mockAssistanceRepo) {
	t.Helper()
	pair := newRepositoryPair(t)
	donations := new(mockDonationRepo)
	assistance := new(mockAssistanceRepo)
	return NewDonationUsecase(testLogger(), donations, assistance, pair.form, pair.visitor, nopAudit{}), donations, assistance
}

func TestQuickAmountThenEditClearsSelection(t *testing.T) {
	uc, _, _ := newDonationUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	draft, err := uc.SelectQuickAmount(ctx, "form-1", 200000)
	require.NoError(t, err)
	assert.Equal(t, "200000", draft.Amount)
	assert.True(t, draft.IsSelected(200000))

	draft, err = uc.EditAmount(ctx, "form-1", "250000")
	require.NoError(t, err)
	assert.Equal(t, "250000", draft.Amount)
	assert.Nil(t, draft.SelectedQuickAmount)

	stored, err := uc.Draft(ctx, "form-1")
	require.NoError(t, err)
	assert.Equal(t, "250000", stored.Amount)
	assert.Nil(t, stored.SelectedQuickAmount)
}

func TestSelectUnknownQuickAmount(t *testing.T) {
	uc, _, _ := newDonationUsecase(t)
	ctx := visitorContext("v1", nil)

	_, err := uc.SelectQuickAmount(ctx, "form-1", 123)
	assert.ErrorIs(t, err, form.ErrUnknownQuickAmount)
}

func TestDonateUsesDraftAmount(t *testing.T) {
	uc, donations, _ := newDonationUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	_, err := uc.SelectQuickAmount(ctx, "form-1", 500000)
	require.NoError(t, err)

	donations.On("Create", mock.Anything, mock.MatchedBy(func(sub *entity.DonationSubmission) bool {
		return sub.Amount.Equal(decimal.NewFromInt(500000)) && sub.PaymentMethod == "momo"
	})).Return(&entity.Donation{ID: "don-1"}, nil).Once()

	donation, err := uc.Donate(ctx, "form-1", validator.Values{
		"donorName":     "Tran Thi B",
		"donorEmail":    "b@example.com",
		"donorPhone":    "0907654321",
		"paymentMethod": "momo",
	})
	require.NoError(t, err)
	assert.Equal(t, "don-1", donation.ID)
	donations.AssertExpectations(t)
}

func TestDonateBelowMinimum(t *testing.T) {
	uc, donations, _ := newDonationUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	_, err := uc.Donate(ctx, "form-1", validator.Values{
		"amount":        "5000",
		"donorName":     "Tran Thi B",
		"donorEmail":    "b@example.com",
		"donorPhone":    "0907654321",
		"paymentMethod": "momo",
	})
	var errs validator.Errors
	require.ErrorAs(t, err, &errs)
	_, ok := errs.Field("amount")
	assert.True(t, ok)
	donations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDonationOverviewCampaigns(t *testing.T) {
	uc, donations, assistance := newDonationUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	donations.On("FindAll", mock.Anything).Return([]entity.Donation{
		{ID: "mine", DonorID: "u1"},
		{ID: "theirs", DonorID: "u2"},
	}, nil)
	assistance.On("FindAll", mock.Anything).Return([]entity.AssistanceRequest{
		{ID: "open", Status: entity.AssistancePending, RequestedAmount: decimal.NewFromInt(1000000), RaisedAmount: decimal.NewFromInt(250000)},
		{ID: "funded", Status: entity.AssistanceInProgress, RequestedAmount: decimal.NewFromInt(1000000), RaisedAmount: decimal.NewFromInt(1000000)},
		{ID: "closed", Status: entity.AssistanceRejected, RequestedAmount: decimal.NewFromInt(1000000)},
	}, nil)

	overview, err := uc.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Donations, 1)
	assert.Equal(t, "mine", overview.Donations[0].ID)
	require.Len(t, overview.Campaigns, 1)
	assert.Equal(t, "open", overview.Campaigns[0].ID)
	assert.Equal(t, form.QuickAmounts, overview.QuickAmounts)
}
