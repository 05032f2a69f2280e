package usecase

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/pkg/validator"
)

func assistanceValues() validator.Values {
	return validator.Values{
		"requestType":      "surgery",
		"title":            "Heart surgery for my son",
		"description":      strings.Repeat("The doctors say he needs an operation soon. ", 2),
		"requestedAmount":  "50000000",
		"urgency":          "high",
		"contactPhone":     "0901234567",
		"medicalCondition": "Congenital heart defect",
	}
}

func newAssistanceUsecase(t *testing.T) (AssistanceUsecase, *mockAssistanceRepo, *repositoryPair) {
	t.Helper()
	pair := newRepositoryPair(t)
	repo := new(mockAssistanceRepo)
	return NewAssistanceUsecase(testLogger(), repo, pair.form, pair.visitor, nopAudit{}), repo, pair
}

func TestAssistanceSubmitRejectsShortTitleWithoutBackendCall(t *testing.T) {
	uc, repo, _ := newAssistanceUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	values := assistanceValues()
	values["title"] = "Help"

	_, err := uc.Submit(ctx, "form-1", values)
	require.Error(t, err)

	var errs validator.Errors
	require.ErrorAs(t, err, &errs)
	_, ok := errs.Field("title")
	assert.True(t, ok)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssistanceSubmitSendsStagedAttachments(t *testing.T) {
	uc, repo, pair := newAssistanceUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	staged, err := uc.AddAttachments(ctx, "form-1", []form.Upload{
		{Name: "report.pdf", Content: []byte("%PDF-1.4\n%test\n")},
		{Name: "archive.gz", Content: []byte{0x1f, 0x8b, 0x08, 0x00}},
	})
	require.NoError(t, err)
	require.Len(t, staged.Files, 1)
	require.Len(t, staged.Rejections, 1)
	assert.Equal(t, form.RejectUnsupportedType, staged.Rejections[0].Reason)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(sub *entity.AssistanceSubmission) bool {
		return len(sub.Attachments) == 1 && sub.Attachments[0].Name == "report.pdf" &&
			sub.RequestedAmount.Equal(decimal.NewFromInt(50000000))
	})).Return(&entity.AssistanceRequest{ID: "req-1"}, nil).Once()

	request, err := uc.Submit(ctx, "form-1", assistanceValues())
	require.NoError(t, err)
	assert.Equal(t, "req-1", request.ID)
	repo.AssertExpectations(t)

	files, err := pair.form.LoadAttachments(ctx, "v1", "form-1")
	require.NoError(t, err)
	assert.Empty(t, files)

	notices, err := pair.visitor.PopNotices(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, entity.NoticeAssistanceSubmitted, notices[0].Key)
}

func TestAssistanceSubmitWhileInFlight(t *testing.T) {
	uc, repo, pair := newAssistanceUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	acquired, err := pair.form.AcquireSubmit(ctx, "v1", "form-1")
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = uc.Submit(ctx, "form-1", assistanceValues())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssistanceSubmitRequiresFormID(t *testing.T) {
	uc, _, _ := newAssistanceUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	_, err := uc.Submit(ctx, "", assistanceValues())
	assert.ErrorIs(t, err, ErrMissingFormID)
}

func TestAssistanceStagedAttachmentsBelongToOneVisitor(t *testing.T) {
	uc, repo, _ := newAssistanceUsecase(t)
	alice := visitorContext("v-alice", sessionFor("u1", entity.RolePatient))
	bob := visitorContext("v-bob", sessionFor("u2", entity.RolePatient))

	_, err := uc.AddAttachments(alice, "shared-form", []form.Upload{{Name: "lab-result.txt", Content: []byte("hemoglobin 9.1 g/dL")}})
	require.NoError(t, err)

	staged, err := uc.StagedAttachments(bob, "shared-form")
	require.NoError(t, err)
	assert.Empty(t, staged.Files)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(sub *entity.AssistanceSubmission) bool {
		return len(sub.Attachments) == 0
	})).Return(&entity.AssistanceRequest{ID: "req-2"}, nil).Once()

	_, err = uc.Submit(bob, "shared-form", assistanceValues())
	require.NoError(t, err)
	repo.AssertExpectations(t)

	staged, err = uc.StagedAttachments(alice, "shared-form")
	require.NoError(t, err)
	require.Len(t, staged.Files, 1)
	assert.Equal(t, "lab-result.txt", staged.Files[0].Name)
}

func TestAssistanceRemoveAttachment(t *testing.T) {
	uc, _, _ := newAssistanceUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	_, err := uc.AddAttachments(ctx, "form-1", []form.Upload{{Name: "note.txt", Content: []byte("blood pressure 120/80")}})
	require.NoError(t, err)

	_, err = uc.RemoveAttachment(ctx, "form-1", 3)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)

	staged, err := uc.RemoveAttachment(ctx, "form-1", 0)
	require.NoError(t, err)
	assert.Empty(t, staged.Files)
}

func TestAssistanceUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc, repo, _ := newAssistanceUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RoleAdmin))

	_, err := uc.UpdateStatus(ctx, "req-1", "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssistanceListForPatientShowsOwnRequests(t *testing.T) {
	uc, repo, _ := newAssistanceUsecase(t)
	ctx := visitorContext("v1", sessionFor("u1", entity.RolePatient))

	repo.On("FindAll", mock.Anything).Return([]entity.AssistanceRequest{
		{ID: "a", PatientID: "u1"},
		{ID: "b", PatientID: "u2"},
	}, nil)

	requests, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "a", requests[0].ID)
}
