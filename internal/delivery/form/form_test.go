package form

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/pkg/validator"
)

var (
	pdfContent  = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
	pngContent  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")
	jpegContent = []byte("\xFF\xD8\xFF\xE0\x00\x10JFIF\x00\x01")
	textContent = []byte("Discharge notes for the follow-up visit.\n")
	gzipContent = []byte("\x1f\x8b\x08\x00\x00\x00\x00\x00\x00\x03")
)

func TestLoginForm(t *testing.T) {
	_, errs := LoginForm.Validate(validator.Values{"email": "not-an-email"})
	require.Len(t, errs, 2)
	assert.Equal(t, "Invalid email address", errs[0].Message)
	assert.Equal(t, "Password is required", errs[1].Message)

	creds, errs := LoginForm.Validate(validator.Values{"email": " an@example.com ", "password": "secret"})
	require.Nil(t, errs)
	assert.Equal(t, Credentials{Email: "an@example.com", Password: "secret"}, creds)
}

func TestRegisterForm(t *testing.T) {
	values := validator.Values{
		"fullName":        "Nguyen Van An",
		"email":           "an@example.com",
		"phone":           "0901234567",
		"password":        "secret1",
		"confirmPassword": "secret2",
		"role":            "admin",
	}

	_, errs := RegisterForm.Validate(values)
	require.Len(t, errs, 2)

	confirm, ok := errs.Field("confirmPassword")
	require.True(t, ok)
	assert.Equal(t, "Passwords do not match", confirm.Message)

	role, ok := errs.Field("role")
	require.True(t, ok)
	assert.Equal(t, "Please choose a valid option", role.Message)

	values["confirmPassword"] = "secret1"
	values["role"] = "charity_admin"
	reg, errs := RegisterForm.Validate(values)
	require.Nil(t, errs)
	assert.Equal(t, entity.RoleCharityAdmin, reg.Role)
}

func TestRegisterForm_PasswordsKeepWhitespace(t *testing.T) {
	values := validator.Values{
		"fullName":        "Nguyen Van An",
		"email":           "an@example.com",
		"phone":           "0901234567",
		"password":        "secret1 ",
		"confirmPassword": "secret1",
		"role":            "patient",
	}

	_, errs := RegisterForm.Validate(values)
	require.Len(t, errs, 1)
	assert.Equal(t, "confirmPassword", errs[0].Field)
	assert.Equal(t, "Passwords do not match", errs[0].Message)

	values["password"] = "  abcd"
	values["confirmPassword"] = "  abcd"
	reg, errs := RegisterForm.Validate(values)
	require.Nil(t, errs)
	assert.Equal(t, "  abcd", reg.Password)

	values["password"] = "      "
	values["confirmPassword"] = "      "
	_, errs = RegisterForm.Validate(values)
	fe, ok := errs.Field("password")
	require.True(t, ok)
	assert.Equal(t, "Password is required", fe.Message)
}

func TestAppointmentForm_DateRules(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC) // Wednesday
	base := func(date string) validator.Values {
		return validator.Values{
			"doctorId":        "d1",
			"appointmentDate": date,
			"appointmentTime": "09:30",
			"patientName":     "An",
			"patientPhone":    "0901234567",
			"patientAge":      "42",
			"symptoms":        "cough",
		}
	}

	tests := []struct {
		name string
		date string
		want string
	}{
		{"malformed", "14/10/2026", "Invalid date"},
		{"past", "2026-10-13", "Date cannot be in the past"},
		{"sunday", "2026-10-18", "Clinic is closed on Sundays"},
		{"today", "2026-10-14", ""},
		{"thursday", "2026-10-15", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, errs := AppointmentForm(now).Validate(base(tt.date))
			if tt.want == "" {
				require.Nil(t, errs)
				assert.Equal(t, tt.date, req.AppointmentDate.Format(DateLayout))
				assert.Equal(t, 42, req.PatientAge)
				return
			}
			fe, ok := errs.Field("appointmentDate")
			require.True(t, ok)
			assert.Equal(t, tt.want, fe.Message)
		})
	}
}

func TestAppointmentForm_SlotsAndAge(t *testing.T) {
	assert.Len(t, ClinicSlots, 16)

	_, errs := AppointmentForm(time.Now()).Validate(validator.Values{
		"appointmentTime": "12:00",
		"patientAge":      "0",
	})
	slot, ok := errs.Field("appointmentTime")
	require.True(t, ok)
	assert.Equal(t, "Please choose a valid option", slot.Message)

	age, ok := errs.Field("patientAge")
	require.True(t, ok)
	assert.Equal(t, "Must be a number of at least %d", age.Message)
	assert.Equal(t, []interface{}{int64(1)}, age.Args)

	_, ok = errs.Field("notes")
	assert.False(t, ok)

	for _, raw := range []string{"1.5", "1e2", "forty"} {
		_, errs := AppointmentForm(time.Now()).Validate(validator.Values{"patientAge": raw})
		age, ok := errs.Field("patientAge")
		require.True(t, ok, raw)
		assert.Equal(t, "Age must be a whole number", age.Message, raw)
	}
}

func TestDonationForm(t *testing.T) {
	values := validator.Values{
		"amount":        "9999",
		"donorName":     "Binh",
		"donorEmail":    "binh@example.com",
		"donorPhone":    "0907654321",
		"paymentMethod": "momo",
		"isAnonymous":   "on",
	}
	_, errs := DonationForm.Validate(values)
	require.Len(t, errs, 1)
	assert.Equal(t, "amount", errs[0].Field)

	values["amount"] = "10000"
	donation, errs := DonationForm.Validate(values)
	require.Nil(t, errs)
	assert.Equal(t, "10000", donation.Amount.String())
	assert.True(t, donation.IsAnonymous)
}

func TestAssistanceForm_ShortTitle(t *testing.T) {
	_, errs := AssistanceForm.Validate(validator.Values{
		"requestType":      "surgery",
		"title":            "Short",
		"description":      strings.Repeat("d", 50),
		"requestedAmount":  "100000",
		"urgency":          "high",
		"contactPhone":     "0901234567",
		"medicalCondition": "Heart disease",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "Must be at least %d characters", errs[0].Message)
	assert.Equal(t, []interface{}{10}, errs[0].Args)
}

func TestChangePasswordForm(t *testing.T) {
	_, errs := ChangePasswordForm.Validate(validator.Values{
		"currentPassword": "old",
		"newPassword":     "abc",
		"confirmPassword": "abc",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "newPassword", errs[0].Field)

	change, errs := ChangePasswordForm.Validate(validator.Values{
		"currentPassword": " old pass ",
		"newPassword":     "new-secret ",
		"confirmPassword": "new-secret ",
	})
	require.Nil(t, errs)
	assert.Equal(t, entity.PasswordChange{CurrentPassword: " old pass ", NewPassword: "new-secret "}, change)

	_, errs = ChangePasswordForm.Validate(validator.Values{
		"currentPassword": "old",
		"newPassword":     "new-secret",
		"confirmPassword": "new-secret ",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "confirmPassword", errs[0].Field)
}

func TestDonationDraft_QuickAmounts(t *testing.T) {
	var draft DonationDraft

	require.NoError(t, draft.SelectQuickAmount(500000))
	assert.Equal(t, "500000", draft.Amount)
	assert.True(t, draft.IsSelected(500000))
	assert.False(t, draft.IsSelected(200000))

	draft.EditAmount("750000")
	assert.Equal(t, "750000", draft.Amount)
	assert.False(t, draft.IsSelected(500000))

	assert.ErrorIs(t, draft.SelectQuickAmount(123), ErrUnknownQuickAmount)
}

func TestAttachmentSet_Add(t *testing.T) {
	set := NewAttachmentSet(nil)

	oversized := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("a"), 6<<20)...)
	rejections := set.Add(
		Upload{Name: "scan.pdf", Content: pdfContent},
		Upload{Name: "xray.png", Content: pngContent},
		Upload{Name: "photo.jpg", Content: jpegContent},
		Upload{Name: "notes.txt", Content: textContent},
		Upload{Name: "big.pdf", Content: oversized},
		Upload{Name: "archive.gz", Content: gzipContent},
		Upload{Name: "scan-copy.pdf", Content: pdfContent},
	)

	assert.Equal(t, []Rejection{
		{Name: "big.pdf", Reason: RejectTooLarge},
		{Name: "archive.gz", Reason: RejectUnsupportedType},
		{Name: "scan-copy.pdf", Reason: RejectDuplicate},
	}, rejections)

	files := set.Files()
	require.Len(t, files, 4)
	assert.Equal(t, "application/pdf", files[0].MIME)
	assert.Equal(t, "image/png", files[1].MIME)
	assert.Equal(t, "image/jpeg", files[2].MIME)
	assert.Equal(t, "text/plain", files[3].MIME)

	// re-adding an already accepted file is rejected, not duplicated
	rejections = set.Add(Upload{Name: "notes.txt", Content: textContent})
	require.Len(t, rejections, 1)
	assert.Len(t, set.Files(), 4)
}

func TestAttachmentSet_DeclaredSizeOverLimit(t *testing.T) {
	set := NewAttachmentSet(nil)
	rejections := set.Add(Upload{Name: "big.pdf", Size: MaxAttachmentSize + 1, Content: pdfContent})
	require.Len(t, rejections, 1)
	assert.Equal(t, RejectTooLarge, rejections[0].Reason)
	assert.Empty(t, set.Files())
}

func TestAttachmentSet_Remove(t *testing.T) {
	set := NewAttachmentSet(nil)
	set.Add(Upload{Name: "a.pdf", Content: pdfContent}, Upload{Name: "b.png", Content: pngContent})

	assert.False(t, set.Remove(5))
	assert.True(t, set.Remove(0))
	require.Len(t, set.Files(), 1)
	assert.Equal(t, "b.png", set.Files()[0].Name)
}

func TestReadSubmission_JSON(t *testing.T) {
	body := `{"formId":"f-1","amount":500000,"isAnonymous":true,"message":null,"donorName":"An"}`
	req := httptest.NewRequest(http.MethodPost, "/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	sub, err := ReadSubmission(req)
	require.NoError(t, err)
	assert.Equal(t, "f-1", sub.FormID)
	assert.Equal(t, "500000", sub.Values["amount"])
	assert.Equal(t, "true", sub.Values["isAnonymous"])
	assert.Equal(t, "An", sub.Values["donorName"])
	_, present := sub.Values["message"]
	assert.False(t, present)
}

func TestReadSubmission_Multipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Surgery support"))
	fw, err := mw.CreateFormFile("attachments", "scan.pdf")
	require.NoError(t, err)
	_, err = fw.Write(pdfContent)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/assistance/attachments", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(FormIDHeader, "f-2")

	sub, err := ReadSubmission(req)
	require.NoError(t, err)
	assert.Equal(t, "f-2", sub.FormID)
	assert.Equal(t, "Surgery support", sub.Values.Get("title"))
	require.Len(t, sub.Uploads, 1)
	assert.Equal(t, pdfContent, sub.Uploads[0].Content)
}

func TestReadSubmission_Unsupported(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("<xml/>"))
	req.Header.Set("Content-Type", "application/xml")

	_, err := ReadSubmission(req)
	assert.ErrorIs(t, err, ErrUnsupportedBody)
}
