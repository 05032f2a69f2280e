package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/pkg/validator"
)

// DateLayout is the wire format of date inputs.
const DateLayout = "2006-01-02"

// ClinicSlots are the bookable appointment times.
var ClinicSlots = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

var (
	PaymentMethods = []string{"bank_transfer", "momo", "zalopay", "vnpay"}
	RequestTypes   = []string{"medical_treatment", "medication", "equipment", "surgery", "emergency", "rehabilitation", "other"}
	UrgencyLevels  = []string{"low", "medium", "high", "critical"}
	RegisterRoles  = []string{string(entity.RolePatient), string(entity.RoleDoctor), string(entity.RoleCharityAdmin)}
)

const (
	MinDonationAmount   = 10000
	MinAssistanceAmount = 100000
	MinPasswordLength   = 6
)

// Credentials is the decoded login form.
type Credentials struct {
	Email    string
	Password string
}

var LoginForm = validator.NewForm("login",
	validator.NewSchema(
		validator.NewField("email", validator.Required("Email is required"), validator.Email()),
		validator.NewSecretField("password", validator.Required("Password is required")),
	),
	func(v validator.Values) Credentials {
		return Credentials{
			Email:    v.Get("email"),
			Password: v.Raw("password"),
		}
	},
)

var RegisterForm = validator.NewForm("register",
	validator.NewSchema(
		validator.NewField("fullName", validator.Required("Full name is required")),
		validator.NewField("email", validator.Required("Email is required"), validator.Email()),
		validator.NewField("phone", validator.Required("Phone number is required")),
		validator.NewSecretField("password", validator.Required("Password is required"), validator.MinLength(MinPasswordLength)),
		validator.NewSecretField("confirmPassword",
			validator.Required("Please confirm your password"),
			validator.EqualsField("password", "Passwords do not match"),
		),
		validator.NewField("role", validator.Required("Please select a role"), validator.OneOf(RegisterRoles...)),
	),
	func(v validator.Values) entity.Registration {
		return entity.Registration{
			FullName: v.Get("fullName"),
			Email:    v.Get("email"),
			Phone:    v.Get("phone"),
			Password: v.Raw("password"),
			Role:     entity.Role(v.Get("role")),
		}
	},
)

// AppointmentForm is built per request because the date rules depend on today.
func AppointmentForm(now time.Time) *validator.Form[entity.AppointmentRequest] {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return validator.NewForm("appointment",
		validator.NewSchema(
			validator.NewField("doctorId", validator.Required("Please select a doctor")),
			validator.NewField("appointmentDate",
				validator.Required("Please select a date"),
				validator.Custom("Invalid date", func(value string) bool {
					_, err := time.Parse(DateLayout, value)
					return err == nil
				}),
				validator.Custom("Date cannot be in the past", func(value string) bool {
					date, _ := time.Parse(DateLayout, value)
					return !date.Before(today)
				}),
				validator.Custom("Clinic is closed on Sundays", func(value string) bool {
					date, _ := time.Parse(DateLayout, value)
					return date.Weekday() != time.Sunday
				}),
			),
			validator.NewField("appointmentTime", validator.Required("Please select a time"), validator.OneOf(ClinicSlots...)),
			validator.NewField("patientName", validator.Required("Patient name is required")),
			validator.NewField("patientPhone", validator.Required("Phone number is required")),
			validator.NewField("patientAge",
				validator.Required("Patient age is required"),
				validator.Custom("Age must be a whole number", func(value string) bool {
					_, err := strconv.Atoi(value)
					return err == nil
				}),
				validator.MinNumber(1),
			),
			validator.NewField("symptoms", validator.Required("Please describe your symptoms")),
			validator.NewField("notes"),
		),
		func(v validator.Values) entity.AppointmentRequest {
			date, _ := time.Parse(DateLayout, v.Get("appointmentDate"))
			age, _ := strconv.Atoi(v.Get("patientAge"))
			return entity.AppointmentRequest{
				DoctorID:        v.Get("doctorId"),
				AppointmentDate: date,
				AppointmentTime: v.Get("appointmentTime"),
				PatientName:     v.Get("patientName"),
				PatientPhone:    v.Get("patientPhone"),
				PatientAge:      age,
				Symptoms:        v.Get("symptoms"),
				Notes:           v.Get("notes"),
			}
		},
	)
}

var DonationForm = validator.NewForm("donation",
	validator.NewSchema(
		validator.NewField("amount", validator.Required("Amount is required"), validator.MinNumber(MinDonationAmount)),
		validator.NewField("donorName", validator.Required("Donor name is required")),
		validator.NewField("donorEmail", validator.Required("Email is required"), validator.Email()),
		validator.NewField("donorPhone", validator.Required("Phone number is required")),
		validator.NewField("message"),
		validator.NewField("paymentMethod", validator.Required("Please select a payment method"), validator.OneOf(PaymentMethods...)),
		validator.NewField("isAnonymous"),
		validator.NewField("campaignId"),
	),
	func(v validator.Values) entity.DonationSubmission {
		amount, _ := decimal.NewFromString(v.Get("amount"))
		return entity.DonationSubmission{
			Amount:        amount,
			DonorName:     v.Get("donorName"),
			DonorEmail:    v.Get("donorEmail"),
			DonorPhone:    v.Get("donorPhone"),
			Message:       v.Get("message"),
			PaymentMethod: v.Get("paymentMethod"),
			IsAnonymous:   checked(v.Get("isAnonymous")),
			CampaignID:    v.Get("campaignId"),
		}
	},
)

// AssistanceForm decodes everything except attachments, which are staged separately.
var AssistanceForm = validator.NewForm("assistance",
	validator.NewSchema(
		validator.NewField("requestType", validator.Required("Please select a request type"), validator.OneOf(RequestTypes...)),
		validator.NewField("title", validator.Required("Title is required"), validator.MinLength(10)),
		validator.NewField("description", validator.Required("Description is required"), validator.MinLength(50)),
		validator.NewField("requestedAmount", validator.Required("Requested amount is required"), validator.MinNumber(MinAssistanceAmount)),
		validator.NewField("urgency", validator.Required("Please select an urgency level"), validator.OneOf(UrgencyLevels...)),
		validator.NewField("contactPhone", validator.Required("Phone number is required")),
		validator.NewField("medicalCondition", validator.Required("Medical condition is required")),
	),
	func(v validator.Values) entity.AssistanceSubmission {
		amount, _ := decimal.NewFromString(v.Get("requestedAmount"))
		return entity.AssistanceSubmission{
			RequestType:      v.Get("requestType"),
			Title:            v.Get("title"),
			Description:      v.Get("description"),
			RequestedAmount:  amount,
			Urgency:          v.Get("urgency"),
			ContactPhone:     v.Get("contactPhone"),
			MedicalCondition: v.Get("medicalCondition"),
		}
	},
)

var ChangePasswordForm = validator.NewForm("change_password",
	validator.NewSchema(
		validator.NewSecretField("currentPassword", validator.Required("Current password is required")),
		validator.NewSecretField("newPassword", validator.Required("New password is required"), validator.MinLength(MinPasswordLength)),
		validator.NewSecretField("confirmPassword",
			validator.Required("Please confirm your password"),
			validator.EqualsField("newPassword", "Passwords do not match"),
		),
	),
	func(v validator.Values) entity.PasswordChange {
		return entity.PasswordChange{
			CurrentPassword: v.Raw("currentPassword"),
			NewPassword:     v.Raw("newPassword"),
		}
	},
)

var ProfileForm = validator.NewForm("profile",
	validator.NewSchema(
		validator.NewField("fullName", validator.Required("Full name is required")),
		validator.NewField("phone", validator.Required("Phone number is required")),
	),
	func(v validator.Values) entity.ProfileUpdate {
		return entity.ProfileUpdate{
			FullName: v.Get("fullName"),
			Phone:    v.Get("phone"),
		}
	},
)

var ChatbotForm = validator.NewForm("chatbot",
	validator.NewSchema(
		validator.NewField("message", validator.Required("Message is required")),
	),
	func(v validator.Values) string {
		return v.Get("message")
	},
)

func checked(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}
