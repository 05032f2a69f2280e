package i18n

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Trợ lý AI", T(Vietnamese, "AI Assistant"))
	assert.Equal(t, "AI Assistant", T(English, "AI Assistant"))
}

func TestTranslateWithArgs(t *testing.T) {
	assert.Equal(t, "Phải có ít nhất 6 ký tự", T(Vietnamese, "Must be at least %d characters", 6))
	assert.Equal(t, "Must be at least 6 characters", T(English, "Must be at least %d characters", 6))
}

func TestUnknownLanguageFallsBackToVietnamese(t *testing.T) {
	assert.Equal(t, "Hồ sơ", T("fr", "Profile"))
}

func TestUnknownKeyIsReturnedAsIs(t *testing.T) {
	assert.Equal(t, "Backend says no", T(Vietnamese, "Backend says no"))
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "500.000 ₫", FormatVND(decimal.NewFromInt(500000)))
	assert.Equal(t, "2.000.000 ₫", FormatVND(decimal.NewFromInt(2000000)))
}
