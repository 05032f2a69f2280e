package entity

import "time"

type Language string

const (
	LanguageVietnamese Language = "vi"
	LanguageEnglish    Language = "en"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences belong to the visitor, not to the session: they survive logout.
type Preferences struct {
	Language    Language `json:"language"`
	Theme       Theme    `json:"theme"`
	UnreadCount int      `json:"unread_count"`
}

// DefaultPreferences mirrors what a first-time visitor sees.
func DefaultPreferences() Preferences {
	return Preferences{
		Language: LanguageVietnamese,
		Theme:    ThemeLight,
	}
}

func ParseLanguage(raw string) (Language, bool) {
	switch Language(raw) {
	case LanguageVietnamese, LanguageEnglish:
		return Language(raw), true
	}
	return "", false
}

func ParseTheme(raw string) (Theme, bool) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw), true
	}
	return "", false
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LanguageEnglish {
		return LanguageVietnamese
	}
	return LanguageEnglish
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type NotificationType string

const (
	NotificationAppointment NotificationType = "appointment"
	NotificationDonation    NotificationType = "donation"
	NotificationSystem      NotificationType = "system"
	NotificationReminder    NotificationType = "reminder"
	NotificationAlert       NotificationType = "alert"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
