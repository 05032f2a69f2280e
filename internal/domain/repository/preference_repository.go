package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

// PreferenceRepository holds language, theme and notification state per visitor.
type PreferenceRepository interface {
	Get(ctx context.Context, visitorID string) (entity.Preferences, error)
	SetLanguage(ctx context.Context, visitorID string, language entity.Language) error
	ToggleLanguage(ctx context.Context, visitorID string) (entity.Language, error)
	SetTheme(ctx context.Context, visitorID string, theme entity.Theme) error
	ToggleTheme(ctx context.Context, visitorID string) (entity.Theme, error)

	Notifications(ctx context.Context, visitorID string) ([]entity.Notification, error)
	AddNotification(ctx context.Context, visitorID string, notification entity.Notification) (int, error)
	MarkAsRead(ctx context.Context, visitorID string, notificationID string) (int, error)
	MarkAllAsRead(ctx context.Context, visitorID string) error
	SetNotifications(ctx context.Context, visitorID string, notifications []entity.Notification) (int, error)
}
