package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

// NotificationRepository is the backend's notification feed.
type NotificationRepository interface {
	FindAll(ctx context.Context) ([]entity.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
}
