package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

// VisitorRepository keeps short-lived per-visitor state: queued notices and
// the navigation sequence used to discard stale responses.
type VisitorRepository interface {
	PushNotice(ctx context.Context, visitorID string, notice entity.Notice) error
	PopNotices(ctx context.Context, visitorID string) ([]entity.Notice, error)
	BeginNavigation(ctx context.Context, visitorID string) (int64, error)
	IsLatestNavigation(ctx context.Context, visitorID string, seq int64) (bool, error)
}
