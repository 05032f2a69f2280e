package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

// SessionRepository holds at most one live Session per visitor.
type SessionRepository interface {
	// Get returns nil, nil when the visitor is not authenticated.
	Get(ctx context.Context, visitorID string) (*entity.Session, error)
	// Login replaces the visitor identity and clears stale notifications in one step.
	Login(ctx context.Context, visitorID string, session *entity.Session) error
	Logout(ctx context.Context, visitorID string) error
}
