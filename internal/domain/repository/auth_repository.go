package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

// AuthRepository talks to the backend auth endpoints.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	Register(ctx context.Context, registration *entity.Registration) (*entity.Session, error)
	CurrentUser(ctx context.Context) (*entity.UserAccount, error)
}
