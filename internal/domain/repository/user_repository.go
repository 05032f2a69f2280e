package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

type UserRepository interface {
	FindAll(ctx context.Context, filter entity.UserFilter) ([]entity.UserAccount, error)
	UpdateProfile(ctx context.Context, update *entity.ProfileUpdate) (*entity.UserAccount, error)
	ChangePassword(ctx context.Context, change *entity.PasswordChange) error
}
