package repository

import (
	"context"
	"net/url"

	"charity-care-portal/internal/converter"
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/apiclient"
)

type userRepository struct {
	client *apiclient.Client
}

func NewUserRepository(client *apiclient.Client) domainRepo.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) FindAll(ctx context.Context, filter entity.UserFilter) ([]entity.UserAccount, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Role != "" {
		query.Set("role", string(filter.Role))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	var resp []dto.UserResponse
	if err := r.client.Get(ctx, "/users", query, &resp); err != nil {
		return nil, err
	}
	return converter.UserResponsesToEntities(resp), nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, update *entity.ProfileUpdate) (*entity.UserAccount, error) {
	var resp dto.UserResponse
	req := dto.UpdateProfileRequest{FullName: update.FullName, Phone: update.Phone}
	if err := r.client.Put(ctx, "/users/profile", req, &resp); err != nil {
		return nil, err
	}
	return converter.UserResponseToEntity(&resp), nil
}

func (r *userRepository) ChangePassword(ctx context.Context, change *entity.PasswordChange) error {
	req := dto.ChangePasswordRequest{CurrentPassword: change.CurrentPassword, NewPassword: change.NewPassword}
	return r.client.Put(ctx, "/users/change-password", req, nil)
}
