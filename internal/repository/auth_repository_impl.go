package repository

import (
	"context"
	"errors"
	"fmt"

	"charity-care-portal/internal/converter"
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/apiclient"
	"charity-care-portal/pkg/validator"
)

// ErrMalformedResponse is returned when a backend payload is missing required fields.
var ErrMalformedResponse = errors.New("malformed backend response")

type authRepository struct {
	client    *apiclient.Client
	validator *validator.CustomValidator
}

func NewAuthRepository(client *apiclient.Client, validator *validator.CustomValidator) domainRepo.AuthRepository {
	return &authRepository{client: client, validator: validator}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp dto.AuthResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := r.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return r.toSession(&resp)
}

func (r *authRepository) Register(ctx context.Context, registration *entity.Registration) (*entity.Session, error) {
	var resp dto.AuthResponse
	if err := r.client.Post(ctx, "/auth/register", converter.RegistrationToRequest(registration), &resp); err != nil {
		return nil, err
	}
	return r.toSession(&resp)
}

func (r *authRepository) CurrentUser(ctx context.Context) (*entity.UserAccount, error) {
	var resp dto.UserResponse
	if err := r.client.Get(ctx, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	if err := r.validator.Validate(&resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, r.validator.FormatValidationErrors(err))
	}
	return converter.UserResponseToEntity(&resp), nil
}

func (r *authRepository) toSession(resp *dto.AuthResponse) (*entity.Session, error) {
	if err := r.validator.Validate(resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, r.validator.FormatValidationErrors(err))
	}
	return converter.AuthResponseToSession(resp), nil
}
