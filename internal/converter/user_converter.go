package converter

import (
	"time"

	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
)

// AuthResponseToSession builds a session from a login or register response.
// The role is copied verbatim; unknown roles are rejected later, at render time.
func AuthResponseToSession(resp *dto.AuthResponse) *entity.Session {
	if resp == nil {
		return nil
	}

	return &entity.Session{
		UserID:          resp.User.ID,
		Role:            entity.Role(resp.User.Role),
		DisplayName:     resp.User.FullName,
		Email:           resp.User.Email,
		CredentialToken: resp.Token,
		CreatedAt:       time.Now().UTC(),
	}
}

func UserResponseToEntity(resp *dto.UserResponse) *entity.UserAccount {
	if resp == nil {
		return nil
	}

	status := entity.AccountStatus(resp.Status)
	if status == "" {
		status = entity.AccountActive
	}

	return &entity.UserAccount{
		ID:        resp.ID,
		FullName:  resp.FullName,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Role:      entity.Role(resp.Role),
		Status:    status,
		Verified:  resp.Verified,
		CreatedAt: parseTime(resp.CreatedAt),
		LastLogin: parseOptionalTime(resp.LastLogin),
	}
}

func UserResponsesToEntities(resps []dto.UserResponse) []entity.UserAccount {
	users := make([]entity.UserAccount, 0, len(resps))
	for i := range resps {
		users = append(users, *UserResponseToEntity(&resps[i]))
	}
	return users
}

func RegistrationToRequest(reg *entity.Registration) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FullName: reg.FullName,
		Email:    reg.Email,
		Phone:    reg.Phone,
		Password: reg.Password,
		Role:     string(reg.Role),
	}
}
