package dto

import "charity-care-portal/internal/domain/entity"

// View is the document every page handler returns. The client picks the
// component to render from View and fills it with Data.
type View struct {
	View        string             `json:"view"`
	Title       string             `json:"title,omitempty"`
	Navigation  []NavItem          `json:"navigation,omitempty"`
	Notices     []NoticeView       `json:"notices,omitempty"`
	Preferences entity.Preferences `json:"preferences"`
	User        *UserView          `json:"user,omitempty"`
	FormID      string             `json:"form_id,omitempty"`
	Errors      []FieldErrorView   `json:"errors,omitempty"`
	Data        interface{}        `json:"data,omitempty"`
}

type NavItem struct {
	Path          string        `json:"path"`
	Label         string        `json:"label"`
	Active        bool          `json:"active"`
	RequiredRoles []entity.Role `json:"required_roles,omitempty"`
}

type NoticeView struct {
	Level   entity.NoticeLevel `json:"level"`
	Message string             `json:"message"`
}

type UserView struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

type FieldErrorView struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
