package entity

import (
	"errors"
	"strings"
)

// ErrInvalidRole is returned whenever a role string falls outside the closed role set.
var ErrInvalidRole = errors.New("invalid role")

// Role is one of the four roles recognised by the portal.
type Role string

const (
	RolePatient      Role = "patient"
	RoleDoctor       Role = "doctor"
	RoleAdmin        Role = "admin"
	RoleCharityAdmin Role = "charity_admin"
)

// AllRoles lists the closed role set in display order.
func AllRoles() []Role {
	return []Role{RolePatient, RoleDoctor, RoleAdmin, RoleCharityAdmin}
}

// ParseRole maps a raw role string onto the closed role set.
func ParseRole(raw string) (Role, error) {
	role := Role(strings.TrimSpace(raw))
	switch role {
	case RolePatient, RoleDoctor, RoleAdmin, RoleCharityAdmin:
		return role, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// RoleSwitch has one method per role. Adding a role to the portal means adding a
// method here, which breaks every implementation until it handles the new role.
type RoleSwitch[T any] interface {
	Patient() T
	Doctor() T
	Admin() T
	CharityAdmin() T
}

// MatchRole dispatches to the case of sw that corresponds to role.
func MatchRole[T any](role Role, sw RoleSwitch[T]) (T, error) {
	switch role {
	case RolePatient:
		return sw.Patient(), nil
	case RoleDoctor:
		return sw.Doctor(), nil
	case RoleAdmin:
		return sw.Admin(), nil
	case RoleCharityAdmin:
		return sw.CharityAdmin(), nil
	default:
		var zero T
		return zero, ErrInvalidRole
	}
}

// ContainsRole reports whether role is one of roles.
func ContainsRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
