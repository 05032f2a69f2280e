package service

import (
	"testing"

	"charity-care-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navPaths(entries []entity.NavigationEntry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}

func TestSelectNavigation(t *testing.T) {
	selector := NewViewSelector(NewRouteGuard(DefaultRoutes()))

	tests := []struct {
		role entity.Role
		want []string
	}{
		{entity.RolePatient, []string{"/dashboard", "/profile", "/chatbot", "/appointments", "/doctors", "/donations", "/assistance"}},
		{entity.RoleDoctor, []string{"/dashboard", "/profile", "/chatbot", "/appointments", "/patients"}},
		{entity.RoleAdmin, []string{"/dashboard", "/profile", "/chatbot", "/users", "/patients", "/doctors", "/appointments", "/donations", "/assistance", "/charity", "/analytics"}},
		{entity.RoleCharityAdmin, []string{"/dashboard", "/profile", "/chatbot", "/patients", "/donations", "/assistance", "/charity"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			entries, err := selector.SelectNavigation(tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.want, navPaths(entries))
		})
	}
}

func TestSelectNavigation_NonEmptyUniqueAndAllowed(t *testing.T) {
	guard := NewRouteGuard(DefaultRoutes())
	selector := NewViewSelector(guard)

	for _, role := range entity.AllRoles() {
		entries, err := selector.SelectNavigation(role)
		require.NoError(t, err)
		require.NotEmpty(t, entries)

		seen := map[string]bool{}
		for _, e := range entries {
			assert.False(t, seen[e.Path], "duplicate %s for %s", e.Path, role)
			seen[e.Path] = true

			d := guard.CanRender(sessionFor(role), e.Path)
			assert.Equal(t, DecisionAllow, d.Kind, "%s must be reachable by %s", e.Path, role)
			if len(e.RequiredRoles) > 0 {
				assert.Contains(t, e.RequiredRoles, role)
			}
		}
	}
}

func TestSelectNavigation_RequiredRolesFromGuard(t *testing.T) {
	selector := NewViewSelector(NewRouteGuard(DefaultRoutes()))

	entries, err := selector.SelectNavigation(entity.RoleAdmin)
	require.NoError(t, err)
	for _, e := range entries {
		switch e.Path {
		case "/users", "/analytics":
			assert.Equal(t, []entity.Role{entity.RoleAdmin}, e.RequiredRoles)
		case "/dashboard":
			assert.Nil(t, e.RequiredRoles)
		}
	}
}

func TestSelectDashboard(t *testing.T) {
	selector := NewViewSelector(NewRouteGuard(DefaultRoutes()))

	names := map[entity.Role]string{
		entity.RolePatient:      "patient_dashboard",
		entity.RoleDoctor:       "doctor_dashboard",
		entity.RoleAdmin:        "admin_dashboard",
		entity.RoleCharityAdmin: "charity_dashboard",
	}
	for role, name := range names {
		view, err := selector.SelectDashboard(role)
		require.NoError(t, err)
		assert.Equal(t, name, view.Name)
		assert.NotEmpty(t, view.Widgets)
	}
}

func TestSelectorRejectsUnknownRole(t *testing.T) {
	selector := NewViewSelector(NewRouteGuard(DefaultRoutes()))

	_, err := selector.SelectDashboard(entity.Role("superuser"))
	assert.ErrorIs(t, err, entity.ErrInvalidRole)

	entries, err := selector.SelectNavigation(entity.Role(""))
	assert.ErrorIs(t, err, entity.ErrInvalidRole)
	assert.Nil(t, entries)
}
