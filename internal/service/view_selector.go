package service

import (
	"charity-care-portal/internal/domain/entity"
)

type Widget string

const (
	WidgetQuickActions         Widget = "quick_actions"
	WidgetUpcomingAppointments Widget = "upcoming_appointments"
	WidgetTodaySchedule        Widget = "today_schedule"
	WidgetAssistanceRequests   Widget = "assistance_requests"
	WidgetPendingAssistance    Widget = "pending_assistance"
	WidgetDonations            Widget = "recent_donations"
	WidgetPatients             Widget = "patients"
	WidgetCampaigns            Widget = "campaigns"
	WidgetPlatformStats        Widget = "platform_stats"
)

// DashboardView names the role-specific dashboard and the widgets it shows.
type DashboardView struct {
	Name     string   `json:"name"`
	TitleKey string   `json:"title_key"`
	Widgets  []Widget `json:"widgets"`
}

var commonNavigation = []entity.NavigationEntry{
	{Path: "/dashboard", LabelKey: "Dashboard"},
	{Path: "/profile", LabelKey: "Profile"},
	{Path: "/chatbot", LabelKey: "AI Assistant"},
}

type dashboardSwitch struct{}

func (dashboardSwitch) Patient() DashboardView {
	return DashboardView{
		Name:     "patient_dashboard",
		TitleKey: "Patient Dashboard",
		Widgets:  []Widget{WidgetQuickActions, WidgetUpcomingAppointments, WidgetAssistanceRequests, WidgetDonations},
	}
}

func (dashboardSwitch) Doctor() DashboardView {
	return DashboardView{
		Name:     "doctor_dashboard",
		TitleKey: "Doctor Dashboard",
		Widgets:  []Widget{WidgetTodaySchedule, WidgetUpcomingAppointments, WidgetPatients},
	}
}

func (dashboardSwitch) Admin() DashboardView {
	return DashboardView{
		Name:     "admin_dashboard",
		TitleKey: "Admin Dashboard",
		Widgets:  []Widget{WidgetPlatformStats, WidgetPendingAssistance, WidgetDonations},
	}
}

func (dashboardSwitch) CharityAdmin() DashboardView {
	return DashboardView{
		Name:     "charity_dashboard",
		TitleKey: "Charity Dashboard",
		Widgets:  []Widget{WidgetPendingAssistance, WidgetCampaigns, WidgetDonations},
	}
}

type navigationSwitch struct{}

func (navigationSwitch) Patient() []entity.NavigationEntry {
	return []entity.NavigationEntry{
		{Path: "/appointments", LabelKey: "Appointments"},
		{Path: "/doctors", LabelKey: "Doctors"},
		{Path: "/donations", LabelKey: "Donations"},
		{Path: "/assistance", LabelKey: "Assistance"},
	}
}

func (navigationSwitch) Doctor() []entity.NavigationEntry {
	return []entity.NavigationEntry{
		{Path: "/appointments", LabelKey: "Appointments"},
		{Path: "/patients", LabelKey: "Patients"},
	}
}

func (navigationSwitch) Admin() []entity.NavigationEntry {
	return []entity.NavigationEntry{
		{Path: "/users", LabelKey: "Users"},
		{Path: "/patients", LabelKey: "Patients"},
		{Path: "/doctors", LabelKey: "Doctors"},
		{Path: "/appointments", LabelKey: "Appointments"},
		{Path: "/donations", LabelKey: "Donations"},
		{Path: "/assistance", LabelKey: "Assistance"},
		{Path: "/charity", LabelKey: "Charity"},
		{Path: "/analytics", LabelKey: "Analytics"},
	}
}

func (navigationSwitch) CharityAdmin() []entity.NavigationEntry {
	return []entity.NavigationEntry{
		{Path: "/patients", LabelKey: "Patients"},
		{Path: "/donations", LabelKey: "Donations"},
		{Path: "/assistance", LabelKey: "Assistance"},
		{Path: "/charity", LabelKey: "Charity"},
	}
}

// ViewSelector picks role-specific dashboards and navigation. Every role is
// handled through entity.MatchRole; an unknown role is an error, never a default.
type ViewSelector struct {
	guard *RouteGuard
}

func NewViewSelector(guard *RouteGuard) *ViewSelector {
	return &ViewSelector{guard: guard}
}

func (s *ViewSelector) SelectDashboard(role entity.Role) (DashboardView, error) {
	return entity.MatchRole[DashboardView](role, dashboardSwitch{})
}

// SelectNavigation returns the common entries followed by the role's entries,
// without duplicate paths. RequiredRoles come from the guard's table so a
// link is never shown that the guard would refuse.
func (s *ViewSelector) SelectNavigation(role entity.Role) ([]entity.NavigationEntry, error) {
	roleEntries, err := entity.MatchRole[[]entity.NavigationEntry](role, navigationSwitch{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(commonNavigation)+len(roleEntries))
	entries := make([]entity.NavigationEntry, 0, len(commonNavigation)+len(roleEntries))
	for _, group := range [][]entity.NavigationEntry{commonNavigation, roleEntries} {
		for _, entry := range group {
			if _, dup := seen[entry.Path]; dup {
				continue
			}
			seen[entry.Path] = struct{}{}
			entry.RequiredRoles = s.guard.RolesFor(entry.Path)
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
