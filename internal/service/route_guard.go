package service

import (
	"strings"

	"charity-care-portal/internal/domain/entity"
)

type Access int

const (
	// AccessPublic routes render for everyone.
	AccessPublic Access = iota
	// AccessGuestOnly routes send authenticated visitors to the dashboard.
	AccessGuestOnly
	// AccessProtected routes need a session, and one of Roles when Roles is set.
	AccessProtected
)

const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

// RouteRule is the access rule of a top-level path. Sub-paths inherit it.
type RouteRule struct {
	Path   string
	Access Access
	Roles  []entity.Role
}

// DefaultRoutes is the portal's permission table.
func DefaultRoutes() []RouteRule {
	return []RouteRule{
		{Path: "/", Access: AccessGuestOnly},
		{Path: "/login", Access: AccessGuestOnly},
		{Path: "/register", Access: AccessGuestOnly},
		{Path: "/programs", Access: AccessPublic},
		{Path: "/services", Access: AccessPublic},
		{Path: "/organizations", Access: AccessPublic},
		{Path: "/dashboard", Access: AccessProtected},
		{Path: "/profile", Access: AccessProtected},
		{Path: "/doctors", Access: AccessProtected},
		{Path: "/donations", Access: AccessProtected},
		{Path: "/notifications", Access: AccessProtected},
		{Path: "/chatbot", Access: AccessProtected},
		{Path: "/appointments", Access: AccessProtected, Roles: []entity.Role{entity.RolePatient, entity.RoleDoctor, entity.RoleAdmin}},
		{Path: "/patients", Access: AccessProtected, Roles: []entity.Role{entity.RoleDoctor, entity.RoleAdmin, entity.RoleCharityAdmin}},
		{Path: "/assistance", Access: AccessProtected, Roles: []entity.Role{entity.RolePatient, entity.RoleAdmin, entity.RoleCharityAdmin}},
		{Path: "/charity", Access: AccessProtected, Roles: []entity.Role{entity.RoleAdmin, entity.RoleCharityAdmin}},
		{Path: "/users", Access: AccessProtected, Roles: []entity.Role{entity.RoleAdmin}},
		{Path: "/analytics", Access: AccessProtected, Roles: []entity.Role{entity.RoleAdmin}},
	}
}

type DecisionKind int

const (
	DecisionAllow DecisionKind = iota
	DecisionRedirect
	DecisionNotFound
)

// Decision is the outcome of a guard check. To and Notice are only set for
// redirects; Notice may be nil.
type Decision struct {
	Kind   DecisionKind
	To     string
	Notice *entity.Notice
}

func (d Decision) String() string {
	switch d.Kind {
	case DecisionAllow:
		return "allow"
	case DecisionRedirect:
		return "redirect"
	default:
		return "not_found"
	}
}

func allow() Decision {
	return Decision{Kind: DecisionAllow}
}

func redirect(to string, notice *entity.Notice) Decision {
	return Decision{Kind: DecisionRedirect, To: to, Notice: notice}
}

// RouteGuard decides, before any handler runs, whether a target may render.
// It is pure: no I/O, no session mutation.
type RouteGuard struct {
	rules map[string]RouteRule
}

func NewRouteGuard(rules []RouteRule) *RouteGuard {
	indexed := make(map[string]RouteRule, len(rules))
	for _, rule := range rules {
		roles := make([]entity.Role, len(rule.Roles))
		copy(roles, rule.Roles)
		rule.Roles = roles
		indexed[rule.Path] = rule
	}
	return &RouteGuard{rules: indexed}
}

// Rule returns the rule governing target, matched on its first path segment.
func (g *RouteGuard) Rule(target string) (RouteRule, bool) {
	rule, ok := g.rules[topLevel(target)]
	return rule, ok
}

// RolesFor returns the role set of target; nil means any authenticated session.
func (g *RouteGuard) RolesFor(target string) []entity.Role {
	rule, ok := g.Rule(target)
	if !ok || len(rule.Roles) == 0 {
		return nil
	}
	roles := make([]entity.Role, len(rule.Roles))
	copy(roles, rule.Roles)
	return roles
}

// CanRender checks target against the permission table. requiredRoles, when
// given, replace the table's role set for this check.
func (g *RouteGuard) CanRender(session *entity.Session, target string, requiredRoles ...entity.Role) Decision {
	rule, ok := g.Rule(target)
	if !ok {
		return Decision{Kind: DecisionNotFound}
	}

	switch rule.Access {
	case AccessPublic:
		return allow()
	case AccessGuestOnly:
		if session != nil {
			return redirect(PathDashboard, nil)
		}
		return allow()
	}

	if session == nil {
		return redirect(PathLogin, nil)
	}

	roles := rule.Roles
	if len(requiredRoles) > 0 {
		roles = requiredRoles
	}
	if len(roles) > 0 && !session.HasAnyRole(roles...) {
		return redirect(PathDashboard, &entity.Notice{
			Level: entity.NoticeError,
			Key:   entity.NoticeInsufficientPermissions,
		})
	}

	return allow()
}

func topLevel(target string) string {
	path := target
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return "/"
	}
	if i := strings.Index(path, "/"); i >= 0 {
		path = path[:i]
	}
	return "/" + path
}
