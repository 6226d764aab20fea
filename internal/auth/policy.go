package auth

import (
	"sort"
	"strings"

	"student-auth-service/internal/domain/credential"
	apperrors "student-auth-service/pkg/errors"
)

// Rule binds a route pattern to the set of roles allowed through it. A Path
// ending in "/" matches by prefix; any other Path matches exactly. Role sets
// are flat: a higher role reaches a lower tier only by being listed in that
// tier's rule explicitly, never through inheritance.
type Rule struct {
	Path   string
	Public bool
	Roles  []credential.Role
}

// Policy is the static route authorization table, consulted after identity
// binding and before any handler runs. Matching is deterministic
// longest-prefix; unmatched paths fall through to an authenticated catch-all.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules []Rule) *Policy {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	// Longest pattern wins; order among equal lengths is stable.
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Path) > len(sorted[j].Path)
	})
	return &Policy{rules: sorted}
}

// DefaultPolicy is the deployment route table. ADMIN and MODERATOR appear in
// lower-tier rules explicitly rather than through role inheritance.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Path: "/registerStudent", Public: true},
		{Path: "/loginStudent", Public: true},
		{Path: "/health", Public: true},
		{Path: "/logoutStudent", Roles: []credential.Role{credential.RoleUser, credential.RoleModerator, credential.RoleAdmin}},
		{Path: "/admin/", Roles: []credential.Role{credential.RoleAdmin}},
		{Path: "/moderator/", Roles: []credential.Role{credential.RoleModerator, credential.RoleAdmin}},
		{Path: "/user/", Roles: []credential.Role{credential.RoleUser, credential.RoleModerator, credential.RoleAdmin}},
	})
}

// Authorize decides whether a request for path may proceed. authenticated
// reports whether identity binding succeeded; role is the bound role and is
// ignored when authenticated is false. An unauthenticated request on a
// protected route fails as an authentication error; an authenticated request
// whose role is outside the rule's set fails as an authorization error.
func (p *Policy) Authorize(path string, role credential.Role, authenticated bool) error {
	rule := p.match(path)

	if rule != nil && rule.Public {
		return nil
	}

	if !authenticated {
		return apperrors.AuthenticationFailed()
	}

	if rule == nil || len(rule.Roles) == 0 {
		// Authenticated catch-all.
		return nil
	}

	for _, allowed := range rule.Roles {
		if role == allowed {
			return nil
		}
	}

	return apperrors.AuthorizationDenied(msgInsufficientRole)
}

func (p *Policy) match(path string) *Rule {
	for i := range p.rules {
		rule := &p.rules[i]
		if strings.HasSuffix(rule.Path, "/") {
			if strings.HasPrefix(path, rule.Path) || path == strings.TrimSuffix(rule.Path, "/") {
				return rule
			}
			continue
		}
		if path == rule.Path {
			return rule
		}
	}
	return nil
}
