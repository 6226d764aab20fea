package auth

import (
	"errors"
	"testing"

	"student-auth-service/internal/domain/credential"
	apperrors "student-auth-service/pkg/errors"
)

func TestPolicyAuthorize(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name          string
		path          string
		role          credential.Role
		authenticated bool
		wantErr       error
	}{
		{"register is public", "/registerStudent", "", false, nil},
		{"login is public", "/loginStudent", "", false, nil},
		{"logout requires authentication", "/logoutStudent", "", false, apperrors.ErrAuthenticationFailed},
		{"logout allows user", "/logoutStudent", credential.RoleUser, true, nil},
		{"logout allows moderator", "/logoutStudent", credential.RoleModerator, true, nil},
		{"logout allows admin", "/logoutStudent", credential.RoleAdmin, true, nil},

		{"user tier allows user", "/user/getStudentById/1", credential.RoleUser, true, nil},
		{"user tier allows moderator", "/user/getStudentById/1", credential.RoleModerator, true, nil},
		{"user tier allows admin", "/user/saveStudent", credential.RoleAdmin, true, nil},
		{"user tier unauthenticated", "/user/getStudentById/1", "", false, apperrors.ErrAuthenticationFailed},

		{"moderator tier denies user", "/moderator/getAllStudent", credential.RoleUser, true, apperrors.ErrAuthorizationDenied},
		{"moderator tier allows moderator", "/moderator/getAllStudent", credential.RoleModerator, true, nil},
		{"moderator tier allows admin", "/moderator/getAllStudent", credential.RoleAdmin, true, nil},

		{"admin tier denies user", "/admin/DeleteStudentById/1", credential.RoleUser, true, apperrors.ErrAuthorizationDenied},
		{"admin tier denies moderator", "/admin/testAdmin", credential.RoleModerator, true, apperrors.ErrAuthorizationDenied},
		{"admin tier allows admin", "/admin/testAdmin", credential.RoleAdmin, true, nil},
		{"admin tier unauthenticated", "/admin/testAdmin", "", false, apperrors.ErrAuthenticationFailed},

		{"catch-all requires authentication", "/anything/else", "", false, apperrors.ErrAuthenticationFailed},
		{"catch-all allows any authenticated role", "/anything/else", credential.RoleUser, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Authorize(tt.path, tt.role, tt.authenticated)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Authorize(%s) unexpected error: %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Authorize(%s) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestPolicyWrongRoleIsAuthorizationNotAuthentication(t *testing.T) {
	policy := DefaultPolicy()

	err := policy.Authorize("/admin/testAdmin", credential.RoleUser, true)
	if !errors.Is(err, apperrors.ErrAuthorizationDenied) {
		t.Fatalf("expected ErrAuthorizationDenied, got: %v", err)
	}
	if errors.Is(err, apperrors.ErrAuthenticationFailed) {
		t.Fatal("a wrong-role rejection must not read as an authentication failure")
	}
}

func TestPolicyLongestPrefixWins(t *testing.T) {
	policy := NewPolicy([]Rule{
		{Path: "/api/", Roles: []credential.Role{credential.RoleUser}},
		{Path: "/api/admin/", Roles: []credential.Role{credential.RoleAdmin}},
	})

	if err := policy.Authorize("/api/admin/settings", credential.RoleUser, true); !errors.Is(err, apperrors.ErrAuthorizationDenied) {
		t.Fatalf("the more specific rule should apply, got: %v", err)
	}
	if err := policy.Authorize("/api/things", credential.RoleUser, true); err != nil {
		t.Fatalf("the general rule should apply: %v", err)
	}
}
