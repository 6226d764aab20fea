package auth

import (
	"errors"
	"testing"
	"time"

	"student-auth-service/internal/domain/credential"
	apperrors "student-auth-service/pkg/errors"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	key, err := NewSigningKey()
	if err != nil {
		t.Fatalf("failed to generate signing key: %v", err)
	}
	return NewTokenService(key)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	tests := []struct {
		name    string
		subject string
		role    credential.Role
	}{
		{"user role", "alice", credential.RoleUser},
		{"moderator role", "bob", credential.RoleModerator},
		{"admin role", "carol", credential.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Issue(tt.subject, tt.role)
			if err != nil {
				t.Fatalf("Issue error: %v", err)
			}

			claims, err := svc.Verify(token)
			if err != nil {
				t.Fatalf("Verify error: %v", err)
			}
			if claims.Subject != tt.subject {
				t.Errorf("subject = %q, want %q", claims.Subject, tt.subject)
			}
			if claims.Role != string(tt.role) {
				t.Errorf("role = %q, want %q", claims.Role, tt.role)
			}
			if got := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time); got != TokenTTL {
				t.Errorf("exp - iat = %v, want %v", got, TokenTTL)
			}
		})
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := newTestTokenService(t)
	verifier := newTestTokenService(t)

	token, err := issuer.Issue("alice", credential.RoleUser)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(token)
	if err == nil {
		t.Fatal("expected verification failure with a different key")
	}
	if !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Fatalf("error should wrap ErrInvalidToken, got: %v", err)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, apperrors.ErrInvalidToken) {
			t.Errorf("Verify(%q) should wrap ErrInvalidToken, got: %v", token, err)
		}
	}
}

func TestExpiryIsCheckedIndependentlyOfSignature(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("alice", credential.RoleUser)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Move the verifier's clock past the token's expiry. The signature is
	// still valid, so Verify succeeds and only Expired flips.
	svc.now = func() time.Time { return time.Now().Add(TokenTTL + time.Minute) }

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify should not fail on an expired but well-signed token: %v", err)
	}
	if !svc.Expired(claims) {
		t.Fatal("token should be reported expired")
	}
	if svc.Remaining(claims) > 0 {
		t.Fatal("remaining lifetime should be negative after expiry")
	}
}

func TestExpiredIsFalseWithinLifetime(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("alice", credential.RoleUser)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if svc.Expired(claims) {
		t.Fatal("fresh token should not be expired")
	}
	if svc.Remaining(claims) <= 0 {
		t.Fatal("fresh token should have positive remaining lifetime")
	}
}
