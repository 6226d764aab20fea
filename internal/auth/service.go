package auth

import (
	"context"

	"student-auth-service/internal/domain/credential"
	"student-auth-service/internal/revocation"
	apperrors "student-auth-service/pkg/errors"
	"student-auth-service/pkg/password"
)

// CredentialStore is the slice of the credential repository the
// authentication service needs.
type CredentialStore interface {
	Create(ctx context.Context, input credential.CreateCredentialInput) (*credential.Credential, error)
	GetByUsername(ctx context.Context, username string) (*credential.Credential, error)
}

// Service orchestrates registration, login (verify credentials, issue token)
// and logout (revoke token).
type Service struct {
	credentials CredentialStore
	tokens      *TokenService
	store       revocation.Store
}

func NewService(credentials CredentialStore, tokens *TokenService, store revocation.Store) *Service {
	return &Service{
		credentials: credentials,
		tokens:      tokens,
		store:       store,
	}
}

// Register hashes the secret and creates a credential. An empty role
// defaults to USER.
func (s *Service) Register(ctx context.Context, username, secret string, role credential.Role) (*credential.Credential, error) {
	if role == "" {
		role = credential.RoleUser
	}
	if !role.Valid() {
		return nil, apperrors.BadRequest("unknown role")
	}

	hash, err := password.Hash(secret)
	if err != nil {
		return nil, apperrors.InternalServer("failed to process password", err)
	}

	return s.credentials.Create(ctx, credential.CreateCredentialInput{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
}

// Login verifies the credentials and issues a token carrying the principal's
// current role. Every failure surfaces the same uniform error so callers
// cannot distinguish an unknown username from a wrong password.
func (s *Service) Login(ctx context.Context, username, secret string) (string, error) {
	principal, err := s.credentials.GetByUsername(ctx, username)
	if err != nil {
		// Run bcrypt against a dummy hash so unknown usernames take as
		// long as wrong passwords.
		password.Verify(secret, password.DummyHash)
		return "", apperrors.AuthenticationFailed()
	}

	if !password.Verify(secret, principal.PasswordHash) {
		return "", apperrors.AuthenticationFailed()
	}

	token, err := s.tokens.Issue(principal.Username, principal.Role)
	if err != nil {
		return "", apperrors.InternalServer("failed to issue token", err)
	}

	return token, nil
}

// Logout revokes a structurally valid token for the remainder of its
// lifetime. A token that has already expired is reported as such and no
// record is written: a zero-or-negative TTL would be a silent no-op in the
// store and is rejected explicitly instead. Revoking an already-revoked
// token overwrites the record with an equivalent TTL, so repeats succeed.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return err
	}

	remaining := s.tokens.Remaining(claims)
	if remaining <= 0 {
		return apperrors.TokenExpired("token has already expired")
	}

	return s.store.Revoke(ctx, token, claims.Subject, remaining)
}
