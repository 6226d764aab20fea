package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-auth-service/internal/domain/credential"
	apperrors "student-auth-service/pkg/errors"
	"student-auth-service/pkg/password"
)

func newTestService(t *testing.T) (*Service, *fakeRevocationStore, *fakePrincipalSource) {
	t.Helper()

	key, err := NewSigningKey()
	require.NoError(t, err)

	store := newFakeRevocationStore()
	credentials := &fakePrincipalSource{principals: make(map[string]*credential.Credential)}
	svc := NewService(credentials, NewTokenService(key), store)

	return svc, store, credentials
}

func seedCredential(t *testing.T, credentials *fakePrincipalSource, username, secret string, role credential.Role) {
	t.Helper()
	hash, err := password.Hash(secret)
	require.NoError(t, err)
	credentials.principals[username] = &credential.Credential{
		ID:           int64(len(credentials.principals) + 1),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
}

func TestLoginIssuesTokenWithCurrentRole(t *testing.T) {
	svc, _, credentials := newTestService(t)
	seedCredential(t, credentials, "alice", "s3cret-pass", credential.RoleUser)

	token, err := svc.Login(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, string(credential.RoleUser), claims.Role)
	assert.Equal(t, TokenTTL, claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

func TestLoginFailureIsUniform(t *testing.T) {
	svc, _, credentials := newTestService(t)
	seedCredential(t, credentials, "alice", "s3cret-pass", credential.RoleUser)

	_, unknownErr := svc.Login(context.Background(), "nobody", "s3cret-pass")
	_, wrongErr := svc.Login(context.Background(), "alice", "wrong-pass")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(unknownErr, apperrors.ErrAuthenticationFailed))
	assert.True(t, errors.Is(wrongErr, apperrors.ErrAuthenticationFailed))
	// The two failures must be indistinguishable to the caller.
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, err := svc.Register(context.Background(), "alice", "s3cret-pass", "")
	require.NoError(t, err)
	assert.Equal(t, credential.RoleUser, created.Role)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)
	assert.True(t, password.Verify("s3cret-pass", created.PasswordHash))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "alice", "s3cret-pass", "SUPERUSER")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "alice", "s3cret-pass", credential.RoleUser)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other-pass", credential.RoleUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestLogoutRevokesForRemainingLifetime(t *testing.T) {
	svc, store, credentials := newTestService(t)
	seedCredential(t, credentials, "alice", "s3cret-pass", credential.RoleUser)

	token, err := svc.Login(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	revoked, err := store.IsRevoked(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestLogoutIsRepeatable(t *testing.T) {
	svc, _, credentials := newTestService(t)
	seedCredential(t, credentials, "alice", "s3cret-pass", credential.RoleUser)

	token, err := svc.Login(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))
	require.NoError(t, svc.Logout(context.Background(), token))
}

func TestLogoutRejectsExpiredTokenWithoutWriting(t *testing.T) {
	svc, store, _ := newTestService(t)

	issued := time.Now().Add(-(TokenTTL + time.Minute))
	svc.tokens.now = func() time.Time { return issued }
	token, err := svc.tokens.Issue("alice", credential.RoleUser)
	require.NoError(t, err)
	svc.tokens.now = time.Now

	err = svc.Logout(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))

	revoked, checkErr := store.IsRevoked(context.Background(), token)
	require.NoError(t, checkErr)
	assert.False(t, revoked, "an expired token must leave no revocation record")
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Logout(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
}

func TestLogoutSurfacesStoreFailure(t *testing.T) {
	svc, store, credentials := newTestService(t)
	seedCredential(t, credentials, "alice", "s3cret-pass", credential.RoleUser)

	token, err := svc.Login(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)

	store.failing = true
	err = svc.Logout(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStoreUnavailable))
}
