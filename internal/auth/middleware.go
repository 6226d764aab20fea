package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"student-auth-service/internal/domain/credential"
	"student-auth-service/internal/revocation"
)

// PrincipalSource resolves the current principal for a token subject. It is
// the credential-lookup collaborator consumed by identity binding.
type PrincipalSource interface {
	GetByUsername(ctx context.Context, username string) (*credential.Credential, error)
}

const defaultLookupTimeout = 3 * time.Second

// Middleware is the per-request authentication pipeline: revocation guard,
// then identity binding, then route authorization. The order is fixed — the
// blacklist is consulted before any claim extracted from the token is
// trusted.
type Middleware struct {
	tokens        *TokenService
	store         revocation.Store
	principals    PrincipalSource
	policy        *Policy
	lookupTimeout time.Duration
}

func NewMiddleware(tokens *TokenService, store revocation.Store, principals PrincipalSource, policy *Policy, lookupTimeout time.Duration) *Middleware {
	if lookupTimeout <= 0 {
		lookupTimeout = defaultLookupTimeout
	}
	return &Middleware{
		tokens:        tokens,
		store:         store,
		principals:    principals,
		policy:        policy,
		lookupTimeout: lookupTimeout,
	}
}

// RevocationGuard rejects any request bearing a blacklisted token before the
// token is decoded. A store failure is treated as revoked: on uncertainty
// the pipeline denies, never silently authenticates.
func (m *Middleware) RevocationGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return next(c)
			}

			revoked, err := m.store.IsRevoked(c.Request().Context(), token)
			if err != nil || revoked {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":   msgRevokedError,
					"message": msgRevokedMessage,
				})
			}

			return next(c)
		}
	}
}

// BindIdentity decodes a bearer token and, when its signature verifies, its
// expiry has not passed, and its embedded role still equals the principal's
// current role, binds subject and role into the request context. Any failure
// leaves the request unauthenticated; rejection happens at the policy stage.
// Running twice is a no-op.
func (m *Middleware) BindIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return next(c)
			}
			if _, bound := BoundSubject(c); bound {
				return next(c)
			}

			claims, err := m.tokens.Verify(token)
			if err != nil {
				return next(c)
			}
			if m.tokens.Expired(claims) {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), m.lookupTimeout)
			principal, err := m.principals.GetByUsername(ctx, claims.Subject)
			cancel()
			if err != nil {
				return next(c)
			}

			// A token issued before a role change no longer matches the
			// principal's current role and must not authenticate.
			if string(principal.Role) != claims.Role {
				return next(c)
			}

			c.Set(ContextKeySubject, claims.Subject)
			c.Set(ContextKeyRole, principal.Role)

			return next(c)
		}
	}
}

// Authorize consults the route policy with whatever identity the earlier
// stages bound. Unauthenticated requests on protected routes get 401;
// authenticated requests with a role outside the rule's set get 403.
func (m *Middleware) Authorize() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, authenticated := BoundRole(c)

			if err := m.policy.Authorize(c.Request().URL.Path, role, authenticated); err != nil {
				if !authenticated {
					return respondError(c, http.StatusUnauthorized, msgAuthenticationRequired)
				}
				return respondError(c, http.StatusForbidden, msgInsufficientRole)
			}

			return next(c)
		}
	}
}

// BoundSubject returns the authenticated subject, if identity binding
// succeeded for this request.
func BoundSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(ContextKeySubject).(string)
	return subject, ok && subject != ""
}

// BoundRole returns the authenticated principal's current role, if identity
// binding succeeded for this request.
func BoundRole(c echo.Context) (credential.Role, bool) {
	role, ok := c.Get(ContextKeyRole).(credential.Role)
	return role, ok && role != ""
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(headerAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}

	return parts[1]
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
