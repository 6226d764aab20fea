package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"student-auth-service/internal/domain/credential"
	apperrors "student-auth-service/pkg/errors"
)

// TokenTTL is the fixed lifetime of every issued token.
const TokenTTL = 45 * time.Minute

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens. Verification covers
// signature and structure only; expiry is checked separately so that an
// expired-but-well-signed token is reported as expired, not invalid.
type TokenService struct {
	key []byte
	now func() time.Time
}

func NewTokenService(key []byte) *TokenService {
	return &TokenService{
		key: key,
		now: time.Now,
	}
}

func (s *TokenService) Issue(subject string, role credential.Role) (string, error) {
	now := s.now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify checks the token's signature and structure and returns its claims.
// It does not reject expired tokens; callers decide liveness via Expired.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf(msgUnexpectedSigningMethod, token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())

	if err != nil {
		return nil, apperrors.InvalidToken(msgTokenParseFailed)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.InvalidToken(msgTokenParseFailed)
	}

	if claims.Subject == "" || claims.Role == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, apperrors.InvalidToken(msgMissingRequiredClaims)
	}

	return claims, nil
}

// Expired reports whether the claims' expiry lies in the past. No clock-skew
// grace is applied.
func (s *TokenService) Expired(claims *Claims) bool {
	return claims.ExpiresAt.Time.Before(s.now())
}

// Remaining returns the token's remaining lifetime; zero or negative means
// the token has naturally expired.
func (s *TokenService) Remaining(claims *Claims) time.Duration {
	return claims.ExpiresAt.Time.Sub(s.now())
}
