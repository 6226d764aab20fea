package errors

import (
	"errors"
	"fmt"
)

// Domain errors - Sentinel errors for use with errors.Is()
var (
	ErrNotFound             = errors.New("resource not found")
	ErrConflict             = errors.New("resource already exists")
	ErrBadRequest           = errors.New("bad request")
	ErrInternalServer       = errors.New("internal server error")
	ErrValidation           = errors.New("validation error")
	ErrUsernameExists       = errors.New("username already exists")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenRevoked         = errors.New("token revoked")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrAuthorizationDenied  = errors.New("authorization denied")
	ErrStoreUnavailable     = errors.New("revocation store unavailable")
)

// Custom error type with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Constructors
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Err: ErrConflict}
}

func BadRequest(msg string) *AppError {
	return &AppError{Code: "BAD_REQUEST", Message: msg, Err: ErrBadRequest}
}

func InternalServer(msg string, err error) *AppError {
	return &AppError{Code: "INTERNAL_SERVER_ERROR", Message: msg, Err: err}
}

func Validation(msg string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: msg, Err: ErrValidation}
}

func InvalidToken(msg string) *AppError {
	return &AppError{Code: "INVALID_TOKEN", Message: msg, Err: ErrInvalidToken}
}

func TokenExpired(msg string) *AppError {
	return &AppError{Code: "TOKEN_EXPIRED", Message: msg, Err: ErrTokenExpired}
}

func TokenRevoked(msg string) *AppError {
	return &AppError{Code: "TOKEN_REVOKED", Message: msg, Err: ErrTokenRevoked}
}

func AuthenticationFailed() *AppError {
	return &AppError{Code: "AUTHENTICATION_FAILED", Message: "invalid username or password", Err: ErrAuthenticationFailed}
}

func AuthorizationDenied(msg string) *AppError {
	return &AppError{Code: "AUTHORIZATION_DENIED", Message: msg, Err: ErrAuthorizationDenied}
}

func StoreUnavailable(msg string, err error) *AppError {
	wrapped := ErrStoreUnavailable
	if err != nil {
		wrapped = fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return &AppError{Code: "STORE_UNAVAILABLE", Message: msg, Err: wrapped}
}
