package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "student-auth-service/pkg/errors"
	"student-auth-service/pkg/logger"
)

// CustomHTTPErrorHandler handles all errors returned by handlers and middleware.
// It maps sentinel errors to appropriate HTTP status codes, sanitizes internal
// errors, and logs errors with request context.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
			message = "Resource not found"
		case errors.Is(err, apperrors.ErrAuthenticationFailed):
			code = http.StatusUnauthorized
			message = "Invalid credentials"
		case errors.Is(err, apperrors.ErrInvalidToken):
			code = http.StatusUnauthorized
			message = "Invalid or malformed token"
		case errors.Is(err, apperrors.ErrTokenExpired):
			code = http.StatusUnauthorized
			message = "Token has expired"
		case errors.Is(err, apperrors.ErrTokenRevoked):
			code = http.StatusForbidden
			message = "Token revoked"
		case errors.Is(err, apperrors.ErrAuthorizationDenied):
			code = http.StatusForbidden
			message = "Insufficient role"
		case errors.Is(err, apperrors.ErrBadRequest):
			code = http.StatusBadRequest
			message = "Bad request"
		case errors.Is(err, apperrors.ErrValidation):
			code = http.StatusBadRequest
			message = "Validation error"
		case errors.Is(err, apperrors.ErrConflict):
			code = http.StatusConflict
			message = "Resource already exists"
		case errors.Is(err, apperrors.ErrUsernameExists):
			code = http.StatusConflict
			message = "Username already exists"
		case errors.Is(err, apperrors.ErrStoreUnavailable):
			code = http.StatusServiceUnavailable
			message = "Service temporarily unavailable"
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			// Use the message from AppError if it's a client error
			if code < 500 {
				message = appErr.Message
			}
		}
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = "unknown"
	}

	logged := logger.Sanitize(err.Error())
	if code >= 500 {
		c.Logger().Error("internal_server_error",
			"request_id", requestID,
			"status", code,
			"error", logged)
		// Don't expose internal errors to clients
		message = "Internal server error"
	} else {
		c.Logger().Warn("client_error",
			"request_id", requestID,
			"status", code,
			"error", logged)
	}

	if err := c.JSON(code, map[string]interface{}{
		"error":      message,
		"request_id": requestID,
	}); err != nil {
		c.Logger().Error(err)
	}
}
