package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"student-auth-service/internal/domain/credential"
	apperrors "student-auth-service/pkg/errors"
	"student-auth-service/pkg/validator"
)

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type RegisterRequest struct {
	Username string `json:"userName"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	Username string `json:"userName"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"userName"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Username = strings.TrimSpace(req.Username)
	if err := validator.Username(req.Username); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.Password(req.Password); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	created, err := h.auth.Register(c.Request().Context(), req.Username, req.Password, credential.Role(strings.ToUpper(req.Role)))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			return respondError(c, http.StatusConflict, msgUsernameAlreadyExists)
		case errors.Is(err, apperrors.ErrBadRequest):
			return respondError(c, http.StatusBadRequest, errorMessage(err))
		}
		return respondError(c, http.StatusInternalServerError, msgPasswordProcessFail)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		Username: created.Username,
		Role:     string(created.Role),
	})
}

// Login responds with the raw token as the body on success. Both an unknown
// username and a wrong password produce the same 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthenticationFailed) {
			return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
		}
		return respondError(c, http.StatusInternalServerError, msgGenerateTokenFail)
	}

	return c.String(http.StatusOK, token)
}

// Logout revokes the presented token. The token comes from the request body;
// when the body carries none, the bearer token that authenticated the request
// is used. An already-expired token is rejected and nothing is recorded.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		token = bearerToken(c)
	}
	if token == "" {
		return c.String(http.StatusBadRequest, msgNoTokenProvided)
	}

	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTokenExpired):
			return c.String(http.StatusBadRequest, msgTokenExpired)
		case errors.Is(err, apperrors.ErrInvalidToken):
			return c.String(http.StatusBadRequest, msgInvalidToken)
		}
		return err
	}

	return c.String(http.StatusOK, msgLogoutSuccessful)
}

func bearerToken(c echo.Context) string {
	parts := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
