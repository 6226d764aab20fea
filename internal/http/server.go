package http

import (
	"context"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"student-auth-service/internal/auth"
	"student-auth-service/internal/config"
	"student-auth-service/internal/http/handler"
	"student-auth-service/internal/http/middleware"
	"student-auth-service/pkg/metrics"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config         *config.Config
	AuthService    handler.Authenticator
	StudentStore   handler.StudentStore
	AuthMiddleware *auth.Middleware
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	requestMetrics := metrics.New()
	e.Use(requestMetrics.Middleware())

	// The authentication pipeline runs globally and in this order: the
	// blacklist is consulted first, identity binding only then decodes the
	// token, and the route policy decides last.
	e.Use(deps.AuthMiddleware.RevocationGuard())
	e.Use(deps.AuthMiddleware.BindIdentity())
	e.Use(deps.AuthMiddleware.Authorize())

	// Global rate limiting keyed by the identity the pipeline bound.
	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	// Strict rate limiting for the credential endpoints
	strictRateLimiter := middleware.NewStrictRateLimiter()

	authHandler := handler.NewAuthHandler(deps.AuthService)
	studentHandler := handler.NewStudentHandler(deps.StudentStore)

	e.POST("/registerStudent", authHandler.Register, strictRateLimiter.Middleware())
	e.POST("/loginStudent", authHandler.Login, strictRateLimiter.Middleware())
	e.POST("/logoutStudent", authHandler.Logout)
	e.GET("/health", healthCheck)
	e.GET("/metrics/requests", requestMetrics.Handler())

	e.POST("/user/saveStudent", studentHandler.Save)
	e.GET("/user/getStudentById/:id", studentHandler.GetByID)

	e.GET("/moderator/getAllStudent", studentHandler.GetAll)
	e.PUT("/moderator/updateStudentDetails", studentHandler.Update)
	e.GET("/moderator/testModerator", studentHandler.TestModerator)

	e.GET("/admin/testAdmin", studentHandler.TestAdmin)
	e.DELETE("/admin/DeleteStudentById/:id", studentHandler.Delete)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
