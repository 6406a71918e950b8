package api

import (
	"github.com/brpaz/echozap"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/mindwell-care/patients/auth"
	"github.com/mindwell-care/patients/errors"
)

const readinessPath = "/ready"

func NewServer(handler *Handler, healthCheck *HealthCheck, authenticator auth.Authenticator, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip auth and request ids for the readiness probe
	skipper := func(ec echo.Context) bool {
		return ec.Path() == readinessPath
	}
	authMiddleware := auth.NewAuthMiddleware(authenticator, auth.AuthMiddlewareOpts{
		Skipper: skipper,
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		Skipper:   skipper,
	}))
	e.Use(echozap.ZapLogger(logger))
	e.Use(authMiddleware)

	e.HTTPErrorHandler = errors.NewHTTPErrorHandler(logger)

	e.GET(readinessPath, healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

func RegisterHandlers(e *echo.Echo, handler *Handler) {
	e.GET("/api/patients", handler.ListPatients)
	e.POST("/api/patients", handler.CreatePatient)
	e.GET("/api/patients/:patientId", func(ec echo.Context) error {
		return handler.GetPatient(ec, ec.Param("patientId"))
	})
	e.PUT("/api/patients/:patientId", func(ec echo.Context) error {
		return handler.UpdatePatient(ec, ec.Param("patientId"))
	})
}
