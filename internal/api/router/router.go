package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/api/handlers"
	"github/cloex/go-exchange/internal/api/middleware"
)

// Init initializes the echo instance, attaches the configured middleware and
// all routes.
func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.HTTPErrorHandler = HTTPErrorHandlerWithConfig(HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.Recover())
	}
	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestID())
	}
	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.Logger(middleware.LoggerConfig{
			Level: s.Config.Logger.RequestLevel,
		}))
	}

	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		Root:          s.Echo.Group(""),
		Management:    s.Echo.Group("/-"),
		APIV1Exchange: s.Echo.Group("/api/v1/exchange"),
	}

	handlers.AttachAllRoutes(s)
}
