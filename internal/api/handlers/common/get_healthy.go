package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler is a liveness probe: it returns 200 as long as the
// process accepts requests, without touching any downstream dependency.
func getHealthyHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK.")
	}
}
