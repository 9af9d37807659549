package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/api"
)

// statusNotReady is used instead of 503 so load balancer health checks can be
// told apart from overload shedding.
const statusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler is a readiness probe: it returns 200 only when all server
// components are initialized.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}
		return c.String(http.StatusOK, "Ready.")
	}
}
