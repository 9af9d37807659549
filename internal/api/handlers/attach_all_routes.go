package handlers

import (
	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/api/handlers/common"
	"github/cloex/go-exchange/internal/api/handlers/exchange"
)

// AttachAllRoutes attaches all routes to the server's router.
func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		exchange.GetBalanceRoute(s),
		exchange.GetPriceRoute(s),
		exchange.GetShareClassesRoute(s),
		exchange.PostCreateShareClassRoute(s),
		exchange.PostInvestRoute(s),
		exchange.PostPreviewRoute(s),
		exchange.PostUpdatePriceRoute(s),
		exchange.PostWithdrawRoute(s),
	}
}
