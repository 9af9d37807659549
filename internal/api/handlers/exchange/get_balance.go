package exchange

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/api/httperrors"
	"github/cloex/go-exchange/internal/types"
	"github/cloex/go-exchange/internal/util"
)

func GetBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Exchange.GET("/balance", getBalanceHandler(s))
}

func getBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		owner := c.QueryParam("owner")
		asset := c.QueryParam("asset")
		if owner == "" || asset == "" {
			return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "owner and asset query parameters are required")
		}

		balance, err := s.Exchange.Balance(ctx, owner, asset)
		if err != nil {
			log.Error().Err(err).Str("asset", asset).Msg("Failed to fetch asset balance")
			return operationHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.BalanceResponse{
			Owner:   swag.String(owner),
			Asset:   swag.String(asset),
			Balance: swag.String(balance),
			Label:   s.Registry.FormatBalance(balance, asset),
		})
	}
}
