package exchange

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/types"
	"github/cloex/go-exchange/internal/util"
)

func GetPriceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Exchange.GET("/price", getPriceHandler(s))
}

func getPriceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		asset := c.QueryParam("asset")

		price, err := s.Exchange.Price(ctx, asset)
		if err != nil {
			log.Error().Err(err).Str("asset", asset).Msg("Failed to fetch exchange price")
			return operationHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.PriceResponse{
			Asset: swag.String(asset),
			Price: swag.String(price),
		})
	}
}
