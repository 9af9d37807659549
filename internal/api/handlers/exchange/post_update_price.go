package exchange

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/exchange"
	"github/cloex/go-exchange/internal/types"
	"github/cloex/go-exchange/internal/util"
)

func PostUpdatePriceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Exchange.POST("/price", postUpdatePriceHandler(s))
}

func postUpdatePriceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostUpdatePricePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		outcome, err := s.Exchange.UpdatePrice(ctx, exchange.UpdatePriceRequest{
			Asset: *body.Asset,
			Price: *body.Price,
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to update price")
			return operationHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.TransactionResponse{
			Hash: swag.String(outcome.Hash),
		})
	}
}
