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

func PostCreateShareClassRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Exchange.POST("/share-classes", postCreateShareClassHandler(s))
}

func postCreateShareClassHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCreateShareClassPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		outcome, err := s.Exchange.CreateShareClass(ctx, exchange.CreateShareClassRequest{
			Name:            *body.Name,
			Symbol:          *body.Symbol,
			Decimals:        uint8(*body.Decimals),
			UnderlyingAsset: *body.UnderlyingAsset,
			Price:           *body.Price,
			MaxSupply:       body.MaxSupply,
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to create share class")
			return operationHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.TransactionResponse{
			Hash: swag.String(outcome.Hash),
		})
	}
}
