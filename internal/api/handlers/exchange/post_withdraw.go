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

func PostWithdrawRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Exchange.POST("/withdraw", postWithdrawHandler(s))
}

func postWithdrawHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostWithdrawPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		outcome, err := s.Exchange.Withdraw(ctx, exchange.WithdrawRequest{
			Asset:       *body.Asset,
			Amount:      body.Amount,
			WithdrawAll: body.WithdrawAll,
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to process withdrawal")
			return operationHTTPError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.TransactionResponse{
			Hash: swag.String(outcome.Hash),
		})
	}
}
