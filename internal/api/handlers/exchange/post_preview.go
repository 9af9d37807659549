package exchange

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/api/httperrors"
	"github/cloex/go-exchange/internal/exchange"
	"github/cloex/go-exchange/internal/types"
	"github/cloex/go-exchange/internal/util"
)

func PostPreviewRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Exchange.POST("/preview", postPreviewHandler(s))
}

// postPreviewHandler resolves price and balance for the selected asset and
// returns a conversion estimate. Concurrent selections follow
// last-selection-wins: a superseded request is answered with 409 instead of
// stale data.
func postPreviewHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostPreviewPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		sel, err := s.Session.Select(ctx, body.Owner, *body.Asset)
		if err != nil {
			if errors.Is(err, exchange.ErrStaleSelection) {
				return httperrors.NewHTTPError(http.StatusConflict, "stale_selection", "Asset selection changed, retry with the latest selection")
			}
			log.Error().Err(err).Msg("Failed to resolve asset selection")
			return operationHTTPError(err)
		}

		res := &types.PreviewResponse{
			Asset:   swag.String(sel.Asset),
			Price:   sel.Price,
			Balance: sel.Balance,
		}

		switch body.Direction {
		case types.PreviewDirectionToShares:
			res.Estimate = s.Session.EstimateShares(body.Amount)
		case types.PreviewDirectionToUSDC:
			res.Estimate = s.Session.EstimateValue(body.Amount)
		}

		return util.ValidateAndReturn(c, http.StatusOK, res)
	}
}
