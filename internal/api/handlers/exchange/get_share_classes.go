package exchange

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/types"
	"github/cloex/go-exchange/internal/util"
)

func GetShareClassesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Exchange.GET("/share-classes", getShareClassesHandler(s))
}

func getShareClassesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		classes := s.Registry.ShareClasses()

		items := make([]*types.ShareClassItem, 0, len(classes))
		for _, sc := range classes {
			items = append(items, &types.ShareClassItem{
				Name:    swag.String(sc.Name),
				Address: swag.String(sc.Address),
			})
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GetShareClassesResponse{
			ShareClasses: items,
		})
	}
}
