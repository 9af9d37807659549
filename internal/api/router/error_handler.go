package router

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/api/httperrors"
	"github/cloex/go-exchange/internal/types"
	"github/cloex/go-exchange/internal/util"
)

// HTTPErrorHandlerConfig controls the central echo error handler.
type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig returns an echo error handler rendering every
// error as the public error envelope.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var code int
		var payload interface{}

		switch e := err.(type) {
		case *httperrors.HTTPValidationError:
			code = int(*e.Code)
			payload = e
		case *httperrors.HTTPError:
			code = int(*e.Code)
			payload = e
		case *echo.HTTPError:
			code = e.Code
			title := http.StatusText(code)
			if msg, ok := e.Message.(string); ok && !config.HideInternalServerErrorDetails {
				title = msg
			}
			payload = &types.PublicHTTPError{
				Code:  swag.Int64(int64(code)),
				Type:  swag.String(types.PublicHTTPErrorTypeGeneric),
				Title: swag.String(title),
			}
		default:
			code = http.StatusInternalServerError
			title := http.StatusText(code)
			if !config.HideInternalServerErrorDetails {
				title = err.Error()
			}
			payload = &types.PublicHTTPError{
				Code:  swag.Int64(int64(code)),
				Type:  swag.String(types.PublicHTTPErrorTypeGeneric),
				Title: swag.String(title),
			}
		}

		if writeErr := c.JSON(code, payload); writeErr != nil {
			util.LogFromContext(c.Request().Context()).Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}
