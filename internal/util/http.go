package util

import (
	"net/http"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/api/httperrors"
	"github/cloex/go-exchange/internal/types"
)

// BindAndValidateBody binds the request body to v and runs its swagger
// validation, returning a public HTTP validation error on failure.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return echo.ErrInternalServerError
	}

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload and writes it as JSON with
// the given status code.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		return err
	}
	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	var details []*types.HTTPValidationErrorDetail

	switch e := err.(type) {
	case *openapierrors.CompositeError:
		LogFromContext(c.Request().Context()).Debug().Errs("validation_errors", e.Errors).Msg("Payload did match schema, returning HTTP validation error")
		for _, inner := range e.Errors {
			if validationErr, ok := inner.(*openapierrors.Validation); ok {
				details = append(details, &types.HTTPValidationErrorDetail{
					Key:   swag.String(validationErr.Name),
					In:    swag.String(validationErr.In),
					Error: swag.String(validationErr.Error()),
				})
			}
		}
	case *openapierrors.Validation:
		LogFromContext(c.Request().Context()).Debug().AnErr("validation_error", e).Msg("Payload did match schema, returning HTTP validation error")
		details = append(details, &types.HTTPValidationErrorDetail{
			Key:   swag.String(e.Name),
			In:    swag.String(e.In),
			Error: swag.String(e.Error()),
		})
	default:
		return err
	}

	return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), details)
}
