package exchange

import (
	"net/http"

	"github.com/pkg/errors"
	"github/cloex/go-exchange/internal/api/httperrors"
	"github/cloex/go-exchange/internal/exchange"
	"github/cloex/go-exchange/internal/exchange/classify"
)

// statusByType maps the closed operation error taxonomy to HTTP status codes.
var statusByType = map[classify.Type]int{
	classify.TypeWalletUnavailable:   http.StatusServiceUnavailable,
	classify.TypeWalletNotConnected:  http.StatusUnauthorized,
	classify.TypeWrongNetwork:        http.StatusPreconditionFailed,
	classify.TypeUserRejected:        http.StatusConflict,
	classify.TypeUnsupportedMethod:   http.StatusNotImplemented,
	classify.TypeInsufficientBalance: http.StatusBadRequest,
	classify.TypeInvalidInput:        http.StatusBadRequest,
	classify.TypeUnauthorized:        http.StatusForbidden,
	classify.TypeChainError:          http.StatusBadGateway,
}

// operationHTTPError translates an operation failure into the public error
// envelope, keeping the taxonomy tag as the public error type.
func operationHTTPError(err error) error {
	if errors.Is(err, exchange.ErrInFlight) {
		return httperrors.NewHTTPError(http.StatusConflict, "operation_in_flight", "Another operation is already in flight")
	}

	var opErr *classify.OperationError
	if errors.As(err, &opErr) {
		status, ok := statusByType[opErr.Type]
		if !ok {
			status = http.StatusInternalServerError
		}
		return httperrors.NewHTTPError(status, string(opErr.Type), opErr.Message)
	}

	return err
}
