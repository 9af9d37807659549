package exchange_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/test"
	"github/cloex/go-exchange/internal/types"
)

func TestPostUpdatePriceSuccess(t *testing.T) {
	bridge := test.NewFakeBridge()
	backend := test.NewChainBackend()

	test.WithTestServerComponents(t, bridge, backend, func(s *api.Server) {
		payload := test.GenericPayload{"asset": tib2Address, "price": "3"}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/price", payload.Reader(t), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.TransactionResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.NotEmpty(t, *response.Hash)

		req := bridge.LastSubmitted()
		require.NotNil(t, req)
		// the entered value travels unscaled
		assert.Equal(t, []interface{}{tib2Address, "3"}, req.Arguments)
	})
}

func TestPostUpdatePriceNonAdmin(t *testing.T) {
	bridge := test.NewFakeBridge()
	bridge.AccountVal.Address = test.TestInvestorAddress
	backend := test.NewChainBackend()

	test.WithTestServerComponents(t, bridge, backend, func(s *api.Server) {
		payload := test.GenericPayload{"asset": tib2Address, "price": "3"}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/price", payload.Reader(t), nil)
		require.Equal(t, http.StatusForbidden, res.Result().StatusCode)

		var response map[string]interface{}
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "unauthorized", response["type"])
		assert.Nil(t, bridge.LastSubmitted())
	})
}

func TestPostUpdatePriceInvalidValue(t *testing.T) {
	bridge := test.NewFakeBridge()
	backend := test.NewChainBackend()

	test.WithTestServerComponents(t, bridge, backend, func(s *api.Server) {
		payload := test.GenericPayload{"asset": tib2Address, "price": "0.5"}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/price", payload.Reader(t), nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response map[string]interface{}
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "invalid_input", response["type"])
	})
}
