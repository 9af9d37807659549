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

func TestPostWithdrawAll(t *testing.T) {
	bridge := test.NewFakeBridge()
	backend := test.NewChainBackend()
	backend.SetBalance(test.TestAdminAddress, tib2Address, "2500000") // 2.5 tokens
	backend.SetDecimals(tib2Address, 6)

	test.WithTestServerComponents(t, bridge, backend, func(s *api.Server) {
		payload := test.GenericPayload{"asset": tib2Address, "withdrawAll": true}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/withdraw", payload.Reader(t), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.TransactionResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.NotEmpty(t, *response.Hash)

		req := bridge.LastSubmitted()
		require.NotNil(t, req)
		assert.Equal(t, []interface{}{tib2Address, "2500000"}, req.Arguments)
	})
}

func TestPostWithdrawPartial(t *testing.T) {
	bridge := test.NewFakeBridge()
	backend := test.NewChainBackend()
	backend.SetBalance(test.TestAdminAddress, tib2Address, "2500000")
	backend.SetDecimals(tib2Address, 6)

	test.WithTestServerComponents(t, bridge, backend, func(s *api.Server) {
		payload := test.GenericPayload{"asset": tib2Address, "amount": "1.5"}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/withdraw", payload.Reader(t), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		req := bridge.LastSubmitted()
		require.NotNil(t, req)
		assert.Equal(t, []interface{}{tib2Address, "1500000"}, req.Arguments)
	})
}

func TestPostWithdrawZeroBalance(t *testing.T) {
	bridge := test.NewFakeBridge()
	backend := test.NewChainBackend()

	test.WithTestServerComponents(t, bridge, backend, func(s *api.Server) {
		payload := test.GenericPayload{"asset": tib2Address, "amount": "1"}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/withdraw", payload.Reader(t), nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response map[string]interface{}
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "insufficient_balance", response["type"])
		assert.Equal(t, "You don't have any tokens to withdraw from this share class", response["title"])
		assert.Nil(t, bridge.LastSubmitted())
	})
}
