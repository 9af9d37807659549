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

func TestGetBalanceUSDC(t *testing.T) {
	backend := test.NewChainBackend()
	backend.SetBalance(test.TestInvestorAddress, usdcMetadata, "1500250000")

	test.WithTestServerComponents(t, test.NewFakeBridge(), backend, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/exchange/balance?owner="+test.TestInvestorAddress+"&asset="+usdcMetadata, nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.BalanceResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "1500.250000", *response.Balance)
		assert.Equal(t, "1500.250000 USDC", response.Label)
	})
}

func TestGetBalanceShareClass(t *testing.T) {
	backend := test.NewChainBackend()
	backend.SetBalance(test.TestInvestorAddress, tib2Address, "12000000")
	backend.SetDecimals(tib2Address, 6)

	test.WithTestServerComponents(t, test.NewFakeBridge(), backend, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/exchange/balance?owner="+test.TestInvestorAddress+"&asset="+tib2Address, nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.BalanceResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "12.000000", *response.Balance)
		assert.Equal(t, "12.000000 Tokens", response.Label)
	})
}

func TestGetBalanceMissingParams(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/exchange/balance?asset="+usdcMetadata, nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
