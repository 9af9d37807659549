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

func TestPostPreviewToShares(t *testing.T) {
	backend := test.NewChainBackend()
	backend.SetScaledPrice(tib2Address, 3000)
	backend.SetBalance(test.TestInvestorAddress, usdcMetadata, "500000000")
	backend.SetBalance(test.TestInvestorAddress, tib2Address, "2500000")
	backend.SetDecimals(tib2Address, 6)

	test.WithTestServerComponents(t, test.NewFakeBridge(), backend, func(s *api.Server) {
		payload := test.GenericPayload{
			"asset":     tib2Address,
			"owner":     test.TestInvestorAddress,
			"amount":    "300",
			"direction": "toShares",
		}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/preview", payload.Reader(t), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.PreviewResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "3.000", response.Price)
		assert.Equal(t, "2.500000", response.Balance)
		assert.Equal(t, "100.000000", response.Estimate)
	})
}

func TestPostPreviewToUSDC(t *testing.T) {
	backend := test.NewChainBackend()
	backend.SetScaledPrice(tib2Address, 3000)

	test.WithTestServerComponents(t, test.NewFakeBridge(), backend, func(s *api.Server) {
		payload := test.GenericPayload{
			"asset":     tib2Address,
			"amount":    "100",
			"direction": "toUSDC",
		}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/preview", payload.Reader(t), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.PreviewResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "300.000000", response.Estimate)
	})
}

func TestPostPreviewInvalidDirection(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{"asset": tib2Address, "direction": "sideways"}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/preview", payload.Reader(t), nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostPreviewUSDCSelection(t *testing.T) {
	backend := test.NewChainBackend()
	backend.SetBalance(test.TestInvestorAddress, usdcMetadata, "500000000")

	test.WithTestServerComponents(t, test.NewFakeBridge(), backend, func(s *api.Server) {
		payload := test.GenericPayload{"asset": usdcMetadata, "owner": test.TestInvestorAddress}
		res := test.PerformRequest(t, s, "POST", "/api/v1/exchange/preview", payload.Reader(t), nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response types.PreviewResponse
		test.ParseResponseAndValidate(t, res, &response)
		// the reference asset has no exchange price
		assert.Empty(t, response.Price)
		assert.Equal(t, "500.000000", response.Balance)
	})
}
