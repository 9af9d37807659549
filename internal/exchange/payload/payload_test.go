package payload_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/cloex/go-exchange/internal/exchange/payload"
)

const moduleAddress = "0xc09d"

func TestFunctionID(t *testing.T) {
	assert.Equal(t, "0xc09d::mock_clo_exchange::request_issuance",
		payload.FunctionID(moduleAddress, payload.FuncRequestIssuance))
}

func TestRequestIssuanceWireShape(t *testing.T) {
	req := payload.RequestIssuance(moduleAddress, "0xasset", "300000000")

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"function": "0xc09d::mock_clo_exchange::request_issuance",
		"type_arguments": [],
		"arguments": ["0xasset", "300000000"]
	}`, string(b))
}

func TestRequestRedemptionWireShape(t *testing.T) {
	req := payload.RequestRedemption(moduleAddress, "0xasset", "5000000")

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"function": "0xc09d::mock_clo_exchange::request_redemption",
		"type_arguments": [],
		"arguments": ["0xasset", "5000000"]
	}`, string(b))
}

func TestCreateShareClassEncodesNamesAsByteArrays(t *testing.T) {
	req := payload.CreateShareClass(moduleAddress, "AB", "ab", 6, "0xunder", 3, "1000000")

	b, err := json.Marshal(req)
	require.NoError(t, err)

	// name and symbol travel as vector<u8> number arrays, never base64
	assert.JSONEq(t, `{
		"function": "0xc09d::mock_clo_exchange::create_share_class",
		"type_arguments": [],
		"arguments": [[65, 66], [97, 98], "6", "0xunder", "3", "1000000"]
	}`, string(b))
}

func TestCreateShareClassEmptyMaxSupplyMeansUnlimited(t *testing.T) {
	req := payload.CreateShareClass(moduleAddress, "X", "x", 8, "0xunder", 1, "")
	assert.Equal(t, "0", req.Arguments[5])
}

func TestUpdatePricePerShare(t *testing.T) {
	req := payload.UpdatePricePerShare(moduleAddress, "0xasset", 4)

	assert.Equal(t, payload.FunctionID(moduleAddress, payload.FuncUpdatePricePerShare), req.Function)
	assert.Equal(t, []interface{}{"0xasset", "4"}, req.Arguments)
	assert.NotNil(t, req.TypeArguments)
}
