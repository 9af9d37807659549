package payload

import (
	"fmt"
	"strconv"
)

// ContractModule is the name of the on-chain exchange module. It is part of
// the deployed contract's ABI and must not change independently of it.
const ContractModule = "mock_clo_exchange"

// Entry function names exposed by the exchange contract.
const (
	FuncCreateShareClass    = "create_share_class"
	FuncRequestIssuance     = "request_issuance"
	FuncRequestRedemption   = "request_redemption"
	FuncUpdatePricePerShare = "update_price_per_share"
	FuncExchangePrice       = "exchange_price"
)

// Request is the wire shape consumed by the wallet's signAndSubmitTransaction
// call: a fully qualified entry function plus its ordered arguments.
type Request struct {
	Function      string        `json:"function"`
	TypeArguments []string      `json:"type_arguments"`
	Arguments     []interface{} `json:"arguments"`
}

// FunctionID returns the fully qualified entry function identifier for the
// exchange module deployed at moduleAddress.
func FunctionID(moduleAddress string, name string) string {
	return fmt.Sprintf("%s::%s::%s", moduleAddress, ContractModule, name)
}

// byteArgument encodes a string argument as the JSON number array the wallet
// expects for vector<u8> parameters. A plain []byte would marshal to base64.
func byteArgument(s string) []int {
	b := []byte(s)
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}

// CreateShareClass builds the create_share_class payload. The price is passed
// through in the contract's internal scale, the max supply as a u128 decimal
// string with "0" meaning unlimited.
func CreateShareClass(moduleAddress string, name string, symbol string, decimals uint8, underlyingAsset string, price int64, maxSupply string) Request {
	if maxSupply == "" {
		maxSupply = "0"
	}
	return Request{
		Function:      FunctionID(moduleAddress, FuncCreateShareClass),
		TypeArguments: []string{},
		Arguments: []interface{}{
			byteArgument(name),
			byteArgument(symbol),
			strconv.FormatUint(uint64(decimals), 10),
			underlyingAsset,
			strconv.FormatInt(price, 10),
			maxSupply,
		},
	}
}

// RequestIssuance builds the request_issuance payload. The amount must already
// be converted to the underlying asset's on-chain units.
func RequestIssuance(moduleAddress string, asset string, amountUnits string) Request {
	return Request{
		Function:      FunctionID(moduleAddress, FuncRequestIssuance),
		TypeArguments: []string{},
		Arguments:     []interface{}{asset, amountUnits},
	}
}

// RequestRedemption builds the request_redemption payload. The amount must
// already be converted to the share class's on-chain units.
func RequestRedemption(moduleAddress string, asset string, amountUnits string) Request {
	return Request{
		Function:      FunctionID(moduleAddress, FuncRequestRedemption),
		TypeArguments: []string{},
		Arguments:     []interface{}{asset, amountUnits},
	}
}

// UpdatePricePerShare builds the update_price_per_share payload. The price is
// passed through in the contract's internal scale.
func UpdatePricePerShare(moduleAddress string, asset string, price int64) Request {
	return Request{
		Function:      FunctionID(moduleAddress, FuncUpdatePricePerShare),
		TypeArguments: []string{},
		Arguments:     []interface{}{asset, strconv.FormatInt(price, 10)},
	}
}
