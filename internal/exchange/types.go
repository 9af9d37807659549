package exchange

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// State is the controller's position in an operation attempt.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateConfirming State = "confirming"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// terminal reports whether a new attempt may start from this state.
func (s State) terminal() bool {
	return s == StateIdle || s == StateSucceeded || s == StateFailed
}

// ErrInFlight is returned when an operation is requested while another one of
// the same controller has not reached a terminal state. The second request is
// refused rather than queued so the wallet never shows stacked signature
// prompts.
var ErrInFlight = errors.New("another operation is already in flight")

// Config carries the chain and contract expectations of the exchange.
type Config struct {
	// ModuleAddress is the account the exchange contract is deployed under.
	ModuleAddress string

	// USDCMetadata is the metadata address of the reference stablecoin.
	USDCMetadata string

	// AdminAddress is the only account allowed to create share classes and
	// update prices.
	AdminAddress string

	// ExpectedNetwork is matched case-insensitively against the wallet's
	// active network name.
	ExpectedNetwork string

	// AddressPrefix is the chain's address prefix, normally "0x".
	AddressPrefix string

	// DefaultAssetDecimals is assumed for assets without indexed metadata.
	DefaultAssetDecimals int
}

// ChainReader reads contract state and transaction status from a fullnode.
type ChainReader interface {
	View(ctx context.Context, function string, arguments []interface{}) ([]json.RawMessage, error)
	ViewU64(ctx context.Context, function string, arguments []interface{}) (int64, error)
	WaitForTransaction(ctx context.Context, hash string) error
}

// BalanceReader reads fungible asset balances and metadata from the indexer.
type BalanceReader interface {
	Balance(ctx context.Context, owner string, asset string) (string, error)
	Decimals(ctx context.Context, asset string) (int, bool, error)
}

// CreateShareClassRequest carries the raw form fields of a create share class
// operation.
type CreateShareClassRequest struct {
	Name            string
	Symbol          string
	Decimals        uint8
	UnderlyingAsset string
	Price           string
	MaxSupply       string
}

// InvestRequest carries the raw form fields of an issuance request.
type InvestRequest struct {
	Asset  string
	Amount string
}

// WithdrawRequest carries the raw form fields of a redemption request. When
// WithdrawAll is set the full share class balance is redeemed and Amount is
// ignored.
type WithdrawRequest struct {
	Asset       string
	Amount      string
	WithdrawAll bool
}

// UpdatePriceRequest carries the raw form fields of a price update.
type UpdatePriceRequest struct {
	Asset string
	Price string
}

// Outcome is the successful result of an operation attempt.
type Outcome struct {
	Hash string
}
