package guard

import (
	"context"
	"math/big"
	"strings"

	"github/cloex/go-exchange/internal/exchange/classify"
	"github/cloex/go-exchange/internal/wallet"
)

const (
	bigFloatBase      = 10
	bigFloatPrecision = 256
)

// Guard runs the preconditions of every exchange operation. All checks are
// synchronous except the wallet connection and network checks, which query
// the wallet bridge. The first failing check wins; no side effects happen
// before all checks pass.
type Guard struct {
	bridge          wallet.Bridge
	expectedNetwork string
	addressPrefix   string
	adminAddress    string
}

// New creates a guard over the given wallet bridge and chain expectations.
func New(bridge wallet.Bridge, expectedNetwork string, addressPrefix string, adminAddress string) *Guard {
	return &Guard{
		bridge:          bridge,
		expectedNetwork: expectedNetwork,
		addressPrefix:   addressPrefix,
		adminAddress:    adminAddress,
	}
}

// CheckWallet verifies the wallet bridge is available and the session is
// authorized, returning the active account.
func (g *Guard) CheckWallet(ctx context.Context) (*wallet.Account, error) {
	if g.bridge == nil {
		return nil, classify.New(classify.TypeWalletUnavailable, "Wallet not found")
	}

	connected, err := g.bridge.IsConnected(ctx)
	if err != nil {
		return nil, classify.New(classify.TypeWalletUnavailable, "Wallet not found")
	}
	if !connected {
		return nil, classify.New(classify.TypeWalletNotConnected, "Please connect your wallet first")
	}

	account, err := g.bridge.Account(ctx)
	if err != nil {
		return nil, classify.New(classify.TypeWalletNotConnected, "Please connect your wallet first")
	}
	return account, nil
}

// CheckNetwork verifies the wallet's active network matches the expected one,
// case-insensitively by substring.
func (g *Guard) CheckNetwork(ctx context.Context) error {
	network, err := g.bridge.Network(ctx)
	if err != nil {
		return classify.New(classify.TypeWalletUnavailable, "Wallet not found")
	}
	if !strings.Contains(strings.ToLower(network), strings.ToLower(g.expectedNetwork)) {
		return classify.Newf(classify.TypeWrongNetwork, "Please switch to %s in your wallet", g.expectedNetwork)
	}
	return nil
}

// CheckAddress verifies the target asset address is present and carries the
// chain's address prefix.
func (g *Guard) CheckAddress(address string) error {
	if address == "" || !strings.HasPrefix(address, g.addressPrefix) {
		return classify.Newf(classify.TypeInvalidInput, "Invalid asset address. Must start with %s", g.addressPrefix)
	}
	return nil
}

// CheckAmount verifies the amount parses to a strictly positive number and
// returns the parsed value.
func (g *Guard) CheckAmount(amount string) (*big.Float, error) {
	if amount == "" {
		return nil, classify.New(classify.TypeInvalidInput, "Please enter a valid amount")
	}
	f, _, err := big.ParseFloat(amount, bigFloatBase, bigFloatPrecision, big.ToNearestEven)
	if err != nil || f.Sign() <= 0 || f.IsInf() {
		return nil, classify.New(classify.TypeInvalidInput, "Please enter a valid amount")
	}
	return f, nil
}

// CheckBalance verifies the requested amount does not exceed the available
// balance (both in display units).
func (g *Guard) CheckBalance(amount *big.Float, available *big.Float, availableDisplay string) error {
	if amount.Cmp(available) > 0 {
		return classify.Newf(classify.TypeInsufficientBalance, "Insufficient balance. Maximum available: %s", availableDisplay)
	}
	return nil
}

// CheckAdmin verifies the connected account is the configured admin. Admin
// addresses compare case-insensitively.
func (g *Guard) CheckAdmin(account *wallet.Account) error {
	if !strings.EqualFold(account.Address, g.adminAddress) {
		return classify.New(classify.TypeUnauthorized, "Connected wallet is not the exchange admin")
	}
	return nil
}
