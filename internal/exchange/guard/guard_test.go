package guard_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/cloex/go-exchange/internal/exchange/classify"
	"github/cloex/go-exchange/internal/exchange/guard"
	"github/cloex/go-exchange/internal/test"
)

const (
	expectedNetwork = "mainnet"
	addressPrefix   = "0x"
)

func requireType(t *testing.T, err error, want classify.Type) {
	t.Helper()
	var opErr *classify.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, want, opErr.Type)
}

func TestCheckWalletNilBridge(t *testing.T) {
	g := guard.New(nil, expectedNetwork, addressPrefix, test.TestAdminAddress)

	_, err := g.CheckWallet(context.Background())
	requireType(t, err, classify.TypeWalletUnavailable)
	assert.Equal(t, "Wallet not found", err.Error())
}

func TestCheckWalletNotConnected(t *testing.T) {
	bridge := test.NewFakeBridge()
	bridge.Connected = false
	g := guard.New(bridge, expectedNetwork, addressPrefix, test.TestAdminAddress)

	_, err := g.CheckWallet(context.Background())
	requireType(t, err, classify.TypeWalletNotConnected)
	assert.Equal(t, "Please connect your wallet first", err.Error())
}

func TestCheckWalletConnected(t *testing.T) {
	bridge := test.NewFakeBridge()
	g := guard.New(bridge, expectedNetwork, addressPrefix, test.TestAdminAddress)

	account, err := g.CheckWallet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, test.TestAdminAddress, account.Address)
}

func TestCheckNetwork(t *testing.T) {
	bridge := test.NewFakeBridge()
	g := guard.New(bridge, expectedNetwork, addressPrefix, test.TestAdminAddress)

	// matches case-insensitively by substring ("Mainnet" contains "mainnet")
	require.NoError(t, g.CheckNetwork(context.Background()))

	bridge.NetworkVal = "Testnet"
	err := g.CheckNetwork(context.Background())
	requireType(t, err, classify.TypeWrongNetwork)
	assert.Equal(t, "Please switch to mainnet in your wallet", err.Error())
}

func TestCheckAddress(t *testing.T) {
	g := guard.New(test.NewFakeBridge(), expectedNetwork, addressPrefix, test.TestAdminAddress)

	require.NoError(t, g.CheckAddress("0xabc"))

	requireType(t, g.CheckAddress(""), classify.TypeInvalidInput)
	requireType(t, g.CheckAddress("abc"), classify.TypeInvalidInput)
}

func TestCheckAmount(t *testing.T) {
	g := guard.New(test.NewFakeBridge(), expectedNetwork, addressPrefix, test.TestAdminAddress)

	f, err := g.CheckAmount("12.5")
	require.NoError(t, err)
	assert.Equal(t, 0, f.Cmp(big.NewFloat(12.5)))

	for _, amount := range []string{"", "0", "-3", "abc"} {
		_, err := g.CheckAmount(amount)
		requireType(t, err, classify.TypeInvalidInput)
	}
}

func TestCheckBalance(t *testing.T) {
	g := guard.New(test.NewFakeBridge(), expectedNetwork, addressPrefix, test.TestAdminAddress)

	require.NoError(t, g.CheckBalance(big.NewFloat(100), big.NewFloat(100), "100.000000"))

	err := g.CheckBalance(big.NewFloat(101), big.NewFloat(100), "100.000000")
	requireType(t, err, classify.TypeInsufficientBalance)
	assert.Equal(t, "Insufficient balance. Maximum available: 100.000000", err.Error())
}

func TestCheckAdmin(t *testing.T) {
	bridge := test.NewFakeBridge()
	g := guard.New(bridge, expectedNetwork, addressPrefix, test.TestAdminAddress)

	account, err := g.CheckWallet(context.Background())
	require.NoError(t, err)
	require.NoError(t, g.CheckAdmin(account))

	account.Address = test.TestInvestorAddress
	err = g.CheckAdmin(account)
	requireType(t, err, classify.TypeUnauthorized)
}
