package wallet

import (
	"context"
	"fmt"

	"github/cloex/go-exchange/internal/exchange/payload"
)

// Wallet extension error codes as surfaced through the bridge, matching the
// injected provider contract.
const (
	CodeUserRejected      = 4001
	CodeUnsupportedMethod = 4100
)

// Account identifies the wallet account authorized for this session.
type Account struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
}

// SubmitResult is returned by the wallet after a transaction was signed and
// submitted to the chain.
type SubmitResult struct {
	Hash string `json:"hash"`
}

// RPCError is a structured rejection from the wallet extension.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("wallet error %d: %s", e.Code, e.Message)
}

// Bridge is the capability surface of the browser wallet extension. All calls
// may block on user interaction; callers control cancellation via ctx.
type Bridge interface {
	// Connect asks the wallet to authorize this session.
	Connect(ctx context.Context) (*Account, error)

	// IsConnected reports whether the wallet authorized this session.
	IsConnected(ctx context.Context) (bool, error)

	// Account returns the currently authorized account.
	Account(ctx context.Context) (*Account, error)

	// Network returns the name of the wallet's active network.
	Network(ctx context.Context) (string, error)

	// SignAndSubmitTransaction prompts the user to sign the given entry
	// function payload and submits it to the chain.
	SignAndSubmitTransaction(ctx context.Context, req payload.Request) (*SubmitResult, error)
}
