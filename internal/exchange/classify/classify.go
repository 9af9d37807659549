package classify

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github/cloex/go-exchange/internal/wallet"
)

// Type is the closed taxonomy of operation failures surfaced to callers.
type Type string

const (
	TypeWalletUnavailable   Type = "wallet_unavailable"
	TypeWalletNotConnected  Type = "wallet_not_connected"
	TypeWrongNetwork        Type = "wrong_network"
	TypeUserRejected        Type = "user_rejected"
	TypeUnsupportedMethod   Type = "unsupported_method"
	TypeInsufficientBalance Type = "insufficient_balance"
	TypeInvalidInput        Type = "invalid_input"
	TypeUnauthorized        Type = "unauthorized"
	TypeChainError          Type = "chain_error"
)

// OperationError is a classified operation failure with a human-readable
// message suitable for display.
type OperationError struct {
	Type    Type
	Message string
	cause   error
}

func (e *OperationError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying wallet/chain error for errors.Is/As chains.
func (e *OperationError) Unwrap() error {
	return e.cause
}

// New creates an OperationError of the given type.
func New(t Type, message string) *OperationError {
	return &OperationError{Type: t, Message: message}
}

// Newf creates an OperationError of the given type with a formatted message.
func Newf(t Type, format string, args ...interface{}) *OperationError {
	return &OperationError{Type: t, Message: fmt.Sprintf(format, args...)}
}

// Classify maps a failure from the wallet/chain boundary into the closed
// taxonomy. Errors that were already classified (e.g. by the validation
// guard) pass through unchanged.
func Classify(err error) *OperationError {
	if err == nil {
		return nil
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr
	}

	var rpcErr *wallet.RPCError
	if errors.As(err, &rpcErr) {
		switch rpcErr.Code {
		case wallet.CodeUserRejected:
			return &OperationError{Type: TypeUserRejected, Message: "Transaction rejected by user", cause: err}
		case wallet.CodeUnsupportedMethod:
			return &OperationError{Type: TypeUnsupportedMethod, Message: "The requested method is not supported by the wallet", cause: err}
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "insufficient balance") {
		return &OperationError{Type: TypeInsufficientBalance, Message: "Insufficient balance for this transaction", cause: err}
	}

	return &OperationError{Type: TypeChainError, Message: "Error: " + err.Error(), cause: err}
}
