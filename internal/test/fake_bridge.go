package test

import (
	"context"
	"sync"

	"github/cloex/go-exchange/internal/exchange/payload"
	"github/cloex/go-exchange/internal/wallet"
)

// TestAdminAddress matches the default configured admin address.
const TestAdminAddress = "0xc09d9f882bcd2a8f109d806eae6aa3e1d8f630b18a196142bf6d9b2a4292b092"

// TestInvestorAddress is a non-admin account used by tests.
const TestInvestorAddress = "0x7b1f3c2a9d845f17fd6e55629c0f2e84b6f09a6f4c2d83b1a0e5c973d14a9b22"

// FakeBridge is an in-memory wallet.Bridge used by tests instead of the HTTP
// bridge. All fields may be mutated between calls.
type FakeBridge struct {
	mu sync.Mutex

	Connected  bool
	AccountVal wallet.Account
	NetworkVal string

	SubmitHash string
	SubmitErr  error

	// SubmitFunc overrides the default submit behavior when set.
	SubmitFunc func(ctx context.Context, req payload.Request) (*wallet.SubmitResult, error)

	Submitted []payload.Request
}

var _ wallet.Bridge = (*FakeBridge)(nil)

// NewFakeBridge returns a bridge connected as the admin on mainnet whose
// submissions succeed with a fixed hash.
func NewFakeBridge() *FakeBridge {
	return &FakeBridge{
		Connected:  true,
		AccountVal: wallet.Account{Address: TestAdminAddress, PublicKey: "0xpub"},
		NetworkVal: "Mainnet",
		SubmitHash: "0x8a2f7d1e9b5c4a3f6e8d0c2b7a9f1e3d5c7b9a1f3e5d7c9b1a3f5e7d9c1b3a5f",
	}
}

func (b *FakeBridge) Connect(_ context.Context) (*wallet.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Connected = true
	account := b.AccountVal
	return &account, nil
}

func (b *FakeBridge) IsConnected(_ context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Connected, nil
}

func (b *FakeBridge) Account(_ context.Context) (*wallet.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	account := b.AccountVal
	return &account, nil
}

func (b *FakeBridge) Network(_ context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.NetworkVal, nil
}

func (b *FakeBridge) SignAndSubmitTransaction(ctx context.Context, req payload.Request) (*wallet.SubmitResult, error) {
	b.mu.Lock()
	submitFunc := b.SubmitFunc
	submitErr := b.SubmitErr
	hash := b.SubmitHash
	b.Submitted = append(b.Submitted, req)
	b.mu.Unlock()

	if submitFunc != nil {
		return submitFunc(ctx, req)
	}
	if submitErr != nil {
		return nil, submitErr
	}
	return &wallet.SubmitResult{Hash: hash}, nil
}

// LastSubmitted returns the most recently submitted payload, or nil.
func (b *FakeBridge) LastSubmitted() *payload.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.Submitted) == 0 {
		return nil
	}
	req := b.Submitted[len(b.Submitted)-1]
	return &req
}
