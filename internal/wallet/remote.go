package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github/cloex/go-exchange/internal/exchange/payload"
	"github/cloex/go-exchange/internal/util"
)

// RemoteBridge talks to the wallet bridge companion over HTTP. The bridge
// forwards each call to the browser extension's injected provider, so any
// call may block until the user reacts to a prompt; no client-side timeout is
// applied and cancellation flows through ctx.
type RemoteBridge struct {
	baseURL string
	http    *http.Client
}

var _ Bridge = (*RemoteBridge)(nil)

// NewRemoteBridge creates a bridge client for the given base URL.
func NewRemoteBridge(baseURL string) *RemoteBridge {
	return &RemoteBridge{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// Connect asks the wallet to authorize this session.
func (b *RemoteBridge) Connect(ctx context.Context) (*Account, error) {
	var account Account
	if err := b.call(ctx, http.MethodPost, "/v1/connect", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// IsConnected reports whether the wallet authorized this session.
func (b *RemoteBridge) IsConnected(ctx context.Context) (bool, error) {
	var res struct {
		Connected bool `json:"connected"`
	}
	if err := b.call(ctx, http.MethodGet, "/v1/is_connected", nil, &res); err != nil {
		return false, err
	}
	return res.Connected, nil
}

// Account returns the currently authorized account.
func (b *RemoteBridge) Account(ctx context.Context) (*Account, error) {
	var account Account
	if err := b.call(ctx, http.MethodGet, "/v1/account", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Network returns the name of the wallet's active network.
func (b *RemoteBridge) Network(ctx context.Context) (string, error) {
	var res struct {
		Network string `json:"network"`
	}
	if err := b.call(ctx, http.MethodGet, "/v1/network", nil, &res); err != nil {
		return "", err
	}
	return res.Network, nil
}

// SignAndSubmitTransaction prompts the user to sign the payload and submits
// it to the chain via the wallet.
func (b *RemoteBridge) SignAndSubmitTransaction(ctx context.Context, req payload.Request) (*SubmitResult, error) {
	var result SubmitResult
	if err := b.call(ctx, http.MethodPost, "/v1/transactions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (b *RemoteBridge) call(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal bridge request")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create bridge request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := util.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	res, err := b.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "wallet bridge unreachable")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return decodeBridgeError(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode bridge response")
	}
	return nil
}

// decodeBridgeError maps a non-2xx bridge response to an *RPCError when the
// body carries the wallet's {code, message} shape, preserving codes 4001 and
// 4100 for classification.
func decodeBridgeError(res *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(res.Body, 4096))
	if err != nil {
		return errors.Wrapf(err, "wallet bridge returned %d", res.StatusCode)
	}

	var rpcErr RPCError
	if err := json.Unmarshal(body, &rpcErr); err == nil && rpcErr.Code != 0 {
		return &rpcErr
	}
	return errors.Errorf("wallet bridge returned %d: %s", res.StatusCode, string(body))
}
