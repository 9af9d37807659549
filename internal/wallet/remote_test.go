package wallet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/cloex/go-exchange/internal/exchange/payload"
	"github/cloex/go-exchange/internal/util"
	"github/cloex/go-exchange/internal/wallet"
)

func newBridgeServer(t *testing.T) (*httptest.Server, *wallet.RemoteBridge) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/connect", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		writeJSON(w, http.StatusOK, map[string]string{"address": "0xabc", "publicKey": "0xpub"})
	})
	mux.HandleFunc("/v1/is_connected", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"connected": true})
	})
	mux.HandleFunc("/v1/account", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"address": "0xabc", "publicKey": "0xpub"})
	})
	mux.HandleFunc("/v1/network", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"network": "Mainnet"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, wallet.NewRemoteBridge(srv.URL)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	//nolint:errcheck
	json.NewEncoder(w).Encode(v)
}

func TestRemoteBridgeForwardsRequestID(t *testing.T) {
	mux := http.NewServeMux()
	var seen string
	mux.HandleFunc("/v1/network", func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
		writeJSON(w, http.StatusOK, map[string]string{"network": "Mainnet"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	bridge := wallet.NewRemoteBridge(srv.URL)

	ctx := context.WithValue(context.Background(), util.CTXKeyRequestID, "req-123")
	_, err := bridge.Network(ctx)
	require.NoError(t, err)
	assert.Equal(t, "req-123", seen)

	_, err = bridge.Network(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seen)
}

func TestRemoteBridgeConnect(t *testing.T) {
	_, bridge := newBridgeServer(t)

	account, err := bridge.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xabc", account.Address)
	assert.Equal(t, "0xpub", account.PublicKey)
}

func TestRemoteBridgeIsConnected(t *testing.T) {
	_, bridge := newBridgeServer(t)

	connected, err := bridge.IsConnected(context.Background())
	require.NoError(t, err)
	assert.True(t, connected)
}

func TestRemoteBridgeNetwork(t *testing.T) {
	_, bridge := newBridgeServer(t)

	network, err := bridge.Network(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mainnet", network)
}

func TestRemoteBridgeSignAndSubmit(t *testing.T) {
	var received payload.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeJSON(w, http.StatusOK, map[string]string{"hash": "0xdeadbeef"})
	}))
	defer srv.Close()

	bridge := wallet.NewRemoteBridge(srv.URL)

	result, err := bridge.SignAndSubmitTransaction(context.Background(), payload.RequestIssuance("0xmod", "0xasset", "100"))
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", result.Hash)
	assert.Equal(t, "0xmod::mock_clo_exchange::request_issuance", received.Function)
}

func TestRemoteBridgeRejectionPreservesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{"code": 4001, "message": "The user rejected the request"})
	}))
	defer srv.Close()

	bridge := wallet.NewRemoteBridge(srv.URL)

	_, err := bridge.SignAndSubmitTransaction(context.Background(), payload.Request{Function: "0x1::m::f"})
	require.Error(t, err)

	var rpcErr *wallet.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, wallet.CodeUserRejected, rpcErr.Code)
	assert.Equal(t, "The user rejected the request", rpcErr.Message)
}

func TestRemoteBridgeUnshapedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bridge exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	bridge := wallet.NewRemoteBridge(srv.URL)

	_, err := bridge.Network(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bridge exploded")
}
