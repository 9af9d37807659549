package chain_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/cloex/go-exchange/internal/chain"
	"github/cloex/go-exchange/internal/test"
)

const shareAsset = "0x95262b5eed8051a286ae7f3f86cc6db07c152da2806ccff31df5a475c500b591"

func TestViewU64(t *testing.T) {
	backend := test.NewChainBackend()
	backend.SetScaledPrice(shareAsset, 3000)

	srv := httptest.NewServer(backend.FullnodeHandler())
	defer srv.Close()

	client := chain.NewClient(srv.URL, time.Millisecond)

	price, err := client.ViewU64(context.Background(), "0xc09d::mock_clo_exchange::exchange_price", []interface{}{shareAsset})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), price)
}

func TestViewU64AcceptsUnquotedNumbers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck
		w.Write([]byte(`[42]`))
	}))
	defer srv.Close()

	client := chain.NewClient(srv.URL, time.Millisecond)

	n, err := client.ViewU64(context.Background(), "0x1::m::f", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestViewU64RejectsMalformedValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"trailing garbage", `["123abc"]`},
		{"negative", `["-5"]`},
		{"empty string", `[""]`},
		{"beyond int64", `["18446744073709551615"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				//nolint:errcheck
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := chain.NewClient(srv.URL, time.Millisecond)

			_, err := client.ViewU64(context.Background(), "0x1::m::f", nil)
			require.Error(t, err)
		})
	}
}

func TestViewErrorSurfacesBody(t *testing.T) {
	backend := test.NewChainBackend()
	srv := httptest.NewServer(backend.FullnodeHandler())
	defer srv.Close()

	client := chain.NewClient(srv.URL, time.Millisecond)

	_, err := client.ViewU64(context.Background(), "0xc09d::mock_clo_exchange::exchange_price", []interface{}{"0xunknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share class not found")
}

func TestWaitForTransactionSuccess(t *testing.T) {
	backend := test.NewChainBackend()
	srv := httptest.NewServer(backend.FullnodeHandler())
	defer srv.Close()

	client := chain.NewClient(srv.URL, time.Millisecond)
	require.NoError(t, client.WaitForTransaction(context.Background(), "0xhash"))
}

func TestWaitForTransactionFailedExecution(t *testing.T) {
	backend := test.NewChainBackend()
	backend.FailedTxStatus = "Move abort: insufficient balance"

	srv := httptest.NewServer(backend.FullnodeHandler())
	defer srv.Close()

	client := chain.NewClient(srv.URL, time.Millisecond)

	err := client.WaitForTransaction(context.Background(), "0xhash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient balance")
}

func TestWaitForTransactionPollsWhilePending(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) < 3 {
			//nolint:errcheck
			w.Write([]byte(`{"type":"pending_transaction","success":false,"vm_status":""}`))
			return
		}
		//nolint:errcheck
		w.Write([]byte(`{"type":"user_transaction","success":true,"vm_status":"Executed successfully"}`))
	}))
	defer srv.Close()

	client := chain.NewClient(srv.URL, time.Millisecond)
	require.NoError(t, client.WaitForTransaction(context.Background(), "0xhash"))
	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestWaitForTransactionCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck
		w.Write([]byte(`{"type":"pending_transaction","success":false,"vm_status":""}`))
	}))
	defer srv.Close()

	client := chain.NewClient(srv.URL, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.WaitForTransaction(ctx, "0xhash")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
