package test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/api/router"
	"github/cloex/go-exchange/internal/chain"
	"github/cloex/go-exchange/internal/config"
)

// WithTestServer creates a fully wired api.Server backed by a FakeBridge and
// an in-memory ChainBackend and passes it to the closure. The wallet bridge
// is connected as the admin on mainnet, and submitted transactions confirm on
// the first poll.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()
	WithTestServerComponents(t, NewFakeBridge(), NewChainBackend(), closure)
}

// WithTestServerComponents is like WithTestServer but uses the given fakes,
// allowing tests to preconfigure wallet and chain state.
func WithTestServerComponents(t *testing.T, bridge *FakeBridge, backend *ChainBackend, closure func(s *api.Server)) {
	t.Helper()

	fullnode := httptest.NewServer(backend.FullnodeHandler())
	defer fullnode.Close()
	indexer := httptest.NewServer(backend.IndexerHandler())
	defer indexer.Close()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Chain.FullnodeURL = fullnode.URL
	cfg.Chain.IndexerURL = indexer.URL
	cfg.Chain.ConfirmPollInterval = time.Millisecond

	client := chain.NewClient(cfg.Chain.FullnodeURL, cfg.Chain.ConfirmPollInterval)
	indexerClient := chain.NewIndexerClient(cfg.Chain.IndexerURL)

	s, err := api.InitNewServerWithComponents(cfg, bridge, client, indexerClient)
	require.NoError(t, err)

	router.Init(s)

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, s.Shutdown(ctx))
	}()

	closure(s)
}
