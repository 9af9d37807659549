//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/cloex/go-exchange/internal/chain"
	"github/cloex/go-exchange/internal/config"
	"github/cloex/go-exchange/internal/metrics"
	"github/cloex/go-exchange/internal/wallet"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for
// initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	metrics.New,
	NewRegistry,
	NewExchangeService,
	NewExchangeSession,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewWalletBridge, NewChainClient, NewIndexerClient)
	return new(Server), nil
}

// InitNewServerWithComponents returns a new Server instance using the given
// wallet bridge and chain clients. All the other components are initialized
// via go wire according to the configuration. Used by tests to inject fakes.
func InitNewServerWithComponents(
	_ config.Server,
	_ wallet.Bridge,
	_ *chain.Client,
	_ *chain.IndexerClient,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
