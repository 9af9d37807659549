package api

import (
	"github/cloex/go-exchange/internal/chain"
	"github/cloex/go-exchange/internal/config"
	"github/cloex/go-exchange/internal/exchange"
	"github/cloex/go-exchange/internal/exchange/registry"
	"github/cloex/go-exchange/internal/metrics"
	"github/cloex/go-exchange/internal/wallet"
)

// PROVIDERS - the functions wire assembles the Server from, see wire.go.

// NewWalletBridge provides the HTTP client to the wallet bridge companion.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewWalletBridge(cfg config.Server) wallet.Bridge {
	return wallet.NewRemoteBridge(cfg.Wallet.URL)
}

// NewChainClient provides the fullnode client.
func NewChainClient(cfg config.Server) *chain.Client {
	return chain.NewClient(cfg.Chain.FullnodeURL, cfg.Chain.ConfirmPollInterval)
}

// NewIndexerClient provides the indexer client.
func NewIndexerClient(cfg config.Server) *chain.IndexerClient {
	return chain.NewIndexerClient(cfg.Chain.IndexerURL)
}

// NewRegistry provides the static share class registry.
func NewRegistry(cfg config.Server) *registry.Registry {
	return registry.New(cfg.Exchange.USDCMetadata, cfg.Exchange.ShareClasses)
}

// NewExchangeService provides the operation controller.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewExchangeService(
	cfg config.Server,
	bridge wallet.Bridge,
	chainClient *chain.Client,
	indexer *chain.IndexerClient,
	reg *registry.Registry,
	m *metrics.Service,
) ExchangeService {
	return exchange.NewService(exchangeConfig(cfg), bridge, chainClient, indexer, reg, m)
}

// NewExchangeSession provides the preview session.
func NewExchangeSession(svc ExchangeService, reg *registry.Registry) *exchange.Session {
	return exchange.NewSession(svc, reg)
}

func exchangeConfig(cfg config.Server) exchange.Config {
	return exchange.Config{
		ModuleAddress:        cfg.Exchange.ModuleAddress,
		USDCMetadata:         cfg.Exchange.USDCMetadata,
		AdminAddress:         cfg.Exchange.AdminAddress,
		ExpectedNetwork:      cfg.Exchange.ExpectedNetwork,
		AddressPrefix:        cfg.Exchange.AddressPrefix,
		DefaultAssetDecimals: cfg.Exchange.DefaultAssetDecimals,
	}
}
