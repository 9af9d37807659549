package config

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/subosito/gotenv"
	"github/cloex/go-exchange/internal/exchange/registry"
	"github/cloex/go-exchange/internal/util"
)

// Defaults reproduce the deployed contract's constants; every value is
// overridable through ENV.
const (
	defaultModuleAddress = "0xc09d9f882bcd2a8f109d806eae6aa3e1d8f630b18a196142bf6d9b2a4292b092"
	defaultUSDCMetadata  = "0xbae207659db88bea0cbead6da0ed00aac12edcdda169e591cd41c94180b46f3b"
)

var defaultShareClasses = []string{
	"TIB2:0x95262b5eed8051a286ae7f3f86cc6db07c152da2806ccff31df5a475c500b591",
	"BSFG325:0xcca9bd387945b1daf7bb6cc6d68796318036ccc109be0ca31f6ae6d9c898d89e",
	"RODA1:0xdbad8fb3e984a1bf2253eb5621a9e8371e3e52bcd4f54500e8a4059b6053198e",
}

// EchoServer holds the configuration of the echo HTTP server.
type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableLoggerMiddleware         bool
}

// Exchange holds the contract and access expectations of the exchange.
type Exchange struct {
	ModuleAddress        string
	USDCMetadata         string
	AdminAddress         string
	ExpectedNetwork      string
	AddressPrefix        string
	DefaultAssetDecimals int
	ShareClasses         []registry.ShareClass
}

// Chain holds the fullnode and indexer endpoints.
type Chain struct {
	FullnodeURL         string
	IndexerURL          string
	ConfirmPollInterval time.Duration
}

// WalletBridge holds the wallet bridge companion endpoint.
type WalletBridge struct {
	URL string
}

// Logger holds the zerolog configuration.
type Logger struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
}

// Server is the aggregated service configuration.
type Server struct {
	Echo     EchoServer
	Exchange Exchange
	Chain    Chain
	Wallet   WalletBridge
	Logger   Logger
}

var dotEnvOnce sync.Once

// DefaultServiceConfigFromEnv returns the service config filled from ENV,
// loading a local .env.local file once if present.
func DefaultServiceConfigFromEnv() Server {
	dotEnvOnce.Do(func() {
		// dev convenience only, missing file is fine
		_ = gotenv.Load(".env.local")
	})

	return Server{
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
		},
		Exchange: Exchange{
			ModuleAddress:        util.GetEnv("EXCHANGE_MODULE_ADDRESS", defaultModuleAddress),
			USDCMetadata:         util.GetEnv("EXCHANGE_USDC_METADATA", defaultUSDCMetadata),
			AdminAddress:         util.GetEnv("EXCHANGE_ADMIN_ADDRESS", defaultModuleAddress),
			ExpectedNetwork:      util.GetEnv("EXCHANGE_EXPECTED_NETWORK", "mainnet"),
			AddressPrefix:        util.GetEnv("EXCHANGE_ADDRESS_PREFIX", "0x"),
			DefaultAssetDecimals: util.GetEnvAsInt("EXCHANGE_DEFAULT_ASSET_DECIMALS", 8),
			ShareClasses:         parseShareClasses(util.GetEnvAsStringArr("EXCHANGE_SHARE_CLASSES", defaultShareClasses)),
		},
		Chain: Chain{
			FullnodeURL:         util.GetEnv("CHAIN_FULLNODE_URL", "https://fullnode.mainnet.aptoslabs.com"),
			IndexerURL:          util.GetEnv("CHAIN_INDEXER_URL", "https://api.mainnet.aptoslabs.com/v1/graphql"),
			ConfirmPollInterval: util.GetEnvAsDuration("CHAIN_CONFIRM_POLL_INTERVAL", time.Second),
		},
		Wallet: WalletBridge{
			URL: util.GetEnv("WALLET_BRIDGE_URL", "http://localhost:8575"),
		},
		Logger: Logger{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
			LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
			LogResponseBody:    util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_BODY", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
	}
}

// parseShareClasses parses "NAME:0xaddress" entries; malformed entries are
// skipped.
func parseShareClasses(entries []string) []registry.ShareClass {
	classes := make([]registry.ShareClass, 0, len(entries))
	for _, entry := range entries {
		name, address, ok := strings.Cut(entry, ":")
		if !ok || name == "" || address == "" {
			continue
		}
		classes = append(classes, registry.ShareClass{Name: name, Address: address})
	}
	return classes
}
