package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/cloex/go-exchange/internal/chain"
	"github/cloex/go-exchange/internal/config"
	"github/cloex/go-exchange/internal/exchange"
	"github/cloex/go-exchange/internal/exchange/registry"
	"github/cloex/go-exchange/internal/metrics"
	"github/cloex/go-exchange/internal/wallet"
)

// ExchangeService is the operation controller surface used by the handlers.
type ExchangeService = exchange.Service

type Router struct {
	Routes        []*echo.Route
	Root          *echo.Group
	Management    *echo.Group
	APIV1Exchange *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the
// components in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized
// after the InitNewServer* call.
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config   config.Server
	Metrics  *metrics.Service
	Wallet   wallet.Bridge
	Chain    *chain.Client
	Indexer  *chain.IndexerClient
	Registry *registry.Registry
	Exchange ExchangeService
	Session  *exchange.Session
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be
// initialized separately. Components which shouldn't be handled must be
// labeled `wire:"-"` in the Server struct.
func newServerWithComponents(
	cfg config.Server,
	m *metrics.Service,
	bridge wallet.Bridge,
	chainClient *chain.Client,
	indexer *chain.IndexerClient,
	reg *registry.Registry,
	exchangeService ExchangeService,
	session *exchange.Session,
) *Server {
	return &Server{
		Config:   cfg,
		Metrics:  m,
		Wallet:   bridge,
		Chain:    chainClient,
		Indexer:  indexer,
		Registry: reg,
		Exchange: exchangeService,
		Session:  session,
	}
}

// Ready returns true once all components are initialized.
func (s *Server) Ready() bool {
	return s.Echo != nil &&
		s.Router != nil &&
		s.Metrics != nil &&
		s.Wallet != nil &&
		s.Chain != nil &&
		s.Indexer != nil &&
		s.Registry != nil &&
		s.Exchange != nil &&
		s.Session != nil
}

// Start starts the echo server on the configured listen address.
func (s *Server) Start() error {
	return s.Echo.Start(s.Config.Echo.ListenAddress)
}

// Shutdown gracefully stops the echo server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.Echo != nil {
		err := s.Echo.Shutdown(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}
	return nil
}
