package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/api/router"
	"github/cloex/go-exchange/internal/config"
)

const (
	listenFlag      = "listen"
	prettyFlag      = "pretty"
	shutdownTimeout = 30 * time.Second
	viperListenKey  = "server.echo.listen_address"
	viperPrettyKey  = "server.logger.pretty_print_console"
	viperEnvListen  = "SERVER_ECHO_LISTEN_ADDRESS"
	viperEnvPretty  = "SERVER_LOGGER_PRETTY_PRINT_CONSOLE"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the HTTP server",
		Long: `Starts the exchange HTTP server.

Reads its configuration from ENV, wires the wallet bridge, fullnode
and indexer clients and serves until interrupted.`,
		Run: func(cmd *cobra.Command, _ []string) {
			runServer(cmd)
		},
	}

	cmd.Flags().String(listenFlag, "", "Listen address override (host:port)")
	cmd.Flags().Bool(prettyFlag, false, "Pretty-print console logs")

	return cmd
}

// bindFlags routes flag overrides through viper so they win over ENV.
func bindFlags(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	//nolint:errcheck
	v.BindPFlag(viperListenKey, cmd.Flags().Lookup(listenFlag))
	//nolint:errcheck
	v.BindPFlag(viperPrettyKey, cmd.Flags().Lookup(prettyFlag))
	//nolint:errcheck
	v.BindEnv(viperListenKey, viperEnvListen)
	//nolint:errcheck
	v.BindEnv(viperPrettyKey, viperEnvPretty)

	return v
}

func runServer(cmd *cobra.Command) {
	v := bindFlags(cmd)

	cfg := config.DefaultServiceConfigFromEnv()
	if listen := v.GetString(viperListenKey); cmd.Flags().Changed(listenFlag) && listen != "" {
		cfg.Echo.ListenAddress = listen
	}
	if cmd.Flags().Changed(prettyFlag) {
		cfg.Logger.PrettyPrintConsole = v.GetBool(viperPrettyKey)
	}

	zerolog.SetGlobalLevel(cfg.Logger.Level)
	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	router.Init(s)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Warn().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to gracefully shut down server")
	}
}
