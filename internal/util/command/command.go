package command

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/config"
	"github/cloex/go-exchange/internal/util"
)

// NewSubcommandGroup returns a group command that requires one of its
// subcommands to be selected.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			//nolint:errcheck
			cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// WithServer initializes a server from the given config, runs the closure
// against it and shuts the server down afterwards. Meant for one-shot CLI
// tools that need the wired components without serving HTTP.
func WithServer(ctx context.Context, cfg config.Server, closure func(ctx context.Context, s *api.Server) error) error {
	s, err := api.InitNewServer(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	defer func() {
		if err := s.Shutdown(context.Background()); err != nil {
			util.LogFromContext(ctx).Error().Err(err).Msg("Failed to shut down server")
		}
	}()

	return closure(ctx, s)
}
