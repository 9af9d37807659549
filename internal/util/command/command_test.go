package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github/cloex/go-exchange/internal/api"
	"github/cloex/go-exchange/internal/config"
	"github/cloex/go-exchange/internal/exchange"
	"github/cloex/go-exchange/internal/util/command"
)

func TestWithServer(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	var testError = errors.New("test error")

	resultErr := command.WithServer(context.Background(), cfg, func(_ context.Context, s *api.Server) error {
		assert.NotNil(t, s.Exchange)
		assert.Equal(t, exchange.StateIdle, s.Exchange.State())

		return testError
	})

	assert.Equal(t, testError, resultErr)
}

func TestNewSubcommandGroup(t *testing.T) {
	group := command.NewSubcommandGroup("tools", command.NewSubcommandGroup("inner"))
	assert.Equal(t, "tools", group.Use)
	assert.Len(t, group.Commands(), 1)
}
