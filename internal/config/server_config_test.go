package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github/cloex/go-exchange/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestDefaultShareClasses(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	assert.Len(t, cfg.Exchange.ShareClasses, 3)
	assert.Equal(t, "TIB2", cfg.Exchange.ShareClasses[0].Name)
	assert.NotEmpty(t, cfg.Exchange.ModuleAddress)
	assert.Equal(t, cfg.Exchange.ModuleAddress, cfg.Exchange.AdminAddress)
	assert.Equal(t, 8, cfg.Exchange.DefaultAssetDecimals)
}
