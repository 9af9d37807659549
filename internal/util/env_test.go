package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github/cloex/go-exchange/internal/util"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_GET_ENV", "value")
	assert.Equal(t, "value", util.GetEnv("TEST_GET_ENV", "fallback"))
	assert.Equal(t, "fallback", util.GetEnv("TEST_GET_ENV_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_GET_ENV_INT", "42")
	assert.Equal(t, 42, util.GetEnvAsInt("TEST_GET_ENV_INT", 7))

	t.Setenv("TEST_GET_ENV_INT", "not a number")
	assert.Equal(t, 7, util.GetEnvAsInt("TEST_GET_ENV_INT", 7))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_GET_ENV_BOOL", "true")
	assert.True(t, util.GetEnvAsBool("TEST_GET_ENV_BOOL", false))

	t.Setenv("TEST_GET_ENV_BOOL", "junk")
	assert.False(t, util.GetEnvAsBool("TEST_GET_ENV_BOOL", false))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_GET_ENV_DURATION", "150ms")
	assert.Equal(t, 150*time.Millisecond, util.GetEnvAsDuration("TEST_GET_ENV_DURATION", time.Second))
	assert.Equal(t, time.Second, util.GetEnvAsDuration("TEST_GET_ENV_DURATION_MISSING", time.Second))
}

func TestGetEnvAsStringArr(t *testing.T) {
	t.Setenv("TEST_GET_ENV_ARR", "a,b,c")
	assert.Equal(t, []string{"a", "b", "c"}, util.GetEnvAsStringArr("TEST_GET_ENV_ARR", []string{"z"}))
	assert.Equal(t, []string{"z"}, util.GetEnvAsStringArr("TEST_GET_ENV_ARR_MISSING", []string{"z"}))
}
