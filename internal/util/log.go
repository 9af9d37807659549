package util

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFromContext returns a request-specific zerolog instance if one was
// previously attached (e.g. by the logger middleware), falling back to the
// global logger otherwise.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		l = &log.Logger
	}
	return l
}

// LogLevelFromString returns the zerolog.Level for the given level name,
// defaulting to debug on unknown values.
func LogLevelFromString(s string) zerolog.Level {
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		log.Error().Err(err).Msgf("Failed to parse log level %q, defaulting to %s", s, zerolog.DebugLevel)
		return zerolog.DebugLevel
	}
	return l
}
