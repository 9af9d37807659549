package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/cloex/go-exchange/internal/util"
)

// LoggerConfig controls the request logger middleware.
type LoggerConfig struct {
	Level zerolog.Level
}

// Logger attaches a request-scoped zerolog logger to the request context and
// logs request completion at the configured level.
func Logger(config LoggerConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("id", id).
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Logger()

			ctx := context.WithValue(req.Context(), util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(l.WithContext(ctx)))

			err := next(c)
			if err != nil {
				// let the error handler write the response first, then log
				c.Error(err)
			}

			res := c.Response()
			l.WithLevel(config.Level).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration", time.Since(start)).
				Msg("Request completed")

			return nil
		}
	}
}
