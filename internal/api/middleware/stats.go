package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const recordTimeout = time.Second

// HitRecorder accumulates per-route request counts.
type HitRecorder interface {
	Record(ctx context.Context, method, path string) error
}

// Stats counts every served request by method and route. Recording is best
// effort: a counter failure is logged at debug level and never affects the
// response.
func Stats(hits HitRecorder, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			// The request context may already be done once the response is
			// written, so the counter gets its own deadline.
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			if rerr := hits.Record(ctx, c.Request().Method, c.Path()); rerr != nil {
				log.Debug().Err(rerr).Str("path", c.Path()).Msg("hit counter unavailable")
			}

			return err
		}
	}
}
