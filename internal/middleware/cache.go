package middleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/anveshk/classroom-seating/internal/config"
)

// captureWriter records the response body and status while forwarding
// everything to the client, so a successful response can be stored after
// the handler finishes.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// ResponseCache caches successful GET responses in Redis, keyed by route
// and query string.  Mutating endpoints invalidate by prefix via
// InvalidateCache after a run, so stale assignment listings disappear as
// soon as a new run completes.  With caching disabled or Redis down the
// middleware is a pass-through.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				c.Response().Header().Set("X-Cache", "HIT")
				return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				_ = rdb.Set(ctx, key, cw.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}

// InvalidateCache drops every cached response under the configured
// prefix.  Called after assignment runs and CRUD mutations.
func InvalidateCache(cfg config.CacheConfig, rdb *redis.Client) func(c echo.Context) {
	return func(c echo.Context) {
		if !cfg.Enabled || rdb == nil {
			return
		}
		ctx := c.Request().Context()
		iter := rdb.Scan(ctx, 0, cfg.Prefix+":*", 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if len(keys) > 0 {
			_ = rdb.Del(ctx, keys...).Err()
		}
	}
}

func cacheKey(prefix string, c echo.Context) string {
	key := prefix + ":" + c.Path()
	if q := c.Request().URL.RawQuery; q != "" {
		key += "?" + q
	}
	return key
}
