package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"meetslot/config"
	"meetslot/shared/cache"
)

const otelHTTPScopeName = "http"

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
}

type appMiddleware struct {
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		config: config,
		cache:  cache,
	}
}

// Tracing starts a server span per request and extracts incoming trace context.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, otelHTTPScopeName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
