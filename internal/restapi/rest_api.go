package restapi

import (
	"net/http"
	"net/netip"
	"time"

	"dashboard.demografia.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter    *RateLimitMiddleware
	trustedProxies []netip.Prefix
}

// NewRestAPI creates a new RestAPI instance. A positive Config.RateLimit
// enables per-client rate limiting.
func NewRestAPI(app *app.Application) *RestAPI {
	api := &RestAPI{
		Application:    app,
		trustedProxies: app.Config.TrustedProxyPrefixes(),
	}
	if app.Config.RateLimit > 0 {
		api.rateLimiter = NewRateLimitMiddleware(app.Config.RateLimit, time.Second, api.trustedProxies...)
	}
	return api
}

// Middleware wraps next in the server's middleware chain: request logging
// outermost, then security headers, compression and rate limiting.
func (api *RestAPI) Middleware(next http.Handler) http.Handler {
	handler := next
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger, api.trustedProxies...)(handler)
}

// Stop releases the rate limiter's background cleanup.
func (api *RestAPI) Stop() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
