package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
	headerRetryAfter  = "Retry-After"
)

// RateLimit counts requests per client IP and user agent in fixed windows
// kept in the cache. A guest hammering the availability search is throttled
// without touching other visitors. Without a reachable cache every request
// is let through, and so is every request when the limit or window is not
// positive.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limit := a.config.App.RateLimiter.MaxRequests
	window := a.config.App.RateLimiter.WindowSeconds
	enabled := a.config.App.RateLimiter.Enable && limit > 0 && window > 0

	if a.config.App.RateLimiter.Enable && !enabled {
		log.Warn().Int("maxRequests", limit).Int("windowSeconds", window).Msg("rate limiter misconfigured, limiting disabled")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)

				return
			}

			key := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), userAgent(r))

			count, ok := a.countRequest(r, key)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			if count > limit {
				w.Header().Set(headerRetryAfter, strconv.Itoa(window))
				response.WithRequestLimitExceeded(w)

				return
			}

			if err := a.cache.Save(r.Context(), key, count, window); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to record request count, allowing request")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limit-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(window))

			next.ServeHTTP(w, r)
		})
	}
}

// countRequest returns the request's position in the current window. ok is
// false when the cache cannot answer.
func (a *appMiddleware) countRequest(r *http.Request, key string) (count int, ok bool) {
	err := a.cache.Get(r.Context(), key, &count)

	switch {
	case errors.Is(err, cache.Nil):
		return 1, true
	case err != nil:
		log.Warn().Err(err).Str("key", key).Msg("rate limiter cache unavailable, allowing request")

		return 0, false
	default:
		return count + 1, true
	}
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownUserAgent
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// Leftmost entry is the original client.
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
