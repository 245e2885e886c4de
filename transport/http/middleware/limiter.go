package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tie/shared"
	"tie/shared/cache"
	"tie/shared/constant"
	"tie/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit counts requests per client in a fixed redis window. The limiter fails open when redis is unavailable.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			count, ok := a.hit(r.Context(), cacheKey, limiter.WindowSeconds)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			if count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

// hit records one request and returns the count so far. ok is false when the counter could not be read or written.
func (a *appMiddleware) hit(ctx context.Context, key string, windowSeconds int) (int, bool) {
	var count int

	err := a.cache.Get(ctx, key, &count)

	switch {
	case errors.Is(err, cache.Nil):
		count = 1
	case err != nil:
		log.Warn().Err(err).Msg("rate limiter unavailable")

		return 0, false
	default:
		count++
	}

	if err = a.cache.Save(ctx, key, count, windowSeconds); err != nil {
		log.Warn().Err(err).Msg("rate limiter unavailable")

		return 0, false
	}

	return count, true
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != constant.Empty {
		return ua
	}

	return unknownUserAgent
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the socket address.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
