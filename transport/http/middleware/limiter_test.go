package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tie/config"
	otelMocks "tie/infras/otel/mocks"
	"tie/shared/cache"
	cacheMocks "tie/shared/cache/mocks"
	"tie/shared/constant"
	"tie/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limited(t *testing.T, redisCache cache.RedisCache) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache)

	return app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func request(handler http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations/", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	return recorder
}

func TestRateLimit_FirstRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Get(gomock.Any(), "limiter:203.0.113.7:unknown", gomock.Any()).Return(fmt.Errorf("get: %w", cache.Nil))
	redisCache.EXPECT().Save(gomock.Any(), "limiter:203.0.113.7:unknown", 1, 60).Return(nil)

	recorder := request(limited(t, redisCache))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "4", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
}

func TestRateLimit_Exceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*int) = 5

			return nil
		})
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), 6, 60).Return(nil)

	recorder := request(limited(t, redisCache))

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	recorder := request(limited(t, redisCache))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get(constant.RequestHeaderRateLimit))
}
