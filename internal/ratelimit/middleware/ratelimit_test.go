package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"regform/internal/ratelimit/models"
	"regform/internal/ratelimit/store/bucket"
	"regform/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int, time.Duration) (*models.RateLimitResult, error) {
	return nil, errors.New("store unavailable")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestFrom(ip string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/registration", nil)
	return r.WithContext(requestcontext.WithClientMetadata(r.Context(), ip, "", ""))
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	m := New(bucket.NewInMemoryBucketStore(), discardLogger(), 2, time.Minute)
	h := m.RateLimit(models.ClassRegistration)(okHandler())

	for i := range 2 {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestFrom("10.0.0.1"))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestFrom("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), MessageTooManyRequests)

	other := httptest.NewRecorder()
	h.ServeHTTP(other, requestFrom("10.0.0.2"))
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	m := New(bucket.NewInMemoryBucketStore(), discardLogger(), 1, time.Minute, WithDisabled(true))
	h := m.RateLimit(models.ClassRegistration)(okHandler())

	for range 3 {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestFrom("10.0.0.1"))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	m := New(failingStore{}, discardLogger(), 1, time.Minute)
	h := m.RateLimit(models.ClassRegistration)(okHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestFrom("10.0.0.1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}
