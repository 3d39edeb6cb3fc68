package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimitByIP(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := Chain(okHandler(), RateLimitByIP(cfg))

	doReq := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/users/login", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, doReq("10.0.0.1"))
	require.Equal(t, http.StatusOK, doReq("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, doReq("10.0.0.1"))

	// A different client has its own bucket.
	require.Equal(t, http.StatusOK, doReq("10.0.0.2"))
}

func TestRateLimitSetsRetryHeaders(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := Chain(okHandler(), RateLimitByIP(cfg))

	req := httptest.NewRequest(http.MethodPost, "/v1/users/login", nil)
	req.Header.Set("X-Real-IP", "10.0.0.3")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
}

func TestIPKeyExtractorPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	require.Equal(t, "203.0.113.7", IPKeyExtractor(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.9:4321"
	require.Equal(t, "192.0.2.9", IPKeyExtractor(req))
}
