package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestThrottleTransport_RoundTrip tests that throttled requests still run.
func TestThrottleTransport_RoundTrip(t *testing.T) {
	t.Parallel()

	requestCount := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := NewThrottleTransport(http.DefaultTransport, 100)

	for n := 0; n < 3; n++ {
		req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
		require.NoError(t, err)

		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
	}

	assert.Equal(t, 3, requestCount)
}

// TestThrottleTransport_RoundTrip_SpacesRequests tests that the rate cap
// actually delays the second request.
func TestThrottleTransport_RoundTrip_SpacesRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// 10 requests per second means at least 100ms between two requests.
	transport := NewThrottleTransport(http.DefaultTransport, 10)
	started := time.Now()

	for n := 0; n < 2; n++ {
		req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
		require.NoError(t, err)

		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
	}

	assert.GreaterOrEqual(t, time.Since(started), 90*time.Millisecond)
}

// TestThrottleTransport_RoundTrip_CancelledContext tests that a cancelled
// request does not wait for a slot.
func TestThrottleTransport_RoundTrip_CancelledContext(t *testing.T) {
	t.Parallel()

	transport := NewThrottleTransport(http.DefaultTransport, 0.001)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://127.0.0.1:0", nil)
	require.NoError(t, err)

	_, err = transport.RoundTrip(req) //nolint:bodyclose // No response is returned on error.
	require.Error(t, err)
}

// TestThrottleTransport_RoundTrip_NilRequest tests the nil request guard.
func TestThrottleTransport_RoundTrip_NilRequest(t *testing.T) {
	t.Parallel()

	transport := NewThrottleTransport(http.DefaultTransport, 1)

	_, err := transport.RoundTrip(nil) //nolint:bodyclose // No response is returned on error.
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilRequest)
}
