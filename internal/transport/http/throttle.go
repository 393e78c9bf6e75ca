package http

import (
	"net/http"

	"golang.org/x/time/rate"
)

// ThrottleTransport is a custom http.RoundTripper that caps the rate of
// outgoing requests. The identity service rate-limits aggressive clients,
// and a stuck caller hammering send-code would only make things worse.
// This is not a retry layer: a throttled request still runs exactly once.
type ThrottleTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// limiter enforces the request rate cap.
	limiter *rate.Limiter
}

// NewThrottleTransport creates and returns a new instance of ThrottleTransport.
// requestsPerSecond must be positive; burst is fixed to 1 so requests
// are spaced evenly rather than clustered.
func NewThrottleTransport(next http.RoundTripper, requestsPerSecond float64) http.RoundTripper {
	return &ThrottleTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// RoundTrip waits for the limiter and then executes the HTTP transaction.
// It implements the http.RoundTripper interface.
// Waiting respects the request's context, so a cancelled call
// does not consume a slot.
func (t *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	return t.next.RoundTrip(req)
}
