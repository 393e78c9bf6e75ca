package http

import "net/http"

// TokenSource supplies the current bearer token, if any.
// The session store implements it, so the transport always sees
// the token that the most recent login or registration produced.
type TokenSource interface {
	// Token returns the current bearer token, or an empty string when logged out.
	Token() string
}

// BearerInjector is a custom http.RoundTripper that attaches the session's
// bearer token to outgoing requests as an Authorization header.
type BearerInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// tokenSource provides the current bearer token.
	tokenSource TokenSource
}

// authorizationHeader is the HTTP header name for request authorization.
const authorizationHeader = "Authorization"

// NewBearerInjector creates and returns a new instance of BearerInjector.
func NewBearerInjector(next http.RoundTripper, tokenSource TokenSource) http.RoundTripper {
	return &BearerInjector{
		next:        next,
		tokenSource: tokenSource,
	}
}

// RoundTrip executes a single HTTP transaction and injects an Authorization
// header when a token is available and the caller has not set one.
// It implements the http.RoundTripper interface.
func (t *BearerInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(authorizationHeader) == "" && t.tokenSource != nil {
		if token := t.tokenSource.Token(); token != "" {
			req.Header.Set(authorizationHeader, "Bearer "+token)
		}
	}

	return t.next.RoundTrip(req)
}
