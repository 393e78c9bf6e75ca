// Package http provides custom HTTP transport utilities for the identity client:
// request/response logging, User-Agent and request ID injection,
// bearer token propagation from the session, and outgoing request throttling.
package http
