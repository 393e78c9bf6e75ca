// Package identity provides a thin client for the BookWise identity service.
//
// The client is stateless: each call maps to one HTTP request and returns
// either the operation's payload or a typed *Error describing what went wrong
// (network failure, rejected input, or a broken server response). All
// response-shape normalization happens here, so callers never see raw bodies.
// The client never retries; retrying is always an explicit caller action.
package identity
