// Package session owns the client-side authentication state: the bearer
// token, the identifier and code of an in-progress verification, and the
// derived authentication status. All mutation goes through named operations
// that preserve the store's invariants; the token is the only field that
// survives a restart, persisted to a session file on every change.
package session
