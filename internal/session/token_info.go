package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes what a bearer token reveals about itself.
// The token is treated as opaque for authentication purposes; this exists
// only so the status command can show expiry when the token happens to be
// a JWT. No signature verification is performed, by design.
type TokenInfo struct {
	// IsJWT reports whether the token parsed as a JWT.
	IsJWT bool
	// Subject is the token's subject claim, when present.
	Subject string
	// ExpiresAt is the token's expiry claim; zero when absent.
	ExpiresAt time.Time
}

// InspectToken decodes the token's claims without verifying its signature.
// Non-JWT tokens yield a zero-valued TokenInfo.
func InspectToken(token string) *TokenInfo {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return &TokenInfo{}
	}

	info := &TokenInfo{IsJWT: true}

	if subject, err := claims.GetSubject(); err == nil {
		info.Subject = subject
	}

	if expiry, err := claims.GetExpirationTime(); err == nil && expiry != nil {
		info.ExpiresAt = expiry.Time
	}

	return info
}

// Expired reports whether the token carries an expiry claim in the past.
func (i *TokenInfo) Expired(now time.Time) bool {
	return i.IsJWT && !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}
