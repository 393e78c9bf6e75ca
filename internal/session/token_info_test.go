package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedTestToken builds a signed JWT with the given claims. The signature
// key is irrelevant: inspection never verifies it.
func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)

	return token
}

// TestInspectTokenJWT tests claim extraction from a well-formed JWT.
func TestInspectTokenJWT(t *testing.T) {
	t.Parallel()

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedTestToken(t, jwt.MapClaims{
		"sub": "user-42",
		"exp": expiry.Unix(),
	})

	info := InspectToken(token)

	assert.True(t, info.IsJWT)
	assert.Equal(t, "user-42", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(expiry))
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(expiry.Add(time.Minute)))
}

// TestInspectTokenWithoutClaims tests a JWT carrying neither subject nor expiry.
func TestInspectTokenWithoutClaims(t *testing.T) {
	t.Parallel()

	token := signedTestToken(t, jwt.MapClaims{"scope": "none"})

	info := InspectToken(token)

	assert.True(t, info.IsJWT)
	assert.Empty(t, info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
}

// TestInspectTokenOpaque tests that non-JWT tokens yield a zero-valued info.
func TestInspectTokenOpaque(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{name: "opaque string", token: "plain-bearer-token"},
		{name: "empty", token: ""},
		{name: "two segments", token: "abc.def"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := InspectToken(tt.token)

			assert.False(t, info.IsJWT)
			assert.Empty(t, info.Subject)
			assert.False(t, info.Expired(time.Now()))
		})
	}
}
