package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a store backed by a file in a temporary directory.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.yaml")

	store, err := NewStore(path)
	require.NoError(t, err)

	return store, path
}

// TestNewStoreMissingFile tests that a missing session file starts the session idle.
func TestNewStoreMissingFile(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	assert.Equal(t, StatusIdle, store.Status())
	assert.Empty(t, store.Token())
	assert.Empty(t, store.PendingIdentifier())
	assert.Empty(t, store.PendingCode())
}

// TestNewStoreCorruptFile tests that an unparseable session file is an error.
func TestNewStoreCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: [\n"), 0o600))

	_, err := NewStore(path)

	require.Error(t, err)
}

// TestTokenRoundTrip tests that a persisted token survives a restart as an
// authenticated session.
func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)

	require.NoError(t, store.SetAuthenticated("bearer-token"))

	reloaded, err := NewStore(path)
	require.NoError(t, err)

	assert.Equal(t, "bearer-token", reloaded.Token())
	assert.Equal(t, StatusAuthenticated, reloaded.Status())
}

// TestSetAuthenticatedEmptyToken tests that an empty token is rejected.
func TestSetAuthenticatedEmptyToken(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	err := store.SetAuthenticated("")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Equal(t, StatusIdle, store.Status())
}

// TestStatusMirrorsToken tests that the authenticated status tracks token
// presence exactly through the attempt lifecycle.
func TestStatusMirrorsToken(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	store.BeginAttempt()
	assert.Equal(t, StatusPending, store.Status())
	assert.Empty(t, store.Token())

	store.FailAttempt("Login failed")
	assert.Equal(t, StatusFailed, store.Status())
	assert.Equal(t, "Login failed", store.LastError())

	require.NoError(t, store.SetAuthenticated("bearer-token"))
	assert.Equal(t, StatusAuthenticated, store.Status())
	assert.Empty(t, store.LastError())

	// A held token shadows later attempt bookkeeping.
	store.BeginAttempt()
	assert.Equal(t, StatusAuthenticated, store.Status())

	store.FailAttempt("transient")
	assert.Equal(t, StatusAuthenticated, store.Status())

	require.NoError(t, store.Logout())
	assert.Equal(t, StatusIdle, store.Status())
	assert.Empty(t, store.Token())
}

// TestSetVerified tests that a code is only recorded against its pending identifier.
func TestSetVerified(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pending     string
		identifier  string
		expectedErr error
	}{
		{
			name:       "matches pending identifier",
			pending:    "+15550002222",
			identifier: "+15550002222",
		},
		{
			name:        "no pending identifier",
			pending:     "",
			identifier:  "+15550002222",
			expectedErr: ErrNoPendingIdentifier,
		},
		{
			name:        "different identifier",
			pending:     "+15550002222",
			identifier:  "+15550009999",
			expectedErr: ErrIdentifierMismatch,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, _ := newTestStore(t)
			if tt.pending != "" {
				store.SetPending(tt.pending)
			}

			err := store.SetVerified(tt.identifier, "1234")

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, store.PendingCode())
			} else {
				require.NoError(t, err)
				assert.Equal(t, "1234", store.PendingCode())
			}
		})
	}
}

// TestSetPendingClearsCodeAndError tests that a new pending identifier
// drops the previous code and error.
func TestSetPendingClearsCodeAndError(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	store.SetPending("+15550002222")
	require.NoError(t, store.SetVerified("+15550002222", "1234"))
	store.SetError("stale")

	store.SetPending("+15550003333")

	assert.Equal(t, "+15550003333", store.PendingIdentifier())
	assert.Empty(t, store.PendingCode())
	assert.Empty(t, store.LastError())
}

// TestClearPending tests that clearing drops both identifier and code.
func TestClearPending(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	store.SetPending("+15550002222")
	require.NoError(t, store.SetVerified("+15550002222", "1234"))

	store.ClearPending()

	assert.Empty(t, store.PendingIdentifier())
	assert.Empty(t, store.PendingCode())
}

// TestLogoutRemovesSessionFile tests that logout deletes the persisted token.
func TestLogoutRemovesSessionFile(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, store.SetAuthenticated("bearer-token"))

	_, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, store.Logout())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// A second logout with no file present is not an error.
	require.NoError(t, store.Logout())
}

// TestPersistCreatesDirectory tests that persisting creates missing parent
// directories for the session file.
func TestPersistCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "session.yaml")

	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.SetAuthenticated("bearer-token"))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestStoreWithoutPersistence tests that an empty path disables persistence
// without affecting the in-memory state.
func TestStoreWithoutPersistence(t *testing.T) {
	t.Parallel()

	store, err := NewStore("")
	require.NoError(t, err)

	require.NoError(t, store.SetAuthenticated("bearer-token"))
	assert.Equal(t, StatusAuthenticated, store.Status())

	require.NoError(t, store.Logout())
	assert.Equal(t, StatusIdle, store.Status())
}

// TestSessionFilePermissions tests that the session file is written
// readable by the owner only.
func TestSessionFilePermissions(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, store.SetAuthenticated("bearer-token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
