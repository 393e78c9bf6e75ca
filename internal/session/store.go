package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/bookwise/bookwise-cli/internal/constants"
)

// Status is the derived authentication state of the session.
type Status int

const (
	// StatusIdle means no authentication attempt is active and no token is held.
	StatusIdle Status = iota
	// StatusPending means an authentication attempt is in flight.
	StatusPending
	// StatusAuthenticated means a non-empty bearer token is held.
	StatusAuthenticated
	// StatusFailed means the last authentication attempt failed.
	StatusFailed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusAuthenticated:
		return "authenticated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Static error definitions for better error handling.
var (
	// ErrNoPendingIdentifier indicates a verification operation without a pending identifier.
	ErrNoPendingIdentifier = errors.New("no pending identifier in session")
	// ErrIdentifierMismatch indicates a verification for an identifier that is not the pending one.
	ErrIdentifierMismatch = errors.New("identifier does not match pending identifier")
	// ErrEmptyToken indicates an attempt to authenticate with an empty token.
	ErrEmptyToken = errors.New("token cannot be empty")
)

// Store holds the session state. It is the single writer of that state:
// screens and commands read it, but only the flow controller mutates it,
// one operation per event. The mutex covers the odd late network
// completion writing after the user has moved on.
type Store struct {
	mu sync.Mutex

	// path is the session file location; empty disables persistence.
	path string

	token             string
	pendingIdentifier string
	pendingCode       string
	status            Status
	lastError         string
}

// sessionFile is the on-disk layout: a single durable key for the token.
type sessionFile struct {
	Token string `yaml:"token"`
}

// NewStore creates a session store backed by the given file.
// An existing file restores the persisted token, so a restart
// resumes as authenticated without a fresh login.
// A missing file simply starts the session idle.
func NewStore(path string) (*Store, error) {
	store := &Store{path: path}

	if path == "" {
		return store, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}

		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var persisted sessionFile
	if err = yaml.Unmarshal(content, &persisted); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	if persisted.Token != "" {
		store.token = persisted.Token
		store.status = StatusAuthenticated
	}

	return store, nil
}

// Token returns the current bearer token, or an empty string when logged out.
// It also satisfies the transport layer's token source interface.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

// PendingIdentifier returns the identifier awaiting verification, if any.
func (s *Store) PendingIdentifier() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pendingIdentifier
}

// PendingCode returns the last verified one-time code, if any.
func (s *Store) PendingCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pendingCode
}

// Status returns the derived authentication status.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// LastError returns the most recent user-facing error message.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastError
}

// SetPending stores the identifier awaiting verification
// and clears any previous code and error.
func (s *Store) SetPending(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingIdentifier = identifier
	s.pendingCode = ""
	s.lastError = ""
}

// SetVerified records a successfully verified code for the pending identifier.
// The identifier must match the pending one; a code is never held
// without its identifier.
func (s *Store) SetVerified(identifier, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingIdentifier == "" {
		return ErrNoPendingIdentifier
	}

	if s.pendingIdentifier != identifier {
		return fmt.Errorf("%w: have '%s', got '%s'", ErrIdentifierMismatch, s.pendingIdentifier, identifier)
	}

	s.pendingCode = code

	return nil
}

// SetAuthenticated stores a non-empty bearer token, marks the session
// authenticated, and synchronously persists the token.
func (s *Store) SetAuthenticated(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		return ErrEmptyToken
	}

	s.token = token
	s.status = StatusAuthenticated
	s.lastError = ""

	return s.persistToken()
}

// ClearPending drops the pending identifier and code,
// used after a reset completes or the flow is abandoned.
func (s *Store) ClearPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingIdentifier = ""
	s.pendingCode = ""
}

// SetError records the most recent user-facing error message.
// No other field changes.
func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = message
}

// BeginAttempt marks an authentication attempt as in flight.
// Held tokens are untouched; the pending status only shadows idle/failed.
func (s *Store) BeginAttempt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		s.status = StatusPending
	}
}

// FailAttempt marks the current authentication attempt as failed
// and records its user-facing message.
func (s *Store) FailAttempt(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = message

	if s.token == "" {
		s.status = StatusFailed
	}
}

// Logout clears the token, returns the session to idle,
// and removes the persisted token.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.status = StatusIdle

	return s.removeToken()
}

// persistToken writes the token to the session file. Callers hold the mutex.
func (s *Store) persistToken() error {
	if s.path == "" {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	content, err := yaml.Marshal(&sessionFile{Token: s.token})
	if err != nil {
		return fmt.Errorf("failed to marshal session file: %w", err)
	}

	if err = os.WriteFile(s.path, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// removeToken deletes the session file. Callers hold the mutex.
func (s *Store) removeToken() error {
	if s.path == "" {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}
