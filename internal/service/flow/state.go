package flow

// State is a position in the authentication flow.
type State int

const (
	// StateAnonymousIdle is the resting state with no flow in progress.
	StateAnonymousIdle State = iota
	// StateAuthenticating means a login call is in flight.
	StateAuthenticating
	// StateRegistering means the user is on the registration step.
	StateRegistering
	// StateAwaitingVerification means a one-time code has been sent and not yet accepted.
	StateAwaitingVerification
	// StateVerified means the code was accepted; the grace-period redirect is pending.
	StateVerified
	// StateAwaitingReset means the reset screen is active with a verified code on hand.
	StateAwaitingReset
	// StateResetComplete is the terminal state of the forgot-password path.
	StateResetComplete
	// StateAuthenticated is the terminal state of the login and signup paths.
	StateAuthenticated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAnonymousIdle:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateRegistering:
		return "registering"
	case StateAwaitingVerification:
		return "awaiting verification"
	case StateVerified:
		return "verified"
	case StateAwaitingReset:
		return "awaiting reset"
	case StateResetComplete:
		return "reset complete"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
