// Package flow implements the authentication flow controller: the state
// machine that drives registration, one-time-code verification, login, and
// password reset against the identity service.
//
// Every user-facing operation reads and writes the session store, makes at
// most one identity call, and reports an Outcome: where to navigate, what to
// tell the user, and what failed. A failed call never advances the machine;
// it stays where it was or falls back to the state it came from.
package flow
