package flow

// Navigation is the screen an operation wants the user taken to.
type Navigation int

const (
	// NavigateNone means the current screen stays.
	NavigateNone Navigation = iota
	// NavigateHome is the landing screen after authentication.
	NavigateHome
	// NavigateLogin is the login screen.
	NavigateLogin
	// NavigateSignup is the registration screen.
	NavigateSignup
	// NavigateVerify is the one-time-code entry screen.
	NavigateVerify
)

// Route returns the navigation target's path.
func (n Navigation) Route() string {
	switch n {
	case NavigateHome:
		return "/"
	case NavigateLogin:
		return "/login"
	case NavigateSignup:
		return "/sign-up"
	case NavigateVerify:
		return "/sign-up/verify-code-signup"
	default:
		return ""
	}
}

// Outcome is what an operation reports back to the screen that triggered it.
type Outcome struct {
	// Navigation is where to take the user, if anywhere.
	Navigation Navigation
	// Message is the user-facing result: a success confirmation or an error.
	Message string
	// Err is the typed failure, nil on success. The message is already
	// user-presentable, so Err exists for branching, not display.
	Err error
}

// Failed reports whether the operation failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// NavigationHandler receives delayed navigation signals, such as the
// grace-period redirect to login after a successful verification.
type NavigationHandler func(target Navigation)
