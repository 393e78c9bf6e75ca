package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bookwise/bookwise-cli/internal/client/identity"
	"github.com/bookwise/bookwise-cli/internal/config"
	"github.com/bookwise/bookwise-cli/internal/logger"
	"github.com/bookwise/bookwise-cli/internal/otp"
	"github.com/bookwise/bookwise-cli/internal/session"
)

// Controller drives the authentication flows.
type Controller interface {
	// Login runs the login path for the identifier.
	Login(ctx context.Context, identifier, password string) Outcome
	// Register runs the signup path for the profile.
	Register(ctx context.Context, profile *identity.Profile) Outcome
	// SubmitCode submits a one-time code for the identifier.
	SubmitCode(ctx context.Context, identifier, digits string) Outcome
	// ResendCode requests a fresh one-time code, gated by the resend timer.
	ResendCode(ctx context.Context, identifier string) Outcome
	// ResetPassword completes the forgot-password path with a new password.
	ResetPassword(ctx context.Context, newPassword, confirmPassword string) Outcome
	// RequestReset starts the forgot-password path by sending a reset code.
	RequestReset(ctx context.Context, identifier string) Outcome
	// EnterVerification is the verification screen's entry guard.
	EnterVerification() Outcome
	// EnterReset is the reset screen's entry guard.
	EnterReset() Outcome
	// Logout clears the session.
	Logout(ctx context.Context) Outcome
	// State returns the machine's current state.
	State() State
	// Timer returns the resend countdown.
	Timer() *otp.Timer
	// Entry returns the verification screen's digit entry.
	Entry() *CodeEntry
	// Close cancels any pending delayed navigation.
	Close()
}

// ControllerImpl implements the Controller interface.
type ControllerImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// store is the session store; the controller is its only writer.
	store *session.Store
	// identityClient talks to the remote identity service.
	identityClient identity.Client
	// timer is the resend countdown.
	timer *otp.Timer
	// entry is the verification screen's digit entry.
	entry *CodeEntry
	// navigate receives delayed navigation signals; may be nil.
	navigate NavigationHandler

	// mu guards state and redirectTimer. Operations are event-driven and
	// effectively serial, but a late network completion or the grace-period
	// callback may land after the user has moved on and must not race.
	mu sync.Mutex
	// state is the machine's current position.
	state State
	// redirectTimer is the single pending grace-period redirect, if any.
	redirectTimer *time.Timer
}

// Fixed user-facing messages. Service-provided messages take
// precedence; these cover local outcomes and silent failures.
const (
	messageLoggedIn              = "Logged in successfully"
	messageRegistered            = "Registration successful!"
	messageVerified              = "Verification successful! You will be redirected to the login page shortly."
	messageCodeResent            = "Code resent!"
	messageCodeSent              = "Reset code sent. Check your messages."
	messageResetDone             = "Password reset successfully."
	messageLoggedOut             = "Logged out."
	messageVerificationGuard     = "Verification process interrupted. Please start again."
	messageResetGuard            = "Missing OTP verification. Please verify again."
	messageResendLockedTemplate  = "Resend available in %d seconds."
	messageEnterCode             = "Please enter a 4-digit code."
	messageAllFieldsRequired     = "Please enter all fields."
	messagePasswordsDoNotMatch   = "Passwords do not match."
	messageVerificationRequired  = "Verification required. Please verify your code first."
	messageTokenMissingOnSuccess = "Login failed"
)

// NewController creates the flow controller. The navigation handler
// receives the delayed redirect after a successful verification; it may be
// nil when the caller polls outcomes instead.
func NewController(
	cfg *config.Config,
	store *session.Store,
	identityClient identity.Client,
	navigate NavigationHandler,
) *ControllerImpl {
	initialState := StateAnonymousIdle
	if store.Status() == session.StatusAuthenticated {
		initialState = StateAuthenticated
	}

	return &ControllerImpl{
		cfg:            cfg,
		store:          store,
		identityClient: identityClient,
		timer:          otp.NewTimer(),
		entry:          NewCodeEntry(),
		navigate:       navigate,
		state:          initialState,
	}
}

// State returns the machine's current state.
func (c *ControllerImpl) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Timer returns the resend countdown.
func (c *ControllerImpl) Timer() *otp.Timer {
	return c.timer
}

// Entry returns the verification screen's digit entry.
func (c *ControllerImpl) Entry() *CodeEntry {
	return c.entry
}

// Login runs the login path: AnonymousIdle -> Authenticating ->
// Authenticated with a home redirect, or back to AnonymousIdle
// carrying the failure message.
func (c *ControllerImpl) Login(ctx context.Context, identifier, password string) Outcome {
	c.setState(StateAuthenticating)
	c.store.BeginAttempt()

	token, err := c.identityClient.Login(ctx, identifier, password)
	if err != nil {
		message := userMessage(err)

		c.setState(StateAnonymousIdle)
		c.store.FailAttempt(message)
		logger.Debugf(ctx, "Login failed for %s: %v", identifier, err)

		return Outcome{Navigation: NavigateNone, Message: message, Err: err}
	}

	if err = c.store.SetAuthenticated(token); err != nil {
		// The service reported success without a usable token.
		c.setState(StateAnonymousIdle)
		c.store.FailAttempt(messageTokenMissingOnSuccess)

		return Outcome{Navigation: NavigateNone, Message: messageTokenMissingOnSuccess, Err: err}
	}

	c.setState(StateAuthenticated)
	logger.Infof(ctx, "Authenticated as %s", identifier)

	return Outcome{Navigation: NavigateHome, Message: messageLoggedIn}
}

// Register runs the signup step. Success stores the pending identifier and
// moves to AwaitingVerification with a redirect to the verification screen;
// failure returns to Registering with the error set.
func (c *ControllerImpl) Register(ctx context.Context, profile *identity.Profile) Outcome {
	c.setState(StateRegistering)
	c.store.BeginAttempt()

	result, err := c.identityClient.Register(ctx, profile)
	if err != nil {
		message := userMessage(err)

		c.store.FailAttempt(message)
		logger.Debugf(ctx, "Registration failed for %s: %v", profile.Phone, err)

		return Outcome{Navigation: NavigateNone, Message: message, Err: err}
	}

	// Registration may issue a token right away; hold on to it so the
	// bearer header is ready once verification completes.
	if result.Token != "" {
		if err = c.store.SetAuthenticated(result.Token); err != nil {
			logger.Warnf(ctx, "Failed to persist registration token: %v", err)
		}
	}

	c.store.SetPending(result.Identifier)
	c.setState(StateAwaitingVerification)
	logger.Infof(ctx, "Registered %s, awaiting verification", result.Identifier)

	return Outcome{Navigation: NavigateVerify, Message: messageRegistered}
}

// SubmitCode submits a one-time code. The four-digit shape is checked
// locally first; a malformed code never reaches the network. Success
// records the verified code and schedules the grace-period redirect to
// login; failure stays on the verification screen with the entry intact.
func (c *ControllerImpl) SubmitCode(ctx context.Context, identifier, digits string) Outcome {
	if identifier == "" {
		return Outcome{Navigation: NavigateSignup, Message: messageVerificationGuard, Err: ErrVerificationInterrupted}
	}

	if !ValidCode(digits) {
		return Outcome{Navigation: NavigateNone, Message: messageEnterCode, Err: ErrInvalidCodeFormat}
	}

	if err := c.identityClient.VerifyCode(ctx, identifier, digits); err != nil {
		message := userMessage(err)

		c.setState(StateAwaitingVerification)
		c.store.SetError(message)
		logger.Debugf(ctx, "Code verification failed for %s: %v", identifier, err)

		// The entered digits stay: the user corrects them, the screen does not.
		return Outcome{Navigation: NavigateNone, Message: message, Err: err}
	}

	if err := c.store.SetVerified(identifier, digits); err != nil {
		c.store.SetError(messageVerificationGuard)

		return Outcome{Navigation: NavigateSignup, Message: messageVerificationGuard, Err: err}
	}

	c.setState(StateVerified)
	c.scheduleRedirect(NavigateLogin)
	logger.Infof(ctx, "Code accepted for %s", identifier)

	return Outcome{Navigation: NavigateNone, Message: messageVerified}
}

// ResendCode requests a fresh code. While the countdown runs the call is a
// no-op; afterwards a successful send clears the digit entry and restarts
// the countdown. A failed send leaves the countdown untouched.
func (c *ControllerImpl) ResendCode(ctx context.Context, identifier string) Outcome {
	if identifier == "" {
		return Outcome{Navigation: NavigateSignup, Message: messageVerificationGuard, Err: ErrVerificationInterrupted}
	}

	if !c.timer.CanResend() {
		return Outcome{
			Navigation: NavigateNone,
			Message:    fmt.Sprintf(messageResendLockedTemplate, c.timer.SecondsRemaining()),
		}
	}

	if err := c.identityClient.SendCode(ctx, identifier, identity.UsageVerify); err != nil {
		message := userMessage(err)

		c.store.SetError(message)
		logger.Debugf(ctx, "Resend failed for %s: %v", identifier, err)

		return Outcome{Navigation: NavigateNone, Message: message, Err: err}
	}

	c.entry.Clear()
	c.timer.Start(c.resendCooldownSeconds())
	logger.Infof(ctx, "Code resent to %s", identifier)

	return Outcome{Navigation: NavigateNone, Message: messageCodeResent}
}

// RequestReset starts the forgot-password path: it stores the identifier as
// pending and sends a reset code, so the verification and reset screens can
// resume without re-collecting it.
func (c *ControllerImpl) RequestReset(ctx context.Context, identifier string) Outcome {
	if err := c.identityClient.SendCode(ctx, identifier, identity.UsageReset); err != nil {
		message := userMessage(err)

		c.store.SetError(message)
		logger.Debugf(ctx, "Reset code request failed for %s: %v", identifier, err)

		return Outcome{Navigation: NavigateNone, Message: message, Err: err}
	}

	c.store.SetPending(identifier)
	c.setState(StateAwaitingVerification)
	c.timer.Start(c.resendCooldownSeconds())
	logger.Infof(ctx, "Reset code sent to %s", identifier)

	return Outcome{Navigation: NavigateVerify, Message: messageCodeSent}
}

// ResetPassword completes the forgot-password path. It requires a verified
// code in the session and matching non-empty passwords. The service's
// explicit success marker clears the pending state and stays put; any other
// success-like answer redirects to login with the pending state kept.
// That asymmetry mirrors the service's contract and is intentional.
func (c *ControllerImpl) ResetPassword(ctx context.Context, newPassword, confirmPassword string) Outcome {
	identifier := c.store.PendingIdentifier()
	code := c.store.PendingCode()

	if identifier == "" || code == "" {
		return Outcome{Navigation: NavigateVerify, Message: messageVerificationRequired, Err: ErrVerificationRequired}
	}

	if newPassword == "" || confirmPassword == "" {
		return Outcome{Navigation: NavigateNone, Message: messageAllFieldsRequired, Err: ErrAllFieldsRequired}
	}

	if newPassword != confirmPassword {
		return Outcome{Navigation: NavigateNone, Message: messagePasswordsDoNotMatch, Err: ErrPasswordsDoNotMatch}
	}

	c.setState(StateAwaitingReset)

	outcome, err := c.identityClient.ResetPassword(ctx, identifier, code, newPassword, confirmPassword)
	if err != nil {
		message := userMessage(err)

		c.store.SetError(message)
		logger.Debugf(ctx, "Password reset failed for %s: %v", identifier, err)

		return Outcome{Navigation: NavigateNone, Message: message, Err: err}
	}

	if outcome.Explicit() {
		c.store.ClearPending()
		c.setState(StateResetComplete)
		logger.Infof(ctx, "Password reset completed for %s", identifier)

		return Outcome{Navigation: NavigateNone, Message: messageResetDone}
	}

	// Success-like but not the explicit marker: report the service's
	// message and send the user to login, pending state untouched.
	message := outcome.Message
	if message == "" {
		message = messageResetDone
	}

	logger.Infof(ctx, "Password reset answered ambiguously for %s, redirecting to login", identifier)

	return Outcome{Navigation: NavigateLogin, Message: message}
}

// EnterVerification is the verification screen's entry invariant: without a
// pending identifier the screen cannot do anything, so the user goes back
// to signup. Entering the screen arms the resend countdown.
func (c *ControllerImpl) EnterVerification() Outcome {
	if c.store.PendingIdentifier() == "" {
		return Outcome{Navigation: NavigateSignup, Message: messageVerificationGuard, Err: ErrVerificationInterrupted}
	}

	c.setState(StateAwaitingVerification)
	c.entry.Clear()
	c.timer.Start(c.resendCooldownSeconds())

	return Outcome{Navigation: NavigateNone}
}

// EnterReset is the reset screen's entry invariant: both the pending
// identifier and the verified code must be present, else back to verification.
func (c *ControllerImpl) EnterReset() Outcome {
	if c.store.PendingIdentifier() == "" || c.store.PendingCode() == "" {
		return Outcome{Navigation: NavigateVerify, Message: messageResetGuard, Err: ErrVerificationRequired}
	}

	c.setState(StateAwaitingReset)

	return Outcome{Navigation: NavigateNone}
}

// Logout clears the session and returns the machine to its resting state.
func (c *ControllerImpl) Logout(ctx context.Context) Outcome {
	if err := c.store.Logout(); err != nil {
		message := err.Error()

		c.store.SetError(message)

		return Outcome{Navigation: NavigateNone, Message: message, Err: err}
	}

	c.store.ClearPending()
	c.setState(StateAnonymousIdle)
	logger.Info(ctx, "Logged out")

	return Outcome{Navigation: NavigateLogin, Message: messageLoggedOut}
}

// Close cancels any pending delayed navigation. Leaving the verification
// screen must never leave its redirect armed.
func (c *ControllerImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.redirectTimer != nil {
		c.redirectTimer.Stop()
		c.redirectTimer = nil
	}
}

func (c *ControllerImpl) setState(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = state
}

// scheduleRedirect arms the single grace-period redirect, replacing any
// previous one so two can never be pending at once.
func (c *ControllerImpl) scheduleRedirect(target Navigation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.redirectTimer != nil {
		c.redirectTimer.Stop()
	}

	gracePeriod := c.cfg.ParsedRedirectGracePeriod
	if gracePeriod <= 0 {
		gracePeriod = 3 * time.Second
	}

	c.redirectTimer = time.AfterFunc(gracePeriod, func() {
		if c.navigate != nil {
			c.navigate(target)
		}
	})
}

// resendCooldownSeconds returns the configured resend lock in whole seconds.
func (c *ControllerImpl) resendCooldownSeconds() int {
	cooldown := c.cfg.ParsedResendCooldown
	if cooldown <= 0 {
		return otp.DefaultCooldownSeconds
	}

	return int(cooldown.Seconds())
}

// userMessage extracts the user-presentable message from an operation error.
// Identity client errors already carry one; anything else falls back to the
// raw error text.
func userMessage(err error) string {
	var clientErr *identity.Error
	if errors.As(err, &clientErr) {
		return clientErr.Message
	}

	return err.Error()
}
