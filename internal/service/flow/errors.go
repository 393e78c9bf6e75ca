package flow

import "errors"

// Local precondition failures. These never reach the network:
// an operation checks them before making its identity call.
var (
	// ErrInvalidCodeFormat indicates the submitted code is not exactly four decimal digits.
	ErrInvalidCodeFormat = errors.New("enter a 4-digit code")
	// ErrAllFieldsRequired indicates a required password field was left empty.
	ErrAllFieldsRequired = errors.New("all fields required")
	// ErrPasswordsDoNotMatch indicates the password confirmation differs from the password.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	// ErrVerificationRequired indicates a reset was attempted without a verified code in the session.
	ErrVerificationRequired = errors.New("verification required")
	// ErrVerificationInterrupted indicates the verification screen was entered
	// without a pending identifier in the session.
	ErrVerificationInterrupted = errors.New("verification process interrupted")
)
