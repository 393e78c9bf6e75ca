package identity

import (
	"bytes"
	"encoding/json"
)

// Usage tells the identity service why a one-time code is being sent.
type Usage string

const (
	// UsageVerify requests a code for account verification after registration.
	UsageVerify Usage = "verify"
	// UsageReset requests a code for the forgot-password flow.
	UsageReset Usage = "reset"
)

// Profile is the registration payload.
type Profile struct {
	// Name is the display name of the new account.
	Name string `json:"name"`
	// Email is the account's email address.
	Email string `json:"email"`
	// Phone is the account's phone number; it becomes the pending identifier.
	Phone string `json:"phone"`
	// Password is the chosen password.
	Password string `json:"password"`
	// PasswordConfirmation repeats the password; equality is checked by the service.
	PasswordConfirmation string `json:"password_confirmation"`
}

// RegisterResult is the outcome of a successful registration.
type RegisterResult struct {
	// Token is the bearer token, when the service issues one at registration time.
	Token string
	// Identifier is the phone number awaiting verification.
	Identifier string
}

// ResetOutcome is the identity service's answer to a password reset.
// The service reports success through a loosely typed "success" field
// (the number 200 or the string "true"); anything else is a
// success-like answer that the flow treats differently.
type ResetOutcome struct {
	// Success is the raw success marker exactly as the service sent it.
	Success json.RawMessage `json:"success"`
	// Message is the service's human-readable outcome description.
	Message string `json:"message"`
}

// Explicit reports whether the outcome is the service's explicit success
// marker: the JSON number 200 or the JSON string "true".
// Other values, including other success-like answers, return false.
func (o *ResetOutcome) Explicit() bool {
	if o == nil || len(o.Success) == 0 {
		return false
	}

	trimmed := bytes.TrimSpace(o.Success)

	var asNumber float64
	if err := json.Unmarshal(trimmed, &asNumber); err == nil {
		return asNumber == 200
	}

	var asString string
	if err := json.Unmarshal(trimmed, &asString); err == nil {
		return asString == "true"
	}

	return false
}

// loginRequest is the wire payload for the login operation.
type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// loginResponse is the wire payload of a successful login.
type loginResponse struct {
	Token string `json:"token"`
}

// registerResponse is the wire payload of a successful registration.
type registerResponse struct {
	Token string `json:"token"`
	Phone string `json:"phone"`
}

// sendCodeRequest is the wire payload for the send-code operation.
type sendCodeRequest struct {
	Phone string `json:"phone"`
	Usage Usage  `json:"usage"`
}

// verifyCodeRequest is the wire payload for the verify operation.
type verifyCodeRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// resetPasswordRequest is the wire payload for the forget-password operation.
type resetPasswordRequest struct {
	Phone                   string `json:"phone"`
	Code                    string `json:"code"`
	NewPassword             string `json:"new_password"`
	NewPasswordConfirmation string `json:"new_password_confirmation"`
}

// errorResponse is the error body shape shared by all endpoints.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
