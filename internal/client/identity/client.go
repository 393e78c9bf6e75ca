package identity

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/bookwise/bookwise-cli/internal/config"
	http_transport "github.com/bookwise/bookwise-cli/internal/transport/http"
	"github.com/bookwise/bookwise-cli/internal/utils"
	"github.com/bookwise/bookwise-cli/internal/version"
)

// Client defines the interface for interacting with the BookWise identity service.
type Client interface {
	// Login exchanges an identifier and password for a bearer token.
	Login(ctx context.Context, identifier, password string) (string, error)
	// Register creates an account and returns the token and pending identifier.
	Register(ctx context.Context, profile *Profile) (*RegisterResult, error)
	// SendCode asks the service to send a one-time code to the identifier.
	SendCode(ctx context.Context, identifier string, usage Usage) error
	// VerifyCode submits a one-time code for the identifier.
	VerifyCode(ctx context.Context, identifier, code string) error
	// ResetPassword submits a new password together with the verified code.
	ResetPassword(ctx context.Context, identifier, code, newPassword, confirmPassword string) (*ResetOutcome, error)
	// GetBaseURL returns the base URL of the identity service.
	GetBaseURL() string
}

// ClientImpl implements the Client interface for interacting with the BookWise identity service.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

const (
	// authLoginURI is the URI path for the login endpoint.
	authLoginURI = "api/auth/login"
	// authRegisterURI is the URI path for the registration endpoint.
	authRegisterURI = "api/auth/register"
	// authSendCodeURI is the URI path for the send-code endpoint.
	authSendCodeURI = "api/auth/send-code"
	// authVerifyURI is the URI path for the verification endpoint.
	authVerifyURI = "api/auth/verify"
	// authForgetPasswordURI is the URI path for the password reset endpoint.
	authForgetPasswordURI = "api/auth/forget-password"
)

// Fixed per-operation fallback messages, used when the service
// provides no message of its own.
const (
	loginFallbackMessage    = "Login failed"
	registerFallbackMessage = "Registration failed."
	sendCodeFallbackMessage = "Failed to resend code."
	verifyFallbackMessage   = "Invalid code, please try again."
	resetFallbackMessage    = "Reset failed."
)

// NewClient creates and returns a new instance of ClientImpl.
// The token source feeds the Authorization header once a login or
// registration has produced a bearer token; pass nil for an
// unauthenticated client.
func NewClient(cfg *config.Config, tokenSource http_transport.TokenSource) (Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	requestsPerSecond := cfg.RequestsPerSecond
	if requestsPerSecond <= 0 {
		requestsPerSecond = config.DefaultRequestsPerSecond
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	// Build the transport chain inside out: logging closest to the wire,
	// throttling above it, then the header injectors.
	transport := http_transport.NewLogTransport(http.DefaultTransport, 0)
	transport = http_transport.NewThrottleTransport(transport, requestsPerSecond)
	transport = http_transport.NewUserAgentInjector(
		transport,
		utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent+"/"+version.Short()))
	transport = http_transport.NewRequestIDInjector(transport)
	transport = http_transport.NewBearerInjector(transport, tokenSource)

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}

	return &ClientImpl{
		cfg:        cfg,
		baseURL:    baseURL.String(),
		httpClient: httpClient,
	}, nil
}

// Login exchanges an identifier and password for a bearer token.
func (c *ClientImpl) Login(ctx context.Context, identifier, password string) (string, error) {
	payload := &loginRequest{
		Phone:    identifier,
		Password: password,
	}

	result, err := postJSON[loginResponse](c, ctx, authLoginURI, payload, loginFallbackMessage)
	if err != nil {
		return "", err
	}

	return result.Token, nil
}

// Register creates an account and returns the token and pending identifier.
// The service echoes the phone number back; if it does not, the submitted
// one is used so the verification flow always has an identifier.
func (c *ClientImpl) Register(ctx context.Context, profile *Profile) (*RegisterResult, error) {
	result, err := postJSON[registerResponse](c, ctx, authRegisterURI, profile, registerFallbackMessage)
	if err != nil {
		return nil, err
	}

	identifier := result.Phone
	if identifier == "" {
		identifier = profile.Phone
	}

	return &RegisterResult{
		Token:      result.Token,
		Identifier: identifier,
	}, nil
}

// SendCode asks the service to send a one-time code to the identifier.
func (c *ClientImpl) SendCode(ctx context.Context, identifier string, usage Usage) error {
	payload := &sendCodeRequest{
		Phone: identifier,
		Usage: usage,
	}

	_, err := postJSON[struct{}](c, ctx, authSendCodeURI, payload, sendCodeFallbackMessage)

	return err
}

// VerifyCode submits a one-time code for the identifier.
func (c *ClientImpl) VerifyCode(ctx context.Context, identifier, code string) error {
	payload := &verifyCodeRequest{
		Phone: identifier,
		Code:  code,
	}

	_, err := postJSON[struct{}](c, ctx, authVerifyURI, payload, verifyFallbackMessage)

	return err
}

// ResetPassword submits a new password together with the verified code.
// The returned outcome carries the service's loosely typed success marker;
// the flow controller branches on ResetOutcome.Explicit.
func (c *ClientImpl) ResetPassword(
	ctx context.Context,
	identifier, code, newPassword, confirmPassword string,
) (*ResetOutcome, error) {
	payload := &resetPasswordRequest{
		Phone:                   identifier,
		Code:                    code,
		NewPassword:             newPassword,
		NewPasswordConfirmation: confirmPassword,
	}

	return postJSON[ResetOutcome](c, ctx, authForgetPasswordURI, payload, resetFallbackMessage)
}

// GetBaseURL returns the base URL of the identity service.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func postJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	uri string,
	payload any,
	fallbackMessage string,
) (*T, error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, &Error{Kind: KindServer, Message: fallbackMessage, cause: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Kind: KindServer, Message: fallbackMessage, cause: err}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindServer, Message: fallbackMessage, cause: err}
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		// No response at all: the collaborator is unreachable.
		return nil, networkError(fallbackMessage, err)
	}

	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &Error{
			Kind:       KindServer,
			Message:    fallbackMessage,
			StatusCode: response.StatusCode,
			cause:      err,
		}
	}

	switch {
	case response.StatusCode == http.StatusOK || response.StatusCode == http.StatusCreated:
		var result T
		if len(responseBody) > 0 {
			if err = json.Unmarshal(responseBody, &result); err != nil {
				return nil, &Error{
					Kind:       KindServer,
					Message:    fallbackMessage,
					StatusCode: response.StatusCode,
					cause:      err,
				}
			}
		}

		return &result, nil

	case response.StatusCode >= http.StatusBadRequest && response.StatusCode < http.StatusInternalServerError:
		return nil, decodeRejection(responseBody, response.StatusCode, fallbackMessage)

	default:
		return nil, &Error{
			Kind:       KindServer,
			Message:    extractMessage(responseBody, fallbackMessage),
			StatusCode: response.StatusCode,
		}
	}
}

// decodeRejection turns a 4xx body into a KindValidation error,
// preferring the service's message and field-level details.
func decodeRejection(body []byte, statusCode int, fallbackMessage string) *Error {
	var rejection errorResponse

	// A malformed 4xx body still yields a validation error,
	// just without the service's wording.
	_ = json.Unmarshal(body, &rejection)

	message := rejection.Message
	if message == "" {
		message = fallbackMessage
	}

	return &Error{
		Kind:       KindValidation,
		Message:    message,
		StatusCode: statusCode,
		Fields:     rejection.Errors,
	}
}

// extractMessage pulls the service's message out of a body, if present.
func extractMessage(body []byte, fallbackMessage string) string {
	var rejection errorResponse
	if err := json.Unmarshal(body, &rejection); err == nil && rejection.Message != "" {
		return rejection.Message
	}

	return fallbackMessage
}
