package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/bookwise/bookwise-cli/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// BaseURL is the base URL of the BookWise identity service.
	BaseURL string `mapstructure:"base_url"`
	// SessionFile is the path to the file holding the persisted bearer token.
	SessionFile string `mapstructure:"session_file"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the timeout for identity service requests (e.g., "30s", "1m").
	RequestTimeout string `mapstructure:"request_timeout"`
	// ResendCooldown is how long the resend action stays locked after a code is sent.
	ResendCooldown string `mapstructure:"resend_cooldown"`
	// RedirectGracePeriod is the pause between a successful verification
	// and the redirect to the login screen.
	RedirectGracePeriod string `mapstructure:"redirect_grace_period"`
	// RequestsPerSecond caps the outgoing request rate towards the identity service.
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout duration.
	ParsedRequestTimeout time.Duration
	// ParsedResendCooldown is the parsed resend cooldown duration.
	ParsedResendCooldown time.Duration
	// ParsedRedirectGracePeriod is the parsed redirect grace period duration.
	ParsedRedirectGracePeriod time.Duration
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".bookwise-cli.yaml"

	// DefaultSessionFilename is the default name of the session file.
	DefaultSessionFilename = ".bookwise-cli.session.yaml"

	// DefaultBaseURL is the base URL of the BookWise identity service.
	DefaultBaseURL = "https://api.bookwise.app"

	// DefaultLogLevel is the logging level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is the request timeout used when none is configured.
	DefaultRequestTimeout = "60s"

	// DefaultResendCooldown matches the verification screen's 60-second resend lock.
	DefaultResendCooldown = "60s"

	// DefaultRedirectGracePeriod is the pause shown with the success
	// acknowledgment before redirecting to login.
	DefaultRedirectGracePeriod = "3s"

	// DefaultRequestsPerSecond is the default outgoing request rate cap.
	DefaultRequestsPerSecond = 5

	// DefaultMaxLogLength is the default maximum size (in bytes) for logged payloads.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrEmptyBaseURL indicates that the identity service base URL is missing.
	ErrEmptyBaseURL = errors.New("base URL cannot be empty")
	// ErrInvalidBaseURL indicates that the identity service base URL is not a valid URL.
	ErrInvalidBaseURL = errors.New("invalid base URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidResendCooldown indicates that the resend cooldown is invalid.
	ErrInvalidResendCooldown = errors.New("resend_cooldown must be positive")
	// ErrInvalidRedirectGracePeriod indicates that the redirect grace period is invalid.
	ErrInvalidRedirectGracePeriod = errors.New("redirect_grace_period must be positive")
	// ErrInvalidRequestsPerSecond indicates that the request rate cap is invalid.
	ErrInvalidRequestsPerSecond = errors.New("requests_per_second must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing file is not an error: defaults cover every key,
// so the tool works out of the box against the production service.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	viper.SetDefault("base_url", DefaultBaseURL)
	viper.SetDefault("session_file", DefaultSessionFilename)
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("resend_cooldown", DefaultResendCooldown)
	viper.SetDefault("redirect_grace_period", DefaultRedirectGracePeriod)
	viper.SetDefault("requests_per_second", DefaultRequestsPerSecond)

	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return ErrEmptyBaseURL
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	cfg.BaseURL = baseURL

	if strings.TrimSpace(cfg.SessionFile) == "" {
		cfg.SessionFile = DefaultSessionFilename
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedResendCooldown, err = time.ParseDuration(cfg.ResendCooldown)
	if err != nil {
		return fmt.Errorf("failed to parse resend cooldown: %w", err)
	}

	if cfg.ParsedResendCooldown <= 0 {
		return ErrInvalidResendCooldown
	}

	cfg.ParsedRedirectGracePeriod, err = time.ParseDuration(cfg.RedirectGracePeriod)
	if err != nil {
		return fmt.Errorf("failed to parse redirect grace period: %w", err)
	}

	if cfg.ParsedRedirectGracePeriod <= 0 {
		return ErrInvalidRedirectGracePeriod
	}

	if cfg.RequestsPerSecond <= 0 {
		return ErrInvalidRequestsPerSecond
	}

	return nil
}
