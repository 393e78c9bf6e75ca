package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests
	// when no versioned one is supplied.
	DefaultUserAgent = "bookwise-cli"
)
