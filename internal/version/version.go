// Package version exposes build metadata injected at link time.
package version

// Build metadata, overridden via -ldflags at release time.
//
//nolint:gochecknoglobals // These are link-time variables by design of the Go toolchain.
var (
	// Version is the semantic version of the binary.
	Version = "1.0.0"
	// Commit is the VCS commit the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns just the semantic version.
func Short() string {
	return Version
}

// Full returns the version together with commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
