package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-------).
	// The session file stores a bearer credential, so group and others get nothing.
	DefaultFilePermissions os.FileMode = 0o600

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	// Owner: read, write, and execute;
	// Group: read and execute;
	// Others: read and execute.
	DefaultFolderPermissions os.FileMode = 0o755
)
