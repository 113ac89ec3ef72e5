package core

import "errors"

// Lookup errors indicate an expected absence rather than a failure.
var (
	// ErrIDNotFound indicates the project has no devsecrets ID file yet.
	ErrIDNotFound = errors.New("devsecrets ID file does not exist")

	// ErrRootNotFound indicates the per-user devsecrets root directory
	// has not been created on this machine.
	ErrRootNotFound = errors.New("devsecrets root directory does not exist")

	// ErrChildNotFound indicates no secrets directory has been created
	// for this project ID.
	ErrChildNotFound = errors.New("project secrets directory does not exist")
)

// IsNotFound reports whether err is one of the expected-absence errors
// (ErrIDNotFound, ErrRootNotFound, ErrChildNotFound). Callers use it to
// distinguish "not initialized yet" from a genuine failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrIDNotFound) ||
		errors.Is(err, ErrRootNotFound) ||
		errors.Is(err, ErrChildNotFound)
}

// State errors indicate a condition that requires human investigation.
var (
	// ErrCorruptID indicates an ID file exists but does not contain a
	// canonical UUID. It is never auto-corrected: regenerating the ID
	// would silently orphan the project's existing secrets directory.
	ErrCorruptID = errors.New("devsecrets ID is not a valid UUID")

	// ErrNotADirectory indicates something other than a directory
	// occupies a path where a directory is required.
	ErrNotADirectory = errors.New("path exists but is not a directory")

	// ErrNoConfigDir indicates the per-user configuration directory
	// could not be determined on this platform.
	ErrNoConfigDir = errors.New("user config directory could not be determined")
)
