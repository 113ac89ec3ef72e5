package devsecrets

import (
	"errors"

	"github.com/totara-dev/devsecrets/core"
)

var (
	// ErrNotInitialized indicates no secrets directory exists for this
	// project on this machine. This is the normal first-run state, not a
	// failure: run "devsecrets init" in the project to create one.
	ErrNotInitialized = errors.New("devsecrets directory was not initialized")

	// ErrInvalidRelativePath indicates a secret path was absolute or
	// contained a non-plain component such as "..". The request is
	// rejected before any filesystem access.
	ErrInvalidRelativePath = errors.New("invalid relative path")

	// ErrInvalidExtension indicates a secret path's extension does not
	// match the requested format's extension. Checked before any read.
	ErrInvalidExtension = errors.New("invalid file extension")

	// ErrFileAccess wraps an underlying I/O failure while reading a
	// secret file; the original cause is preserved for errors.Is/As.
	ErrFileAccess = errors.New("could not access secret file")

	// ErrParse wraps a decode failure (invalid UTF-8, malformed JSON,
	// and so on); the original cause is preserved for errors.Is/As.
	ErrParse = errors.New("could not parse secret file")

	// ErrCorruptID indicates the project's ID sidecar file exists but
	// does not hold a valid UUID. Re-exported from core for callers that
	// only import this package.
	ErrCorruptID = core.ErrCorruptID
)
