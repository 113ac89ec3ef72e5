package workflows

import (
	"context"
	"errors"

	"github.com/totara-dev/devsecrets/core"
	"github.com/totara-dev/devsecrets/internal/registry"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// ConfigRoot overrides the per-user config directory.
	ConfigRoot string
}

// ListResult contains the registered projects on this machine.
type ListResult struct {
	// RootDir is the devsecrets root path, empty if it does not exist.
	RootDir string

	// Projects are the registered projects, sorted by name.
	Projects []registry.Entry
}

// List reports every project registered on this machine.
//
// A machine where devsecrets has never been initialized yields an empty
// result, not an error.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	configRoot, err := resolveConfigRoot(opts.ConfigRoot)
	if err != nil {
		return nil, err
	}

	root, err := core.OpenRoot(configRoot)
	if err != nil {
		if errors.Is(err, core.ErrRootNotFound) {
			return &ListResult{}, nil
		}
		return nil, err
	}

	reg, err := registry.Load(root)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		RootDir:  root.Path(),
		Projects: reg.Sorted(),
	}, nil
}
