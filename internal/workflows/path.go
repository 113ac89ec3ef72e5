package workflows

import (
	"context"
	"fmt"

	"github.com/totara-dev/devsecrets"
	"github.com/totara-dev/devsecrets/core"
)

// PathOptions configures the path workflow.
type PathOptions struct {
	// ManifestPath and Package select the project; see InitOptions.
	ManifestPath string
	Package      string

	// ConfigRoot overrides the per-user config directory.
	ConfigRoot string
}

// PathResult contains the outcome of a path lookup.
type PathResult struct {
	// ID is the project's devsecrets ID read from the sidecar file.
	ID core.ID

	// SecretsDir is the project's existing secrets directory.
	SecretsDir string
}

// Path looks up a project's secrets directory without creating anything.
//
// Returns devsecrets.ErrNotInitialized when the sidecar file, the root
// directory, or the child directory does not exist — the normal state on
// a machine where init has not been run. Any other failure is a genuine
// error and is reported as such.
func Path(ctx context.Context, opts PathOptions) (*PathResult, error) {
	manifestDir, err := resolveManifestDir(ctx, opts.ManifestPath, opts.Package)
	if err != nil {
		return nil, err
	}

	id, err := core.ReadProjectID(manifestDir)
	if err != nil {
		if core.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no %s in %s", devsecrets.ErrNotInitialized, core.IDFileName, manifestDir)
		}
		return nil, err
	}

	configRoot, err := resolveConfigRoot(opts.ConfigRoot)
	if err != nil {
		return nil, err
	}

	secrets, err := devsecrets.FromIDAt(configRoot, id)
	if err != nil {
		return nil, err
	}

	return &PathResult{
		ID:         id,
		SecretsDir: secrets.Path(),
	}, nil
}
