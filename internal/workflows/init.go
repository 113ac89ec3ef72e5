package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/totara-dev/devsecrets/core"
	"github.com/totara-dev/devsecrets/internal/registry"
	"github.com/totara-dev/devsecrets/internal/workspace"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// ManifestPath is an explicit path to the project's go.mod (or its
	// directory). If empty, the project is discovered from the working
	// directory via the Go toolchain.
	ManifestPath string

	// Package selects a module within a multi-module workspace by module
	// path or final path element. Ignored when ManifestPath is set.
	Package string

	// ConfigRoot overrides the per-user config directory the secrets
	// root lives under. If empty, the platform default is used.
	ConfigRoot string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// ID is the project's devsecrets ID, freshly generated or existing.
	ID core.ID

	// ManifestDir is the directory holding the project's go.mod and ID
	// sidecar file.
	ManifestDir string

	// SecretsDir is the project's secrets directory under the root.
	SecretsDir string
}

// Init ensures a project has a devsecrets ID and a secrets directory.
//
// Every step is idempotent: an existing sidecar file is reused and
// existing directories are left alone, so running init repeatedly always
// succeeds and always yields the same paths. A sidecar file that exists
// but does not parse fails with core.ErrCorruptID and is never replaced.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	manifestDir, err := resolveManifestDir(ctx, opts.ManifestPath, opts.Package)
	if err != nil {
		return nil, err
	}

	id, err := core.EnsureProjectID(manifestDir)
	if err != nil {
		return nil, err
	}

	configRoot, err := resolveConfigRoot(opts.ConfigRoot)
	if err != nil {
		return nil, err
	}

	root, err := core.EnsureRoot(configRoot)
	if err != nil {
		return nil, err
	}

	child, err := root.EnsureChild(id)
	if err != nil {
		return nil, err
	}

	reg, err := registry.Load(root)
	if err != nil {
		return nil, err
	}
	reg.Record(id, filepath.Base(manifestDir), manifestDir)
	if err := registry.Save(root, reg); err != nil {
		return nil, err
	}

	return &InitResult{
		ID:          id,
		ManifestDir: manifestDir,
		SecretsDir:  child.Path(),
	}, nil
}

// resolveManifestDir turns the --manifest-path / --package options into
// the directory holding the project's go.mod.
func resolveManifestDir(ctx context.Context, manifestPath, pkg string) (string, error) {
	if manifestPath != "" {
		dir := manifestPath
		if filepath.Base(dir) == "go.mod" {
			dir = filepath.Dir(dir)
		}
		info, err := os.Stat(filepath.Join(dir, "go.mod"))
		if err != nil {
			return "", fmt.Errorf("no go.mod at %s: %w", dir, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("go.mod at %s is a directory", dir)
		}
		return dir, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return workspace.Select(ctx, wd, pkg)
}

func resolveConfigRoot(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return core.DefaultConfigRoot()
}
