package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDirName is the reserved subdirectory of the per-user config
// directory under which every project's secrets directory lives. The
// original tooling namespaces by language ("rust-devsecrets"), so the Go
// implementation does the same.
const ConfigDirName = "go-devsecrets"

// DefaultConfigRoot resolves the per-user configuration directory that
// the devsecrets root lives under.
//
// The DEVSECRETS_CONFIG_DIR environment variable overrides the platform
// default, which keeps tests and unusual setups away from real user
// state. Returns ErrNoConfigDir when the platform has no concept of a
// user config directory.
func DefaultConfigRoot() (string, error) {
	if dir := os.Getenv("DEVSECRETS_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return dir, nil
}

// RootDir is the per-user directory holding all projects' secrets
// directories.
type RootDir struct {
	path string
}

// OpenRoot opens the devsecrets root under configRoot without creating
// anything.
//
// Returns ErrRootNotFound if the root has not been created yet, and
// ErrNotADirectory if a non-directory occupies the reserved path.
func OpenRoot(configRoot string) (*RootDir, error) {
	rootPath := filepath.Join(configRoot, ConfigDirName)

	info, err := os.Stat(rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, rootPath)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", rootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, rootPath)
	}
	return &RootDir{path: rootPath}, nil
}

// EnsureRoot opens the devsecrets root under configRoot, creating it and
// any missing ancestors on first use. Idempotent.
func EnsureRoot(configRoot string) (*RootDir, error) {
	rootPath := filepath.Join(configRoot, ConfigDirName)

	info, err := os.Stat(rootPath)
	if err == nil {
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotADirectory, rootPath)
		}
		return &RootDir{path: rootPath}, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat %s: %w", rootPath, err)
	}

	if err := os.MkdirAll(rootPath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", rootPath, err)
	}
	return &RootDir{path: rootPath}, nil
}

// Path returns the absolute path of the root directory.
func (r *RootDir) Path() string {
	return r.path
}

// Child looks up the secrets directory for id without creating it.
//
// Returns ErrChildNotFound if the project has never been initialized on
// this machine, and ErrNotADirectory if a non-directory occupies the
// child path.
func (r *RootDir) Child(id ID) (*ChildDir, error) {
	childPath := filepath.Join(r.path, id.String())

	info, err := os.Stat(childPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrChildNotFound, childPath)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", childPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, childPath)
	}
	return &ChildDir{path: childPath}, nil
}

// EnsureChild returns the secrets directory for id, creating it on first
// use. Creating an already-existing child is not an error, so two
// processes racing to initialize the same project both succeed.
func (r *RootDir) EnsureChild(id ID) (*ChildDir, error) {
	childPath := filepath.Join(r.path, id.String())

	if info, err := os.Stat(childPath); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, childPath)
	}
	if err := os.MkdirAll(childPath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", childPath, err)
	}
	return &ChildDir{path: childPath}, nil
}

// ChildDir is a single project's secrets directory, keyed by its ID
// under the root directory.
type ChildDir struct {
	path string
}

// Path returns the absolute path of the secrets directory.
func (c *ChildDir) Path() string {
	return c.path
}
