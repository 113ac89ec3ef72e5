package devsecrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/totara-dev/devsecrets/core"
)

// DevSecrets reads files inside one project's secrets directory.
//
// It holds nothing but the directory binding: every read re-resolves and
// re-validates its target path, and no contents are cached. The API is
// strictly read-only; provisioning secrets is a deliberate out-of-band
// action (the devsecrets CLI prints the directory to write into).
type DevSecrets struct {
	dir *core.ChildDir
}

// FromID opens the secrets directory for id under the default per-user
// config root.
//
// Returns ErrNotInitialized if the root or the project's directory does
// not exist yet; that is the expected state on a machine where
// "devsecrets init" has not been run for this project.
func FromID(id core.ID) (*DevSecrets, error) {
	configRoot, err := core.DefaultConfigRoot()
	if err != nil {
		return nil, err
	}
	return FromIDAt(configRoot, id)
}

// FromIDAt is like FromID but resolves the secrets directory under an
// explicit config root instead of the platform default. Tests use this
// to stay inside a temporary directory.
func FromIDAt(configRoot string, id core.ID) (*DevSecrets, error) {
	root, err := core.OpenRoot(configRoot)
	if err != nil {
		if core.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotInitialized, id)
		}
		return nil, err
	}

	child, err := root.Child(id)
	if err != nil {
		if core.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotInitialized, id)
		}
		return nil, err
	}

	return &DevSecrets{dir: child}, nil
}

// Path returns the absolute path of the secrets directory.
func (d *DevSecrets) Path() string {
	return d.dir.Path()
}

// Resolve validates rel and returns the absolute path it names inside
// the secrets directory.
//
// The path must be relative and every component must be a plain name:
// no "..", no ".", no empty segments, no volume prefix. This check is
// the sole defense against a secret name escaping the directory, so it
// runs on the string alone, before any filesystem call.
func (d *DevSecrets) Resolve(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("%w: path is empty", ErrInvalidRelativePath)
	}
	if filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", fmt.Errorf("%w: %q must not be absolute", ErrInvalidRelativePath, rel)
	}
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		switch segment {
		case "", ".", "..":
			return "", fmt.Errorf("%w: %q has a non-plain component", ErrInvalidRelativePath, rel)
		}
	}
	return filepath.Join(d.dir.Path(), filepath.FromSlash(rel)), nil
}

// Reader opens the secret at rel for reading. The caller must close the
// returned reader.
func (d *DevSecrets) Reader(rel string) (io.ReadCloser, error) {
	fullPath, err := d.Resolve(rel)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileAccess, rel, err)
	}
	return f, nil
}

// ReadBytes returns the raw contents of the secret at rel.
func (d *DevSecrets) ReadBytes(rel string) ([]byte, error) {
	fullPath, err := d.Resolve(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileAccess, rel, err)
	}
	return data, nil
}

// ReadString returns the contents of the secret at rel as a string.
// Returns ErrParse (not ErrFileAccess) if the contents are not valid
// UTF-8.
func (d *DevSecrets) ReadString(rel string) (string, error) {
	data, err := d.ReadBytes(rel)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrParse, rel)
	}
	return string(data), nil
}

// ReadInto decodes the secret at rel into v using format.
//
// The path's final extension must match format.Extension() exactly
// (case-sensitive); a mismatch fails with ErrInvalidExtension before any
// I/O happens. Decode failures are wrapped in ErrParse with the
// underlying cause preserved.
func (d *DevSecrets) ReadInto(rel string, format Format, v any) error {
	if err := checkExtension(rel, format.Extension()); err != nil {
		return err
	}
	r, err := d.Reader(rel)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := format.Decode(r, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParse, rel, err)
	}
	return nil
}

// Read decodes the secret at rel into a value of type T using format.
// It is a convenience wrapper around ReadInto.
func Read[T any](d *DevSecrets, rel string, format Format) (T, error) {
	var v T
	if err := d.ReadInto(rel, format, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// checkExtension compares only the final suffix of rel, case-sensitively.
// "a.tar.json" matches "json"; "a.JSON" does not.
func checkExtension(rel, want string) error {
	got := strings.TrimPrefix(filepath.Ext(rel), ".")
	if got != want {
		return fmt.Errorf("%w: %q must have a .%s extension", ErrInvalidExtension, rel, want)
	}
	return nil
}
