package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoModule indicates the working directory is not inside a Go module.
var ErrNoModule = errors.New("not inside a Go module")

// ErrPackageNotFound indicates no workspace module matched the requested
// package name.
var ErrPackageNotFound = errors.New("package not found in workspace")

// Module describes one module known to the Go toolchain. In workspace
// (go.work) mode there may be several; otherwise just the enclosing one.
type Module struct {
	Path  string `json:"Path"`
	Dir   string `json:"Dir"`
	GoMod string `json:"GoMod"`
	Main  bool   `json:"Main"`
}

// LocateManifest finds the go.mod governing dir by asking the Go
// toolchain, mirroring how the original tooling shells out to the build
// tool rather than walking directories itself.
//
// Returns ErrNoModule when dir is not inside a module.
func LocateManifest(ctx context.Context, dir string) (string, error) {
	out, err := runGo(ctx, dir, "env", "GOMOD")
	if err != nil {
		return "", err
	}

	gomod := strings.TrimSpace(string(out))
	if gomod == "" || gomod == "/dev/null" || gomod == "NUL" {
		return "", fmt.Errorf("%w: %s", ErrNoModule, dir)
	}
	return gomod, nil
}

// Modules lists the modules visible from dir via "go list -m -json".
// Under a go.work file this enumerates every workspace module.
func Modules(ctx context.Context, dir string) ([]Module, error) {
	out, err := runGo(ctx, dir, "list", "-m", "-json")
	if err != nil {
		return nil, err
	}

	modules, err := decodeModules(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("failed to parse go list output: %w", err)
	}
	return modules, nil
}

// Select returns the manifest directory to operate on.
//
// With an empty pkg it locates the module enclosing dir. Otherwise it
// matches pkg against each workspace module's full path or final path
// element, mirroring the build tool's own package selection.
func Select(ctx context.Context, dir, pkg string) (string, error) {
	if pkg == "" {
		gomod, err := LocateManifest(ctx, dir)
		if err != nil {
			return "", err
		}
		return filepath.Dir(gomod), nil
	}

	modules, err := Modules(ctx, dir)
	if err != nil {
		return "", err
	}
	m, err := findModule(modules, pkg)
	if err != nil {
		return "", err
	}
	return m.Dir, nil
}

func runGo(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("go %s failed: %s", strings.Join(args, " "), msg)
	}
	return out, nil
}

// decodeModules parses the concatenated JSON objects that
// "go list -m -json" emits, one per module.
func decodeModules(r io.Reader) ([]Module, error) {
	var modules []Module
	dec := json.NewDecoder(r)
	for {
		var m Module
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				return modules, nil
			}
			return nil, err
		}
		modules = append(modules, m)
	}
}

// findModule matches name against each module's path, or its final path
// element when no full path matches.
func findModule(modules []Module, name string) (*Module, error) {
	for i := range modules {
		if modules[i].Path == name {
			return &modules[i], nil
		}
	}
	for i := range modules {
		if filepath.Base(modules[i].Path) == name {
			return &modules[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, name)
}
