package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IDFileName is the fixed name of the ID sidecar file stored next to a
// project's manifest. The name matches the original devsecrets tooling so
// a project can be shared across implementations.
const IDFileName = ".devsecrets_id.txt"

// ReadProjectID reads the ID sidecar file in manifestDir.
//
// Returns ErrIDNotFound if the file does not exist. Returns ErrCorruptID
// if the file exists but does not contain a canonical UUID string; a
// corrupt file is never overwritten or repaired.
func ReadProjectID(manifestDir string) (ID, error) {
	idFile := filepath.Join(manifestDir, IDFileName)

	data, err := os.ReadFile(idFile)
	if err != nil {
		if os.IsNotExist(err) {
			return ID{}, fmt.Errorf("%w: %s", ErrIDNotFound, idFile)
		}
		return ID{}, fmt.Errorf("failed to read %s: %w", idFile, err)
	}

	// Editors routinely add a final newline; anything beyond that is
	// treated as corruption.
	contents := strings.TrimSuffix(string(data), "\n")
	contents = strings.TrimSuffix(contents, "\r")

	id, err := ParseID(contents)
	if err != nil {
		return ID{}, fmt.Errorf("invalid ID in %s: %w", idFile, err)
	}
	return id, nil
}

// EnsureProjectID returns the project's ID, generating and writing a new
// sidecar file if none exists.
//
// The write happens only on the not-found path; an existing valid file is
// never rewritten, so the ID is stable across runs. A corrupt existing
// file fails with ErrCorruptID rather than being replaced.
func EnsureProjectID(manifestDir string) (ID, error) {
	id, err := ReadProjectID(manifestDir)
	if err == nil {
		return id, nil
	}
	if !IsNotFound(err) {
		return ID{}, err
	}

	idFile := filepath.Join(manifestDir, IDFileName)
	newID := NewID()
	if err := os.WriteFile(idFile, []byte(newID.String()), 0644); err != nil {
		return ID{}, fmt.Errorf("failed to write %s: %w", idFile, err)
	}
	return newID, nil
}
