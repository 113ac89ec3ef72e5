package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadProjectID_Absent(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadProjectID(dir)
	if !errors.Is(err, ErrIDNotFound) {
		t.Fatalf("Expected ErrIDNotFound, got: %v", err)
	}
	if errors.Is(err, ErrCorruptID) {
		t.Error("Absence must not be reported as corruption")
	}
}

func TestReadProjectID_Corrupt(t *testing.T) {
	dir := t.TempDir()
	writeSidecar(t, dir, "not-a-uuid")

	_, err := ReadProjectID(dir)
	if !errors.Is(err, ErrCorruptID) {
		t.Fatalf("Expected ErrCorruptID, got: %v", err)
	}
}

func TestReadProjectID_TrailingNewline(t *testing.T) {
	dir := t.TempDir()
	writeSidecar(t, dir, "6ba7b810-9dad-11d1-80b4-00c04fd430c8\n")

	id, err := ReadProjectID(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if id.String() != "6ba7b810-9dad-11d1-80b4-00c04fd430c8" {
		t.Errorf("Unexpected ID: %q", id)
	}
}

func TestEnsureProjectID_CreatesSidecar(t *testing.T) {
	dir := t.TempDir()

	id, err := EnsureProjectID(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, IDFileName))
	if err != nil {
		t.Fatalf("Expected sidecar file to exist: %v", err)
	}
	if string(data) != id.String() {
		t.Errorf("Expected file to contain exactly %q, got: %q", id, string(data))
	}
}

func TestEnsureProjectID_Idempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := EnsureProjectID(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Make the file read-only; a second call must not attempt a rewrite.
	sidecar := filepath.Join(dir, IDFileName)
	if err := os.Chmod(sidecar, 0400); err != nil {
		t.Fatalf("Failed to chmod sidecar: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(sidecar, 0644) })

	second, err := EnsureProjectID(dir)
	if err != nil {
		t.Fatalf("Expected second call to succeed without writing, got: %v", err)
	}
	if first != second {
		t.Errorf("Expected stable ID, got %q then %q", first, second)
	}
}

func TestEnsureProjectID_NeverRegeneratesCorrupt(t *testing.T) {
	dir := t.TempDir()
	writeSidecar(t, dir, "not-a-uuid")

	_, err := EnsureProjectID(dir)
	if !errors.Is(err, ErrCorruptID) {
		t.Fatalf("Expected ErrCorruptID, got: %v", err)
	}

	// The corrupt file must be left exactly as it was.
	data, err := os.ReadFile(filepath.Join(dir, IDFileName))
	if err != nil {
		t.Fatalf("Failed to read sidecar: %v", err)
	}
	if string(data) != "not-a-uuid" {
		t.Errorf("Corrupt sidecar was modified: %q", string(data))
	}
}

func writeSidecar(t *testing.T, dir, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, IDFileName), []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to create sidecar file: %v", err)
	}
}
