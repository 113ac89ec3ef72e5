package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/totara-dev/devsecrets/core"
)

func newTestRoot(t *testing.T) *core.RootDir {
	t.Helper()
	root, err := core.EnsureRoot(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to ensure root: %v", err)
	}
	return root
}

func TestLoad_Absent(t *testing.T) {
	root := newTestRoot(t)

	reg, err := Load(root)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(reg.Projects) != 0 {
		t.Errorf("Expected empty registry, got: %v", reg.Projects)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	root := newTestRoot(t)
	registryPath := filepath.Join(root.Path(), FileName)
	if err := os.WriteFile(registryPath, []byte("[[[not toml"), 0644); err != nil {
		t.Fatalf("Failed to write registry: %v", err)
	}

	if _, err := Load(root); err == nil {
		t.Error("Expected an error for a corrupt registry file")
	}
}

func TestRecordSaveLoad_RoundTrip(t *testing.T) {
	root := newTestRoot(t)
	id := core.NewID()

	reg, err := Load(root)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	reg.Record(id, "myproject", "/home/dev/myproject")
	if err := Save(root, reg); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatalf("Failed to reload: %v", err)
	}
	entry, ok := loaded.Projects[id.String()]
	if !ok {
		t.Fatalf("Expected project %s in registry", id)
	}
	if entry.Name != "myproject" || entry.ManifestDir != "/home/dev/myproject" {
		t.Errorf("Unexpected entry: %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestRecord_PreservesCreatedAt(t *testing.T) {
	root := newTestRoot(t)
	id := core.NewID()

	reg, _ := Load(root)
	reg.Record(id, "proj", "/old/location")
	created := reg.Projects[id.String()].CreatedAt

	time.Sleep(10 * time.Millisecond)
	reg.Record(id, "proj", "/new/location")

	entry := reg.Projects[id.String()]
	if !entry.CreatedAt.Equal(created) {
		t.Errorf("Expected CreatedAt to be preserved, got %v then %v", created, entry.CreatedAt)
	}
	if entry.ManifestDir != "/new/location" {
		t.Errorf("Expected manifest dir to be refreshed, got: %q", entry.ManifestDir)
	}
}

func TestSorted(t *testing.T) {
	root := newTestRoot(t)

	reg, _ := Load(root)
	reg.Record(core.NewID(), "zebra", "/z")
	reg.Record(core.NewID(), "alpha", "/a")
	reg.Record(core.NewID(), "alpha", "/a2")
	// A stray non-ID key must be skipped, not fail the listing.
	reg.Projects["not-a-uuid"] = Project{Name: "junk"}

	entries := reg.Sorted()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got: %d", len(entries))
	}
	if entries[0].Name != "alpha" || entries[1].Name != "alpha" || entries[2].Name != "zebra" {
		t.Errorf("Unexpected order: %v", entries)
	}
	if entries[0].ID.String() > entries[1].ID.String() {
		t.Error("Expected same-name entries ordered by ID")
	}
}
