package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/totara-dev/devsecrets/core"
)

// FileName is the registry file kept inside the devsecrets root
// directory. It can never collide with a project directory because
// children are always named by a 36-character UUID.
const FileName = "registry.toml"

// Registry records which projects have been initialized on this machine.
// It is display-only metadata for "devsecrets list"; secret access never
// consults it, so a stale or missing registry is harmless.
type Registry struct {
	Projects map[string]Project `toml:"projects"`
}

// Project is one registered project, keyed in the registry by its ID.
type Project struct {
	Name        string    `toml:"name"`
	ManifestDir string    `toml:"manifest_dir"`
	CreatedAt   time.Time `toml:"created_at"`
}

// Load reads the registry from the root directory. A missing file yields
// an empty registry, not an error.
func Load(root *core.RootDir) (*Registry, error) {
	registryPath := filepath.Join(root.Path(), FileName)

	reg := &Registry{
		Projects: make(map[string]Project),
	}

	if _, err := os.Stat(registryPath); os.IsNotExist(err) {
		return reg, nil
	}

	if _, err := toml.DecodeFile(registryPath, reg); err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	if reg.Projects == nil {
		reg.Projects = make(map[string]Project)
	}
	return reg, nil
}

// Save writes the registry back to the root directory.
func Save(root *core.RootDir, reg *Registry) error {
	registryPath := filepath.Join(root.Path(), FileName)

	file, err := os.Create(registryPath)
	if err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(reg); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	return nil
}

// Record registers a project under id, preserving the original
// CreatedAt if the project was already registered. The manifest
// directory is refreshed so a moved project shows its current location.
func (r *Registry) Record(id core.ID, name, manifestDir string) {
	entry := Project{
		Name:        name,
		ManifestDir: manifestDir,
		CreatedAt:   time.Now().UTC(),
	}
	if existing, ok := r.Projects[id.String()]; ok {
		entry.CreatedAt = existing.CreatedAt
	}
	r.Projects[id.String()] = entry
}

// Entry is a registry row paired with its ID, for sorted listings.
type Entry struct {
	ID core.ID
	Project
}

// Sorted returns the registered projects ordered by name, then ID.
// Entries whose key is no longer a valid ID are skipped rather than
// failing the whole listing.
func (r *Registry) Sorted() []Entry {
	entries := make([]Entry, 0, len(r.Projects))
	for key, project := range r.Projects {
		id, err := core.ParseID(key)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{ID: id, Project: project})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].ID.String() < entries[j].ID.String()
	})
	return entries
}
