// Package registry tracks which projects have been initialized on this
// machine.
//
// The registry is a TOML file (registry.toml) stored inside the
// devsecrets root directory, mapping project IDs to their name, manifest
// location, and first-initialization time. "devsecrets init" records an
// entry and "devsecrets list" prints them.
//
// The registry is informational only: the sole join key between a
// project and its secrets remains the ID sidecar file, and reading
// secrets never touches the registry.
package registry
