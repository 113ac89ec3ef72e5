// Package core implements the identity scheme and directory lifecycle
// underlying devsecrets.
//
// A project is joined to its secrets directory by a single stable key:
// a v4 UUID stored in a sidecar file (.devsecrets_id.txt) next to the
// project's go.mod. The secrets themselves live outside the repository,
// under a reserved per-user directory:
//
//	<user config dir>/go-devsecrets/<project uuid>/
//
// # Identity
//
// The ID type only ever holds the canonical lowercase hyphenated UUID
// rendering. ParseID rejects every other rendering so that an ID can be
// joined into a filesystem path without further escaping. Once written,
// a project's ID never changes; deleting the sidecar file orphans the
// existing secrets directory.
//
// # Directory lifecycle
//
// OpenRoot and Child are pure lookups: absence is reported with the
// ErrRootNotFound / ErrChildNotFound sentinels rather than by creating
// anything. EnsureRoot and EnsureChild create on demand and are
// idempotent. A non-directory occupying a reserved path is always fatal
// (ErrNotADirectory), never worked around.
//
// The config root is an explicit parameter throughout; DefaultConfigRoot
// resolves the platform convention (with a DEVSECRETS_CONFIG_DIR
// override) for callers that want the real per-user location.
package core
