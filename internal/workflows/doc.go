// Package workflows provides high-level orchestration for devsecrets
// commands.
//
// Workflows coordinate the core, registry, and workspace packages to
// implement complete user-facing features, independent of CLI concerns
// like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd layer should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else: resolving which project to operate
// on (explicit --manifest-path or discovery through the Go toolchain),
// reading or creating the ID sidecar, and the directory lifecycle.
//
// # Available Workflows
//
//   - Init: ensures the sidecar ID and secrets directory exist
//   - Path: looks up the secrets directory without creating it
//   - List: reports every project registered on this machine
//   - Generate: embeds the project ID into a Go source file
//
// # Error Handling
//
// Workflows return typed errors, allowing the CLI layer to provide
// appropriate user-facing messages without string matching. In
// particular, errors.Is(err, devsecrets.ErrNotInitialized) is the
// ordinary first-run state of Path and must not be presented as a
// failure.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first
// parameter. Discovery shells out to the Go toolchain, and the context
// bounds those subprocesses.
package workflows
