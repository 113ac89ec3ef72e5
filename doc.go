// Package devsecrets gives a project's code read access to development
// secrets stored outside its repository.
//
// Secrets live under a reserved per-user directory, keyed by a UUID that
// is stored in a sidecar file next to the project's go.mod and never
// changes. The devsecrets CLI creates both (see "devsecrets init"); this
// package only reads.
//
// # Usage
//
// Freeze the project's ID into the build with the generate subcommand:
//
//	//go:generate devsecrets generate -o secrets_id.go --go-package main
//
// then open the directory and read typed values:
//
//	secrets, err := devsecrets.FromID(devsecretsID)
//	if err != nil {
//	    // errors.Is(err, devsecrets.ErrNotInitialized) on first run
//	}
//
//	var token struct {
//	    Key string `json:"key"`
//	}
//	err = secrets.ReadInto("token.json", devsecrets.JSONFormat{}, &token)
//
// # Safety
//
// Secret paths are relative and validated before any filesystem access:
// absolute paths, "..", "." and empty components are rejected with
// ErrInvalidRelativePath, so a caller-supplied name can never escape the
// secrets directory. Typed reads additionally require the file extension
// to match the format (ErrInvalidExtension).
//
// # Errors
//
// Expected conditions and failures are distinct sentinel values usable
// with errors.Is: ErrNotInitialized is the normal state before
// "devsecrets init" has run on a machine, while ErrFileAccess and
// ErrParse wrap genuine I/O and decode failures with their causes.
package devsecrets
