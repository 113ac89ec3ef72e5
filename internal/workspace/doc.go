// Package workspace resolves "which project am I in" for the devsecrets
// CLI by shelling out to the Go toolchain.
//
// The manifest that anchors a project is its go.mod: the sidecar ID file
// is created next to it, and "go env GOMOD" locates it from any
// subdirectory. In a multi-module workspace (go.work), "go list -m -json"
// enumerates the member modules so --package can pick one by module path
// or by its final path element.
//
// Discovery is deliberately delegated to the toolchain instead of
// re-implementing module resolution.
package workspace
