package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/totara-dev/devsecrets/core"
)

// GenerateOptions configures the generate workflow.
type GenerateOptions struct {
	// ManifestPath and Package select the project; see InitOptions.
	ManifestPath string
	Package      string

	// OutputPath is the Go source file to write. Relative paths are
	// resolved against the working directory, which is the package
	// directory under go:generate.
	OutputPath string

	// GoPackage is the package clause for the generated file.
	GoPackage string

	// VarName is the name of the generated variable.
	VarName string
}

// GenerateResult contains the outcome of a generate operation.
type GenerateResult struct {
	// ID is the embedded project ID.
	ID core.ID

	// OutputPath is the file that was written.
	OutputPath string
}

const generatedFileFormat = `// Code generated by devsecrets generate; DO NOT EDIT.

package %s

import "github.com/totara-dev/devsecrets/core"

// %s is this project's devsecrets ID, frozen at generation time.
var %s = core.MustParseID(%q)
`

// Generate embeds a project's devsecrets ID into a Go source file.
//
// It reads the ID sidecar file and emits a variable initialized with the
// canonical UUID string, so the consuming program never re-reads the
// sidecar at run time. The transform is pure: a missing or corrupt
// sidecar fails the generation, and no directories are created or
// consulted.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	manifestDir, err := resolveManifestDir(ctx, opts.ManifestPath, opts.Package)
	if err != nil {
		return nil, err
	}

	id, err := core.ReadProjectID(manifestDir)
	if err != nil {
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = "devsecrets_id_gen.go"
	}
	goPackage := opts.GoPackage
	if goPackage == "" {
		goPackage = "main"
	}
	varName := opts.VarName
	if varName == "" {
		varName = "devsecretsID"
	}

	source := fmt.Sprintf(generatedFileFormat, goPackage, varName, varName, id.String())
	if err := os.WriteFile(outputPath, []byte(source), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		absPath = outputPath
	}

	return &GenerateResult{
		ID:         id,
		OutputPath: absPath,
	}, nil
}
