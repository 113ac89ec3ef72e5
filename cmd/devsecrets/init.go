package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/totara-dev/devsecrets/core"
	"github.com/totara-dev/devsecrets/internal/ui"
	"github.com/totara-dev/devsecrets/internal/workflows"
)

func init() {
	addProjectFlags(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates the project's devsecrets ID and secrets directory",
	Long: `Creates the project's ID file next to its go.mod (if missing) and the
matching secrets directory under the per-user devsecrets root. Running
init again on an initialized project is harmless and prints the same
directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		spinner, cleanup := startSpinner("Initializing devsecrets...")
		defer cleanup()

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
			ManifestPath: manifestPath,
			Package:      packageName,
		})
		if err != nil {
			if errors.Is(err, core.ErrCorruptID) {
				printError(spinner, "The existing "+core.IDFileName+" file is not a valid UUID", err)
				return
			}
			printError(spinner, "Failed to initialize devsecrets", err)
			return
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " devsecrets initialized for " + ui.Highlight.Sprint(result.ManifestDir) + "\n" +
			ui.Info.Sprint("→") + " Put secret files in " + ui.Path.Sprint(result.SecretsDir)
	},
}
