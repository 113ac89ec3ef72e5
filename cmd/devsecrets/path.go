package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/totara-dev/devsecrets"
	"github.com/totara-dev/devsecrets/internal/ui"
	"github.com/totara-dev/devsecrets/internal/workflows"
)

func init() {
	addProjectFlags(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Prints the project's secrets directory",
	Long: `Prints the project's secrets directory to stdout without creating
anything, so the output can be piped or substituted into other commands.
A project that has never been initialized on this machine is reported as
such, distinctly from genuine errors.`,
	Run: func(cmd *cobra.Command, args []string) {
		result, err := workflows.Path(cmd.Context(), workflows.PathOptions{
			ManifestPath: manifestPath,
			Package:      packageName,
		})
		if err != nil {
			if errors.Is(err, devsecrets.ErrNotInitialized) {
				fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" devsecrets has not been initialized for this project")
				fmt.Fprintln(os.Stderr, ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("devsecrets init")+" to create the secrets directory")
				return
			}
			log.Errorf("Failed to look up secrets directory: %v", err)
			fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" Failed to look up secrets directory: "+err.Error())
			return
		}

		fmt.Println(result.SecretsDir)
	},
}
