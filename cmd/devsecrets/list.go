package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/totara-dev/devsecrets/internal/ui"
	"github.com/totara-dev/devsecrets/internal/workflows"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists projects initialized on this machine",
	Run: func(cmd *cobra.Command, args []string) {
		result, err := workflows.List(cmd.Context(), workflows.ListOptions{})
		if err != nil {
			log.Errorf("Failed to list projects: %v", err)
			fmt.Println(ui.Error.Sprint("✗") + " Failed to list projects: " + err.Error())
			return
		}

		if len(result.Projects) == 0 {
			fmt.Println("No projects have been initialized on this machine.")
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("devsecrets init") + " inside a project to get started")
			return
		}

		fmt.Println("Projects under " + ui.Path.Sprint(result.RootDir) + ":")
		for _, entry := range result.Projects {
			fmt.Printf("  %s  %s\n", ui.Highlight.Sprint(entry.ID.String()), entry.Name)
			fmt.Printf("      %s\n", ui.Path.Sprint(entry.ManifestDir))
		}
	},
}
