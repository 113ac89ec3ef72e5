package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/totara-dev/devsecrets/core"
	"github.com/totara-dev/devsecrets/internal/ui"
	"github.com/totara-dev/devsecrets/internal/workflows"
)

var (
	generateOutput    string
	generateGoPackage string
	generateVarName   string
)

func init() {
	addProjectFlags(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "devsecrets_id_gen.go",
		"Go source file to write")
	generateCmd.Flags().StringVar(&generateGoPackage, "go-package", "main",
		"package clause for the generated file")
	generateCmd.Flags().StringVar(&generateVarName, "var", "devsecretsID",
		"name of the generated variable")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Embeds the project's devsecrets ID into a Go source file",
	Long: `Reads the project's ID file and writes a Go source file declaring the
ID as a variable, so the consuming program never re-reads the ID file at
run time. Intended to be driven by go:generate:

  //go:generate devsecrets generate -o devsecrets_id_gen.go

Generation fails if the ID file is missing or corrupt; it never creates
directories or touches the secrets store.`,
	Run: func(cmd *cobra.Command, args []string) {
		spinner, cleanup := startSpinner("Generating ID constant...")
		defer cleanup()

		result, err := workflows.Generate(cmd.Context(), workflows.GenerateOptions{
			ManifestPath: manifestPath,
			Package:      packageName,
			OutputPath:   generateOutput,
			GoPackage:    generateGoPackage,
			VarName:      generateVarName,
		})
		if err != nil {
			if errors.Is(err, core.ErrIDNotFound) {
				printError(spinner, "This project has no "+core.IDFileName+" file", err)
				spinner.FinalMSG += "\n" + ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("devsecrets init") + " first"
				return
			}
			printError(spinner, "Failed to generate ID constant", err)
			return
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Wrote " + ui.Path.Sprint(result.OutputPath) + "\n" +
			ui.Info.Sprint("→") + " Embedded ID " + ui.Highlight.Sprint(result.ID.String())
	},
}
