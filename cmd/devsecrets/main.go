package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	logger "github.com/totara-dev/devsecrets/internal/logging"
)

var (
	verbose bool
	debug   bool
	log     logger.Logger

	manifestPath string
	packageName  string
)

var rootCmd = &cobra.Command{
	Use:   "devsecrets",
	Short: "devsecrets - store development secrets outside your repository.",
	Long: `devsecrets keeps per-project development secrets (API keys, tokens)
in a directory outside the version-controlled tree, keyed by a stable
UUID stored next to your go.mod.

Typical setup:

  devsecrets init        # create the ID file and the secrets directory
  devsecrets path        # print the directory to put secret files into

Your code then reads secrets through the devsecrets library, using an ID
frozen into the build by 'devsecrets generate'.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		log.Debugf("Initializing devsecrets command with verbose=%t, debug=%t", verbose, debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Run 'devsecrets --help' to see available commands.")
	},
}

// addProjectFlags registers the project-selection flags shared by the
// commands that operate on a single project.
func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&manifestPath, "manifest-path", "",
		"path to the project's go.mod (or its directory); defaults to the enclosing module")
	cmd.Flags().StringVarP(&packageName, "package", "p", "",
		"module within a multi-module workspace to operate on")
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
