// Command linty scans a file tree for matches of configured regex rules and
// fails the run according to a severity policy.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "linty [files...]",
	Short: "Configurable text-pattern linter",
	Long: `linty loads a declarative rule set (regex + severity + file globs),
scans the working directory or an explicit/staged file list, and reports
every match as a violation. Errors always fail the run; warnings fail it
under --error-on-warning or when declined interactively.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the linty version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("linty", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
