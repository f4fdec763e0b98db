package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rwblickhan/linty/internal/reporting"
)

var (
	diffDB     string
	diffBase   string
	diffHead   string
	diffOutDir string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare the violations of two recorded runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if diffBase == "" || diffHead == "" {
			return fmt.Errorf("--base and --head are required")
		}
		db := openHistory(diffDB)
		defer db.Close()

		base, err := db.LoadRun(diffBase)
		if err != nil {
			fatal(fmt.Errorf("load base run: %w", err))
		}
		head, err := db.LoadRun(diffHead)
		if err != nil {
			fatal(fmt.Errorf("load head run: %w", err))
		}
		if diffOutDir != "" {
			path, err := reporting.WriteDiffJSON(diffOutDir, &base, &head)
			if err != nil {
				fatal(err)
			}
			fmt.Printf("Diff written to %s\n", path)
			return nil
		}
		if err := reporting.PrintDiff(os.Stdout, &base, &head); err != nil {
			fatal(err)
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVar(&diffDB, "db", "", "History database path (default from config)")
	diffCmd.Flags().StringVar(&diffBase, "base", "", "Base run ID")
	diffCmd.Flags().StringVar(&diffHead, "head", "", "Head run ID")
	diffCmd.Flags().StringVar(&diffOutDir, "out", "", "Write the diff JSON into this directory instead of stdout")
	rootCmd.AddCommand(diffCmd)
}
