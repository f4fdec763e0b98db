package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rwblickhan/linty/internal/shared"
)

var initConfigPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config if none exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := initConfigPath
		if path == "" {
			path = shared.DefaultPath
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Config already exists at %s\n", path)
			return nil
		} else if !os.IsNotExist(err) {
			fatal(err)
		}
		if err := shared.WriteConfig(path, shared.ExampleConfig()); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote example config to %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initConfigPath, "config-path", "c", "", "Path to config file (default "+shared.DefaultPath+")")
	rootCmd.AddCommand(initCmd)
}
