package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rwblickhan/linty/internal/shared"
	"github.com/rwblickhan/linty/internal/storage"
)

var (
	historyDB    string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := openHistory(historyDB)
		defer db.Close()

		rows, err := db.ListRuns(historyLimit, 0)
		if err != nil {
			fatal(err)
		}
		if len(rows) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}
		for _, rr := range rows {
			fmt.Printf("%s  %s  root=%s  violations=%d\n",
				rr.ID, rr.StartedAt.Format(time.RFC3339), rr.Root, rr.Violations)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "", "History database path (default from config)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum runs to list")
	rootCmd.AddCommand(historyCmd)
}

// openHistory opens the run database, falling back to the config's DSN
// (flags win over config, config over defaults).
func openHistory(dsn string) *storage.DB {
	if dsn == "" {
		cfg, err := shared.LoadConfig(checkConfigPath)
		if err == nil && cfg.Database.DSN != "" {
			dsn = cfg.Database.DSN
		} else {
			dsn = shared.DefaultConfig().Database.DSN
		}
	}
	db, err := storage.OpenSQLite(dsn)
	if err != nil {
		fatal(fmt.Errorf("open history db: %w", err))
	}
	if err := db.CreateSchema(); err != nil {
		fatal(fmt.Errorf("create history schema: %w", err))
	}
	return db
}
