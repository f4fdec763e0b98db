package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rwblickhan/linty/internal/lint"
	"github.com/rwblickhan/linty/internal/report"
	"github.com/rwblickhan/linty/internal/reporting"
	"github.com/rwblickhan/linty/internal/rules"
	"github.com/rwblickhan/linty/internal/scan"
	"github.com/rwblickhan/linty/internal/shared"
	"github.com/rwblickhan/linty/internal/storage"
)

var (
	checkErrorOnWarning bool
	checkConfigPath     string
	checkNoConfirm      bool
	checkIncludeIgnored bool
	checkIncludeHidden  bool
	checkStaged         bool
	checkSave           bool
	checkOutDir         string
)

// stagedLister is swapped out in tests so the pipeline runs without git.
var stagedLister scan.StagedLister = scan.GitStagedFiles

func init() {
	rootCmd.Flags().BoolVarP(&checkErrorOnWarning, "error-on-warning", "e", false, "Treat warnings as errors")
	rootCmd.Flags().StringVarP(&checkConfigPath, "config-path", "c", "", "Path to config file (default "+shared.DefaultPath+")")
	rootCmd.Flags().BoolVar(&checkNoConfirm, "no-confirm", false, "Skip interactive warning confirmation")
	rootCmd.Flags().BoolVar(&checkIncludeIgnored, "include-ignored", false, "Scan files ignored by version control")
	rootCmd.Flags().BoolVar(&checkIncludeHidden, "include-hidden", false, "Scan hidden files and directories")
	rootCmd.Flags().BoolVar(&checkStaged, "staged", false, "Restrict scanning to files staged for commit (mutually exclusive with file arguments)")
	rootCmd.Flags().BoolVar(&checkSave, "save", false, "Record this run in the history database")
	rootCmd.Flags().StringVar(&checkOutDir, "out", "", "Write a JSON run report into this directory")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkStaged && len(args) > 0 {
		return fmt.Errorf("--staged and explicit file arguments are mutually exclusive")
	}

	cfg, cfgErr := shared.LoadConfig(checkConfigPath)
	logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)
	if cfgErr != nil {
		fatal(cfgErr)
	}

	compiled, err := rules.Compile(cfg.Rules)
	if err != nil {
		fatal(err)
	}
	waivers, err := rules.CompileWaivers(cfg.Waivers)
	if err != nil {
		fatal(err)
	}

	paths := args
	if checkStaged {
		paths, err = stagedLister()
		if err != nil {
			fatal(err)
		}
	}
	only, err := scan.CanonicalSet(paths)
	if err != nil {
		fatal(err)
	}

	scanner := &scan.Scanner{
		Rules: compiled,
		Walker: &scan.Walker{
			Root:           ".",
			IncludeIgnored: checkIncludeIgnored,
			IncludeHidden:  checkIncludeHidden,
			Only:           only,
			Logger:         logger,
		},
		Logger: logger,
	}
	violations, err := scanner.Run()
	if err != nil {
		fatal(err)
	}
	violations, waived := rules.ApplyWaivers(violations, waivers)
	if waived > 0 {
		logger.Info("violations waived", "count", waived)
	}

	rep := report.Partition(violations)
	messages := make(map[string]string, len(compiled))
	for _, r := range compiled {
		messages[r.ID] = r.Message
	}
	printer := &report.Printer{
		Out:         os.Stdout,
		In:          os.Stdin,
		Interactive: !checkNoConfirm,
		Messages:    messages,
	}
	declined := printer.PrintWarnings(rep.Warnings)
	printer.PrintErrors(rep.Errors)

	if checkSave || checkOutDir != "" {
		run := lint.Run{
			ID:         fmt.Sprintf("run-%d", time.Now().Unix()),
			StartedAt:  time.Now().UTC(),
			Root:       scanner.Walker.Root,
			ConfigPath: checkConfigPath,
			Version:    lint.Version,
			Violations: violations,
		}
		if checkSave {
			saveRun(cfg.Database.DSN, &run)
		}
		if checkOutDir != "" {
			if err := os.MkdirAll(checkOutDir, 0o755); err != nil {
				fatal(fmt.Errorf("create out dir: %w", err))
			}
			path, err := reporting.WriteJSON(run.ID, checkOutDir, &run)
			if err != nil {
				fatal(fmt.Errorf("write report: %w", err))
			}
			logger.Info("report written", "path", path)
		}
	}

	policy := report.Policy{ErrorOnWarning: checkErrorOnWarning}
	if ok, reason := policy.Outcome(rep, declined); !ok {
		fmt.Fprintln(os.Stderr, reason)
		os.Exit(1)
	}
	return nil
}

func saveRun(dsn string, run *lint.Run) {
	db, err := storage.OpenSQLite(dsn)
	if err != nil {
		fatal(fmt.Errorf("open history db: %w", err))
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		fatal(fmt.Errorf("create history schema: %w", err))
	}
	if err := db.SaveRun(run); err != nil {
		fatal(fmt.Errorf("save run: %w", err))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
