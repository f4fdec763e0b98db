package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rwblickhan/linty/internal/api"
	"github.com/rwblickhan/linty/internal/security"
	"github.com/rwblickhan/linty/internal/shared"
)

var (
	serveDB   string
	serveAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve recorded runs over a read-only HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// serve works without a config file; flags and defaults cover it
		cfg, cfgErr := shared.LoadConfig(checkConfigPath)
		if cfgErr != nil {
			cfg = shared.DefaultConfig()
		}
		logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)
		addr := serveAddr
		if addr == "" {
			addr = cfg.Serve.Addr
		}

		db := openHistory(serveDB)
		defer db.Close()

		srv := &api.Server{
			DB:          db,
			Logger:      logger,
			TokenBcrypt: cfg.Serve.TokenBcrypt,
		}
		if cfg.Serve.TokenBcrypt == "" {
			logger.Warn("serve.token_bcrypt not set; API is unauthenticated")
		}
		logger.Info("serving run history", "addr", addr)
		if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
			fatal(err)
		}
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate an API access token and its bcrypt hash for config",
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := security.NewToken(32)
		if err != nil {
			fatal(err)
		}
		hash, err := security.HashToken(tok)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Token: %s\nAdd to config under serve.token_bcrypt:\n%s\n", tok, hash)
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveDB, "db", "", "History database path (default from config)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tokenCmd)
}
