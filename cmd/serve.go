package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"vortex-source/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the runner HTTP server",
	Long:  "Run the runner HTTP server",
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	registry := buildRegistry(cfg.RedisAddr)
	if err := server.New(registry).Run(cfg); err != nil {
		return fmt.Errorf("server stopped: %v", err)
	}
	return nil
}
