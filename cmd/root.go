package cmd

import (
	"log"
	"log/slog"
	"os"

	"github.com/rsdoc-dev/rsdoc/internal/config"
	"github.com/rsdoc-dev/rsdoc/internal/mcp"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "rsdoc",
	Short: "Rust crate documentation from docs.rs, as text or over MCP",
	Run:   runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose log output")

	cobra.OnInitialize(func() {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	})

	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as MCP server over stdio (default)",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	slog.Info("starting docs.rs MCP server")
	server := mcp.NewServer(cfg)
	if err := server.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	return cfg
}
