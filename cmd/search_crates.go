package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rsdoc-dev/rsdoc/internal/crates"
	"github.com/spf13/cobra"
)

var searchCratesCmd = &cobra.Command{
	Use:   "search-crates <query>",
	Short: "Search crates.io for Rust crates",
	Example: `  rsdoc search-crates serde
  rsdoc search-crates "async http client"
  rsdoc search-crates --limit 5 tokio`,
	Args: cobra.ExactArgs(1),
	Run:  runSearchCrates,
}

var searchCratesLimit int

func init() {
	searchCratesCmd.Flags().IntVar(&searchCratesLimit, "limit", 10, "max results")
	rootCmd.AddCommand(searchCratesCmd)
}

func runSearchCrates(cmd *cobra.Command, args []string) {
	client := crates.NewClient(loadConfig())

	results, total, err := client.Search(context.Background(), args[0], searchCratesLimit)
	if err != nil {
		slog.Error("search failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(crates.FormatResults(args[0], total, results))
}
