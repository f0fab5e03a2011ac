package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rsdoc-dev/rsdoc/internal/docsrs"
	"github.com/rsdoc-dev/rsdoc/internal/rustdoc"
	"github.com/spf13/cobra"
)

var lookupItemCmd = &cobra.Command{
	Use:   "lookup-item <crate> <item-path>",
	Short: "Look up documentation for a specific item in a crate",
	Example: `  rsdoc lookup-item serde struct.Serializer
  rsdoc lookup-item serde serde::de::Deserialize
  rsdoc lookup-item --version 1.0.0 tokio fn.spawn`,
	Args: cobra.ExactArgs(2),
	Run:  runLookupItem,
}

var (
	itemVersion string
	itemTarget  string
)

func init() {
	lookupItemCmd.Flags().StringVarP(&itemVersion, "version", "v", "", "specific version or semver range")
	lookupItemCmd.Flags().StringVarP(&itemTarget, "target", "t", "", "target platform")
	rootCmd.AddCommand(lookupItemCmd)
}

func runLookupItem(cmd *cobra.Command, args []string) {
	crateName, itemPath := args[0], args[1]
	fetcher := docsrs.NewFetcher(loadConfig())

	raw, err := fetcher.CrateJSON(context.Background(), crateName, itemVersion, itemTarget, 0)
	if err != nil {
		slog.Error("fetch failed", "crate", crateName, "error", err)
		os.Exit(1)
	}

	text, err := rustdoc.DescribeBytes(raw, itemPath)
	if err != nil {
		slog.Error("lookup failed", "crate", crateName, "item", itemPath, "error", err)
		os.Exit(1)
	}

	fmt.Println(text)
}
