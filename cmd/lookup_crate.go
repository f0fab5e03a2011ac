package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/rsdoc-dev/rsdoc/internal/docsrs"
	"github.com/rsdoc-dev/rsdoc/internal/rustdoc"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var lookupCrateCmd = &cobra.Command{
	Use:   "lookup-crate <crate>...",
	Short: "Look up documentation for one or more Rust crates",
	Example: `  rsdoc lookup-crate serde
  rsdoc lookup-crate --version 1.0.0 serde
  rsdoc lookup-crate serde tokio clap`,
	Args: cobra.MinimumNArgs(1),
	Run:  runLookupCrate,
}

var (
	lookupVersion       string
	lookupTarget        string
	lookupFormatVersion int
)

func init() {
	lookupCrateCmd.Flags().StringVarP(&lookupVersion, "version", "v", "", `specific version (e.g. "1.0.0") or semver range (e.g. "~4")`)
	lookupCrateCmd.Flags().StringVarP(&lookupTarget, "target", "t", "", `target platform (e.g. "i686-pc-windows-msvc")`)
	lookupCrateCmd.Flags().IntVar(&lookupFormatVersion, "format-version", 0, "rustdoc JSON format version to request")
	rootCmd.AddCommand(lookupCrateCmd)
}

func runLookupCrate(cmd *cobra.Command, args []string) {
	fetcher := docsrs.NewFetcher(loadConfig())

	summaries := make([]string, len(args))
	g, ctx := errgroup.WithContext(context.Background())
	for i, crateName := range args {
		g.Go(func() error {
			raw, err := fetcher.CrateJSON(ctx, crateName, lookupVersion, lookupTarget, lookupFormatVersion)
			if err != nil {
				return err
			}
			text, err := rustdoc.SummarizeBytes(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", crateName, err)
			}
			summaries[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("lookup failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(strings.Join(summaries, "\n\n---\n\n"))
}
