package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexicon/nexicon-cli/pkg/config"
)

var (
	// Global flags
	flagJSON  bool
	flagRaw   bool
	flagQuiet bool
	flagYes   bool
	flagLimit int

	// Version metadata (filled by goreleaser)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "nexicon",
	Short: "Nexicon social feed in your terminal",
	Long:  "A local-first social networking CLI: feed, stories, DMs and activity, persisted on disk",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if _, err := config.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
			os.Exit(1)
		}
		if err := initApp(); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to open storage: %v\n", err)
			os.Exit(1)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&flagRaw, "raw", false, "Minimal human output (no decoration)")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&flagYes, "yes", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 0, "Max items returned")
}

func Execute() error {
	return rootCmd.Execute()
}
