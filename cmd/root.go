package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "curator",
	Short: "Rank, recommend, and surface trending articles",
	Long: `Curator keeps a local base of articles and ranks them three ways:
full-text relevance (BM25), content similarity over tags, and
time-decayed popularity.

Pipeline: add/import → read/like → search/recommend/trending`,
}

func init() {
	rootCmd.Version = "0.1.0"
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
