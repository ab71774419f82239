package cmd

import (
	"fmt"
	"os"

	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize curator configuration and database",
	Long:  `Creates the ~/.curator directory with config.yaml and SQLite database.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s/curator.db\n", dir)

	fmt.Println("\nCurator initialized! Next steps:")
	fmt.Println("  curator add <title>       Add an article by hand")
	fmt.Println("  curator import <feed>     Import articles from an RSS feed")
	fmt.Println("  curator search <query>    Rank articles against a query")

	return nil
}
