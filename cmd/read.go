package cmd

import (
	"fmt"
	"strconv"

	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark an article as read",
	Long:  `Records a read event. Read history feeds 'curator recommend --for-me'.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid article ID: %s", args[0])
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := article.NewRepository(db)
	a, err := repo.Get(id)
	if err != nil {
		return err
	}

	if err := repo.MarkRead(id); err != nil {
		return err
	}

	fmt.Printf("Marked as read: %s\n", a.Title)
	return nil
}
