package cmd

import (
	"fmt"
	"strconv"

	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment <id>",
	Short: "Record comments on an article",
	Args:  cobra.ExactArgs(1),
	RunE:  runComment,
}

var commentCount int

func init() {
	rootCmd.AddCommand(commentCmd)
	commentCmd.Flags().IntVarP(&commentCount, "count", "c", 1, "Number of comments to add")
}

func runComment(cmd *cobra.Command, args []string) error {
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
	if err := repo.AddComments(id, commentCount); err != nil {
		return err
	}

	a, err := repo.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s now has %d comments\n", a.Title, a.Comments)
	return nil
}
