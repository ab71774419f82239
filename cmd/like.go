package cmd

import (
	"fmt"
	"strconv"

	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Like an article",
	Args:  cobra.ExactArgs(1),
	RunE:  runLike,
}

var likeCount int

func init() {
	rootCmd.AddCommand(likeCmd)
	likeCmd.Flags().IntVarP(&likeCount, "count", "c", 1, "Number of likes to add")
}

func runLike(cmd *cobra.Command, args []string) error {
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
	if err := repo.AddLikes(id, likeCount); err != nil {
		return err
	}

	a, err := repo.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s now has %d likes\n", a.Title, a.Likes)
	return nil
}
