package cmd

import (
	"fmt"
	"strings"

	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an article by hand",
	Long:  `Add an article with optional subtitle, content, author, and tags.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var (
	addSubtitle string
	addContent  string
	addAuthor   string
	addTags     []string
	addVerified bool
	addQuality  float64
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addSubtitle, "subtitle", "", "Article subtitle")
	addCmd.Flags().StringVar(&addContent, "content", "", "Article body text")
	addCmd.Flags().StringVar(&addAuthor, "author", "", "Author name")
	addCmd.Flags().StringSliceVarP(&addTags, "tags", "t", nil, "Comma-separated tags")
	addCmd.Flags().BoolVar(&addVerified, "verified", false, "Mark the author as verified")
	addCmd.Flags().Float64Var(&addQuality, "quality", 0, "Quality score (0-100)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := article.NewRepository(db)
	a, err := repo.Add(article.Article{
		Title:          title,
		Subtitle:       addSubtitle,
		Content:        addContent,
		Author:         addAuthor,
		AuthorVerified: addVerified,
		QualityScore:   addQuality,
	})
	if err != nil {
		return err
	}

	if len(addTags) > 0 {
		if err := repo.Tag(a.ID, addTags); err != nil {
			return err
		}
	}

	fmt.Printf("Added: %s (ID: %d)\n", a.Title, a.ID)
	return nil
}
