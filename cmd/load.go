package cmd

import (
	"fmt"
	"os"

	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load articles from a JSON dump",
	Long:  `Loads articles produced by 'curator export', skipping URLs already present.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var dump []articleDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return fmt.Errorf("failed to decode articles: %w", err)
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := article.NewRepository(db)
	added := 0
	for _, d := range dump {
		if d.URL != "" {
			exists, err := repo.Exists(d.URL)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
		}

		a, err := repo.Add(article.Article{
			URL:            d.URL,
			Title:          d.Title,
			Subtitle:       d.Subtitle,
			Content:        d.Content,
			Author:         d.Author,
			AuthorVerified: d.AuthorVerified,
			QualityScore:   d.QualityScore,
			Likes:          d.Likes,
			Comments:       d.Comments,
			Reads:          d.Reads,
			CreatedAt:      d.CreatedAt,
		})
		if err != nil {
			return err
		}

		if len(d.Tags) > 0 {
			if err := repo.Tag(a.ID, d.Tags); err != nil {
				return err
			}
		}
		added++
	}

	fmt.Printf("Loaded %d articles from %s\n", added, args[0])
	return nil
}
