package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/curatorhq/curator/internal/ranking"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [id]",
	Short: "Recommend similar articles",
	Long: `Recommends articles by weighted tag similarity. Pass an article ID for
content-based recommendations, or --for-me to use your read history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecommend,
}

var (
	recommendLimit int
	recommendForMe bool
)

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "l", 0, "Maximum recommendations (0 uses config)")
	recommendCmd.Flags().BoolVar(&recommendForMe, "for-me", false, "Recommend from read history")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if !recommendForMe && len(args) == 0 {
		return fmt.Errorf("pass an article ID or --for-me")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	limit := recommendLimit
	if limit <= 0 {
		limit = cfg.Recommend.Limit
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := article.NewRepository(db)
	articles, err := repo.List(10000, 0)
	if err != nil {
		return err
	}
	candidates := article.RankingViews(articles)

	var recs []ranking.Recommendation
	var header string

	if recommendForMe {
		read, err := repo.ReadHistory(100)
		if err != nil {
			return err
		}
		if len(read) == 0 {
			fmt.Println("No read history yet. Mark articles with 'curator read <id>'.")
			return nil
		}
		recs = ranking.UserRecommendations(article.RankingViews(read), candidates, limit)
		header = "RECOMMENDED FOR YOU"
	} else {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid article ID: %s", args[0])
		}
		ref, err := repo.Get(id)
		if err != nil {
			return err
		}
		recs = ranking.ContentBasedRecommendations(ref.RankingView(), candidates, nil, limit)
		header = fmt.Sprintf("SIMILAR TO '%s'", ref.Title)
	}

	if len(recs) == 0 {
		fmt.Println("No recommendations found. Articles need shared tags to relate.")
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	fmt.Printf("\n%s\n\n", titleStyle.Render(header))
	for _, rec := range recs {
		fmt.Printf("%s %s (%.2f)\n",
			idStyle.Render(fmt.Sprintf("[%s]", rec.Article.ID)),
			rec.Article.Title,
			rec.Similarity)
		if len(rec.SharedTags) > 0 {
			fmt.Printf("    %s\n", tagStyle.Render("shared: "+strings.Join(rec.SharedTags, ", ")))
		}
	}
	fmt.Println()

	return nil
}
