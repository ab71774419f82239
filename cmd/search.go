package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/curatorhq/curator/internal/ranking"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search articles by content",
	Long:  `Ranks articles against a free-text query with BM25 and field boosts.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var searchLimit int

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Maximum results to show (0 uses config)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	limit := searchLimit
	if limit <= 0 {
		limit = cfg.Search.Limit
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

	params := ranking.BM25Params{
		K1:            cfg.Search.K1,
		B:             cfg.Search.B,
		TitleBoost:    cfg.Search.TitleBoost,
		SubtitleBoost: cfg.Search.SubtitleBoost,
		TagBoost:      cfg.Search.TagBoost,
	}
	results := ranking.SearchArticles(query, article.RankingViews(articles), params)
	if len(results) > limit {
		results = results[:limit]
	}

	if len(results) == 0 {
		fmt.Printf("No results found for '%s'\n", query)
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	scoreStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	fmt.Printf("\n%s '%s' (%d results)\n\n", titleStyle.Render("SEARCH:"), query, len(results))

	for _, r := range results {
		fmt.Printf("%s %s %s\n",
			idStyle.Render(fmt.Sprintf("[%s]", r.ID)),
			r.Title,
			scoreStyle.Render(fmt.Sprintf("%.3f", r.Score)))
		if r.Subtitle != "" {
			fmt.Printf("    %s\n", r.Subtitle)
		}
	}
	fmt.Println()

	return nil
}
