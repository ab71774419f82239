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

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show trending articles",
	Long:  `Ranks articles by engagement with time decay, newest activity first.`,
	RunE:  runTrending,
}

var (
	trendingPeriodName  string
	trendingLimit       int
	trendingMinLikes    int
	trendingMinComments int
	trendingMaxAge      int
	trendingLogDecay    bool
)

func init() {
	rootCmd.AddCommand(trendingCmd)
	trendingCmd.Flags().StringVarP(&trendingPeriodName, "period", "p", "", "Period: week, month, year, any")
	trendingCmd.Flags().IntVarP(&trendingLimit, "limit", "l", 0, "Maximum articles to show (0 uses config)")
	trendingCmd.Flags().IntVar(&trendingMinLikes, "min-likes", -1, "Minimum likes threshold")
	trendingCmd.Flags().IntVar(&trendingMinComments, "min-comments", -1, "Minimum comments threshold")
	trendingCmd.Flags().IntVar(&trendingMaxAge, "max-age", -1, "Maximum age in days (0 disables)")
	trendingCmd.Flags().BoolVar(&trendingLogDecay, "log-decay", false, "Use logarithmic decay instead of exponential")
}

func runTrending(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	limit := trendingLimit
	if limit <= 0 {
		limit = cfg.Trending.Limit
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
	views := article.RankingViews(articles)

	var ranked []ranking.TrendingArticle
	if trendingPeriodName != "" {
		ranked = ranking.TrendingByPeriod(views, trendingPeriodName, limit)
	} else {
		filters := ranking.TrendingFilters{
			MinLikes:            cfg.Trending.MinLikes,
			MinComments:         cfg.Trending.MinComments,
			MaxAgeDays:          cfg.Trending.MaxAgeDays,
			DecayDays:           cfg.Trending.DecayDays,
			Gravity:             cfg.Trending.Gravity,
			UseLogarithmicDecay: cfg.Trending.UseLogarithmicDecay || trendingLogDecay,
		}
		if trendingMinLikes >= 0 {
			filters.MinLikes = trendingMinLikes
		}
		if trendingMinComments >= 0 {
			filters.MinComments = trendingMinComments
		}
		if trendingMaxAge >= 0 {
			filters.MaxAgeDays = trendingMaxAge
		}
		ranked = ranking.RankTrending(views, filters, limit)
	}

	if len(ranked) == 0 {
		fmt.Println("Nothing trending. Articles need likes or comments within the age window.")
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	header := "TRENDING"
	if trendingPeriodName != "" {
		header = fmt.Sprintf("TRENDING (%s)", strings.ToUpper(trendingPeriodName))
	}
	fmt.Printf("\n%s\n\n", titleStyle.Render(header))

	maxScore := ranked[0].HotScore
	for i, r := range ranked {
		barWidth := 0
		if maxScore > 0 {
			barWidth = int((r.HotScore / maxScore) * 20)
		}
		bar := strings.Repeat("█", barWidth)

		fmt.Printf("%2d. %s %s\n", i+1, r.Article.Title,
			idStyle.Render(fmt.Sprintf("[%s]", r.Article.ID)))
		fmt.Printf("    %s %.3f (engagement %.2f, decay %.3f)\n",
			barStyle.Render(bar), r.HotScore, r.EngagementScore, r.TimeDecay)
	}
	fmt.Println()

	return nil
}
