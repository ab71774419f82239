package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles",
	Long:  `List stored articles, newest first.`,
	RunE:  runList,
}

var listTop int

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listTop, "top", "n", 20, "Number of articles to show")
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := article.NewRepository(db)
	articles, err := repo.List(listTop, 0)
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		fmt.Println("No articles found. Run 'curator add' or 'curator import' first.")
		return nil
	}

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	for _, a := range articles {
		fmt.Printf("%s %s\n", idStyle.Render(fmt.Sprintf("[%d]", a.ID)), a.Title)

		stats := fmt.Sprintf("%d likes • %d comments • %d reads • %s",
			a.Likes, a.Comments, a.Reads, a.CreatedAt.Format("2006-01-02"))
		fmt.Printf("    %s\n", statStyle.Render(stats))

		if len(a.Tags) > 0 {
			names := make([]string, 0, len(a.Tags))
			for _, t := range a.Tags {
				names = append(names, t.Name)
			}
			fmt.Printf("    %s\n", tagStyle.Render(strings.Join(names, ", ")))
		}
		fmt.Println()
	}

	return nil
}
