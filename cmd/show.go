package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an article",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	fmt.Printf("\n%s\n", titleStyle.Render(a.Title))
	if a.Subtitle != "" {
		fmt.Println(a.Subtitle)
	}
	if a.Author != "" {
		author := a.Author
		if a.AuthorVerified {
			author += " ✓"
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Author:"), author)
	}
	fmt.Printf("%s %s\n", labelStyle.Render("Published:"), a.CreatedAt.Format("2006-01-02"))
	fmt.Printf("%s %d likes, %d comments, %d reads\n",
		labelStyle.Render("Engagement:"), a.Likes, a.Comments, a.Reads)
	if a.QualityScore > 0 {
		fmt.Printf("%s %.0f\n", labelStyle.Render("Quality:"), a.QualityScore)
	}
	if len(a.Tags) > 0 {
		names := make([]string, 0, len(a.Tags))
		for _, t := range a.Tags {
			names = append(names, t.Name)
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Tags:"), strings.Join(names, ", "))
	}
	if a.Content != "" {
		fmt.Printf("\n%s\n", a.Content)
	}

	return nil
}
