package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// articleDump is the JSON shape shared by 'curator export' and 'curator load'.
type articleDump struct {
	URL            string    `json:"url,omitempty"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle,omitempty"`
	Content        string    `json:"content,omitempty"`
	Author         string    `json:"author,omitempty"`
	AuthorVerified bool      `json:"authorVerified,omitempty"`
	QualityScore   float64   `json:"qualityScore,omitempty"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	Reads          int       `json:"reads"`
	CreatedAt      time.Time `json:"createdAt"`
	Tags           []string  `json:"tags,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export articles as JSON",
	Long:  `Writes all articles, tags, and engagement counters as JSON to a file or stdout.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := article.NewRepository(db)
	articles, err := repo.List(100000, 0)
	if err != nil {
		return err
	}

	dump := make([]articleDump, 0, len(articles))
	for _, a := range articles {
		names := make([]string, 0, len(a.Tags))
		for _, t := range a.Tags {
			names = append(names, t.Name)
		}
		dump = append(dump, articleDump{
			URL:            a.URL,
			Title:          a.Title,
			Subtitle:       a.Subtitle,
			Content:        a.Content,
			Author:         a.Author,
			AuthorVerified: a.AuthorVerified,
			QualityScore:   a.QualityScore,
			Likes:          a.Likes,
			Comments:       a.Comments,
			Reads:          a.Reads,
			CreatedAt:      a.CreatedAt,
			Tags:           names,
		})
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode articles: %w", err)
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return err
	}
	fmt.Printf("Exported %d articles to %s\n", len(dump), args[0])
	return nil
}
