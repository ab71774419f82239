package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/curatorhq/curator/internal/article"
	"github.com/curatorhq/curator/internal/config"
	"github.com/curatorhq/curator/internal/database"
	"github.com/curatorhq/curator/internal/feed"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <feed-url>",
	Short: "Import articles from an RSS/Atom feed",
	Long:  `Fetches a feed, strips HTML from item content, and stores new items as articles.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var importTags []string

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringSliceVarP(&importTags, "tags", "t", nil, "Tags to attach to imported articles")
}

func runImport(cmd *cobra.Command, args []string) error {
	feedURL := args[0]
	if !strings.HasPrefix(feedURL, "http") {
		feedURL = "https://" + feedURL
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fetcher := feed.NewFetcher(time.Duration(cfg.Import.TimeoutSeconds)*time.Second, cfg.Import.UserAgent)

	fmt.Printf("Fetching %s...\n", feedURL)
	fetched, err := fetcher.FetchFeed(feedURL)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	repo := article.NewRepository(db)
	added := 0
	for _, f := range fetched {
		exists, err := repo.Exists(f.URL)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		a, err := repo.Add(article.Article{
			URL:       f.URL,
			Title:     f.Title,
			Subtitle:  f.Subtitle,
			Content:   f.Content,
			Author:    f.Author,
			CreatedAt: f.PublishedAt,
		})
		if err != nil {
			return err
		}

		if len(importTags) > 0 {
			if err := repo.Tag(a.ID, importTags); err != nil {
				return err
			}
		}
		added++
	}

	fmt.Printf("Imported %d new articles (%d already known)\n", added, len(fetched)-added)
	return nil
}
