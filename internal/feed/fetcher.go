package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

type FetchedArticle struct {
	URL         string
	Title       string
	Subtitle    string
	Author      string
	PublishedAt time.Time
	Content     string
}

type Fetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &Fetcher{parser: parser, timeout: timeout}
}

// FetchFeed parses an RSS/Atom feed and maps its items to importable
// articles with HTML stripped from the content.
func (f *Fetcher) FetchFeed(feedURL string) ([]FetchedArticle, error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	var articles []FetchedArticle
	for _, item := range parsed.Items {
		a := FetchedArticle{
			URL:   item.Link,
			Title: item.Title,
		}

		if item.Author != nil {
			a.Author = item.Author.Name
		} else if len(parsed.Authors) > 0 {
			a.Author = parsed.Authors[0].Name
		}

		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			a.PublishedAt = *item.UpdatedParsed
		} else {
			a.PublishedAt = time.Now()
		}

		content := item.Content
		if content == "" {
			content = item.Description
		}
		a.Content = StripHTML(content)

		// Many feeds put a one-line summary in the description alongside
		// full content; use it as the subtitle when both exist.
		if item.Content != "" && item.Description != "" {
			a.Subtitle = StripHTML(item.Description)
		}

		articles = append(articles, a)
	}

	return articles, nil
}

// StripHTML reduces an HTML fragment to normalized plain text. Input that
// fails to parse is returned as-is.
func StripHTML(html string) string {
	if !strings.Contains(html, "<") {
		return strings.Join(strings.Fields(html), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script, style").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}
