package article

import (
	"strconv"

	"github.com/curatorhq/curator/internal/ranking"
)

// RankingView adapts a stored article into the engine's read-only view.
func (a Article) RankingView() ranking.Article {
	tags := make([]ranking.Tag, 0, len(a.Tags))
	for _, t := range a.Tags {
		tags = append(tags, ranking.Tag{
			ID:   strconv.FormatInt(t.ID, 10),
			Name: t.Name,
		})
	}

	return ranking.Article{
		ID:             strconv.FormatInt(a.ID, 10),
		Title:          a.Title,
		Subtitle:       a.Subtitle,
		Content:        a.Content,
		Tags:           tags,
		Likes:          a.Likes,
		Comments:       a.Comments,
		Reads:          a.Reads,
		CreatedAt:      a.CreatedAt,
		AuthorVerified: a.AuthorVerified,
		QualityScore:   a.QualityScore,
	}
}

// RankingViews converts a snapshot of stored articles for a scoring call.
func RankingViews(articles []Article) []ranking.Article {
	views := make([]ranking.Article, 0, len(articles))
	for _, a := range articles {
		views = append(views, a.RankingView())
	}
	return views
}
