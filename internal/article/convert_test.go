package article

import (
	"testing"
	"time"
)

func TestRankingView(t *testing.T) {
	a := Article{
		ID:             42,
		Title:          "Title",
		Subtitle:       "Sub",
		Content:        "Body",
		AuthorVerified: true,
		QualityScore:   80,
		Likes:          3,
		Comments:       1,
		Reads:          9,
		CreatedAt:      time.Now(),
		Tags:           []Tag{{ID: 7, Name: "golang"}},
	}

	view := a.RankingView()

	if view.ID != "42" {
		t.Errorf("expected ID \"42\", got %q", view.ID)
	}
	if len(view.Tags) != 1 || view.Tags[0].ID != "7" || view.Tags[0].Name != "golang" {
		t.Errorf("unexpected tags: %v", view.Tags)
	}
	if view.Likes != 3 || view.Comments != 1 || view.Reads != 9 {
		t.Error("expected engagement counters carried over")
	}
	if !view.AuthorVerified || view.QualityScore != 80 {
		t.Error("expected author and quality fields carried over")
	}
}
