package ranking

import (
	"math"
	"testing"
	"time"
)

var (
	tagGo    = Tag{ID: "t1", Name: "golang"}
	tagRust  = Tag{ID: "t2", Name: "rust"}
	tagSalsa = Tag{ID: "t3", Name: "dancing"}
	tagCloud = Tag{ID: "t4", Name: "cloud"}
)

func TestWeightedJaccardSelf(t *testing.T) {
	a := Article{ID: "a", Tags: []Tag{tagGo, tagRust}}
	corpus := []Article{a, {ID: "b", Tags: []Tag{tagSalsa}}}

	sim, shared := WeightedJaccard(a, a, corpus)

	if math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("expected self-similarity 1.0, got %f", sim)
	}
	if len(shared) != 2 {
		t.Fatalf("expected full tag set shared, got %v", shared)
	}
	if shared[0] != "golang" || shared[1] != "rust" {
		t.Errorf("expected sorted shared tag names, got %v", shared)
	}
}

func TestWeightedJaccardDisjoint(t *testing.T) {
	a := Article{ID: "a", Tags: []Tag{tagGo}}
	b := Article{ID: "b", Tags: []Tag{tagSalsa}}
	corpus := []Article{a, b, {ID: "c", Tags: []Tag{tagRust}}}

	sim, shared := WeightedJaccard(a, b, corpus)

	if sim != 0 {
		t.Errorf("expected similarity 0 for disjoint tags, got %f", sim)
	}
	if len(shared) != 0 {
		t.Errorf("expected no shared tags, got %v", shared)
	}
}

func TestWeightedJaccardNoTags(t *testing.T) {
	a := Article{ID: "a"}
	b := Article{ID: "b"}

	sim, _ := WeightedJaccard(a, b, []Article{a, b})

	if sim != 0 {
		t.Errorf("expected similarity 0 when denominator is 0, got %f", sim)
	}
}

func TestEngagementRaisesTagWeight(t *testing.T) {
	quiet := Article{ID: "a", Tags: []Tag{tagGo}}
	popular := Article{ID: "b", Tags: []Tag{tagGo}, Likes: 100, Comments: 20, Reads: 500}
	corpus := []Article{quiet, popular, {ID: "c", Tags: []Tag{tagRust}}}

	df := tagDocFreq(corpus)
	wq := tagWeight(tagGo.ID, quiet, df, len(corpus))
	wp := tagWeight(tagGo.ID, popular, df, len(corpus))

	if wp <= wq {
		t.Errorf("expected engagement to raise tag weight: %f vs %f", wp, wq)
	}
}

func TestRecencyDecay(t *testing.T) {
	now := time.Now()

	fresh := RecencyDecay(0.8, now, now)
	halfYear := RecencyDecay(0.8, now.AddDate(0, 0, -182), now)
	yearOld := RecencyDecay(0.8, now.AddDate(0, 0, -365), now)
	ancient := RecencyDecay(0.8, now.AddDate(-3, 0, 0), now)

	if math.Abs(fresh-0.8) > 1e-9 {
		t.Errorf("expected no penalty for a fresh article, got %f", fresh)
	}
	if !(fresh > halfYear && halfYear > yearOld) {
		t.Errorf("expected monotonically decreasing decay: %f, %f, %f", fresh, halfYear, yearOld)
	}
	if math.Abs(yearOld-0.8*0.8) > 1e-6 {
		t.Errorf("expected 20%% penalty at one year, got %f", yearOld)
	}
	if math.Abs(ancient-yearOld) > 1e-6 {
		t.Errorf("expected penalty capped at 20%%: %f vs %f", ancient, yearOld)
	}
}

func TestRecencyDecayFutureTimestamp(t *testing.T) {
	now := time.Now()
	future := RecencyDecay(0.8, now.AddDate(0, 0, 30), now)

	if math.Abs(future-0.8) > 1e-9 {
		t.Errorf("expected future timestamps to decay as age zero, got %f", future)
	}
}

func recommendFixture() (Article, []Article) {
	now := time.Now()
	ref := Article{ID: "ref", Tags: []Tag{tagGo, tagRust}, CreatedAt: now}
	candidates := []Article{
		{ID: "c1", Tags: []Tag{tagGo, tagRust}, CreatedAt: now},
		{ID: "c2", Tags: []Tag{tagGo, tagRust}, CreatedAt: now},
		{ID: "c3", Tags: []Tag{tagGo, tagRust}, CreatedAt: now},
		{ID: "c4", Tags: []Tag{tagGo}, CreatedAt: now},
		{ID: "c5", Tags: []Tag{tagSalsa}, CreatedAt: now},
	}
	return ref, candidates
}

func TestContentBasedRecommendations(t *testing.T) {
	ref, candidates := recommendFixture()

	recs := ContentBasedRecommendations(ref, candidates, nil, 10)

	for _, rec := range recs {
		if rec.Article.ID == "c5" {
			t.Error("expected disjoint candidate excluded")
		}
		if rec.Article.ID == "ref" {
			t.Error("expected reference excluded from its own recommendations")
		}
		if rec.Similarity <= 0 {
			t.Errorf("expected positive similarity, got %f", rec.Similarity)
		}
	}
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	if recs[0].Article.ID != "c1" {
		t.Errorf("expected highest-similarity candidate first, got %s", recs[0].Article.ID)
	}
}

func TestContentBasedRecommendationsExcludeIDs(t *testing.T) {
	ref, candidates := recommendFixture()

	recs := ContentBasedRecommendations(ref, candidates, []string{"c1", "c2"}, 10)

	for _, rec := range recs {
		if rec.Article.ID == "c1" || rec.Article.ID == "c2" {
			t.Errorf("expected %s to be excluded", rec.Article.ID)
		}
	}
}

func TestDiversityPass(t *testing.T) {
	ref, candidates := recommendFixture()

	// With limit 2 only one result may reuse a tag combination, so the
	// second slot goes to c4 despite its lower similarity.
	recs := ContentBasedRecommendations(ref, candidates, nil, 2)

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Article.ID != "c1" {
		t.Errorf("expected c1 first, got %s", recs[0].Article.ID)
	}
	if recs[1].Article.ID != "c4" {
		t.Errorf("expected diversity pass to pick c4, got %s", recs[1].Article.ID)
	}
}

func TestDiversityPassFillsQuota(t *testing.T) {
	ref, candidates := recommendFixture()

	// Up to limit/2 results may share a tag combination before repeats are
	// skipped, and repeats still fill remaining slots' worth of diversity.
	recs := ContentBasedRecommendations(ref, candidates, nil, 4)

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	ids := []string{recs[0].Article.ID, recs[1].Article.ID, recs[2].Article.ID}
	if ids[0] != "c1" || ids[1] != "c2" || ids[2] != "c4" {
		t.Errorf("expected [c1 c2 c4], got %v", ids)
	}
}

func TestDiversityPassOddLimit(t *testing.T) {
	now := time.Now()
	ref := Article{ID: "ref", Tags: []Tag{tagGo, tagRust}, CreatedAt: now}
	candidates := []Article{
		{ID: "c1", Tags: []Tag{tagGo, tagRust}, CreatedAt: now},
		{ID: "c2", Tags: []Tag{tagGo, tagRust}, CreatedAt: now},
		{ID: "c3", Tags: []Tag{tagGo, tagRust}, CreatedAt: now},
		{ID: "c4", Tags: []Tag{tagGo, tagRust}, CreatedAt: now},
		{ID: "c5", Tags: []Tag{tagSalsa}, CreatedAt: now},
	}

	// The repeat cutoff is accepted < limit/2 as a fraction: with limit 5
	// repeats are allowed while fewer than 2.5 results are in, so a third
	// same-combination candidate still gets through.
	recs := ContentBasedRecommendations(ref, candidates, nil, 5)

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	ids := []string{recs[0].Article.ID, recs[1].Article.ID, recs[2].Article.ID}
	if ids[0] != "c1" || ids[1] != "c2" || ids[2] != "c3" {
		t.Errorf("expected [c1 c2 c3], got %v", ids)
	}
}

func TestUserRecommendationsEmptyHistory(t *testing.T) {
	_, candidates := recommendFixture()

	recs := UserRecommendations(nil, candidates, 5)

	if len(recs) != 0 {
		t.Errorf("expected no recommendations without read history, got %d", len(recs))
	}
}

func TestUserRecommendationsSeedCap(t *testing.T) {
	now := time.Now()

	// Six read articles: the five newest share one tag, the oldest carries a
	// tag seen nowhere else but on one candidate. Only the five newest may
	// seed lookups, so that candidate must not surface.
	read := []Article{
		{ID: "r6", Tags: []Tag{tagCloud}, CreatedAt: now.AddDate(0, 0, -6)},
		{ID: "r1", Tags: []Tag{tagGo}, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "r2", Tags: []Tag{tagGo}, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "r3", Tags: []Tag{tagGo}, CreatedAt: now.AddDate(0, 0, -3)},
		{ID: "r4", Tags: []Tag{tagGo}, CreatedAt: now.AddDate(0, 0, -4)},
		{ID: "r5", Tags: []Tag{tagGo}, CreatedAt: now.AddDate(0, 0, -5)},
	}
	all := append([]Article{
		{ID: "cg", Tags: []Tag{tagGo}, CreatedAt: now.AddDate(0, 0, -10)},
		{ID: "cv", Tags: []Tag{tagCloud}, CreatedAt: now.AddDate(0, 0, -10)},
	}, read...)

	recs := UserRecommendations(read, all, 10)

	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Article.ID != "cg" {
		t.Errorf("expected cg via the newest seeds, got %s", recs[0].Article.ID)
	}
	for _, rec := range recs {
		if rec.Article.ID == "cv" {
			t.Error("expected the oldest read article to be dropped as a seed")
		}
	}
}

func TestUserRecommendations(t *testing.T) {
	now := time.Now()
	read := []Article{
		{ID: "r1", Tags: []Tag{tagGo}, CreatedAt: now.AddDate(0, 0, -2)},
	}
	all := []Article{
		read[0],
		{ID: "c1", Tags: []Tag{tagGo, tagCloud}, CreatedAt: now.AddDate(0, 0, -5)},
		{ID: "c2", Tags: []Tag{tagSalsa}, CreatedAt: now.AddDate(0, 0, -5)},
		{ID: "old", Tags: []Tag{tagGo}, CreatedAt: now.AddDate(-2, 0, 0)},
	}

	recs := UserRecommendations(read, all, 5)

	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Article.ID != "c1" {
		t.Errorf("expected c1, got %s", recs[0].Article.ID)
	}
	for _, rec := range recs {
		if rec.Article.ID == "r1" {
			t.Error("expected read articles excluded")
		}
		if rec.Article.ID == "old" {
			t.Error("expected candidates older than a year excluded")
		}
	}
}
