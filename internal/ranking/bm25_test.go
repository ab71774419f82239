package ranking

import (
	"testing"
)

func fillerDocs(n int) []Document {
	fillers := []Document{
		{ID: "f1", Title: "gardening tips", Content: "soil watering flowers seasons"},
		{ID: "f2", Title: "travel notes", Content: "airports packing hotels itinerary"},
		{ID: "f3", Title: "baking bread", Content: "flour yeast kneading ovens"},
	}
	return fillers[:n]
}

func TestRankDocumentsOrdering(t *testing.T) {
	docs := append([]Document{
		{ID: "a", Title: "rust memory safety", Content: "ownership borrowing lifetimes"},
		{ID: "b", Title: "cooking pasta", Content: "boiling salting draining sauces"},
	}, fillerDocs(1)...)

	results := RankDocuments("rust memory", docs, BM25Params{})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].ID != "a" {
		t.Errorf("expected doc a first, got %s", results[0].ID)
	}
	if results[0].Score <= 0 {
		t.Errorf("expected positive score, got %f", results[0].Score)
	}
}

func TestRankDocumentsEmptyQueryPassthrough(t *testing.T) {
	docs := fillerDocs(3)

	for _, query := range []string{"", "   ", "\t\n"} {
		results := RankDocuments(query, docs, BM25Params{})

		if len(results) != len(docs) {
			t.Fatalf("query %q: expected %d results, got %d", query, len(docs), len(results))
		}
		for i, r := range results {
			if r.Score != 0 {
				t.Errorf("query %q: expected score 0, got %f", query, r.Score)
			}
			if r.ID != docs[i].ID {
				t.Errorf("query %q: expected input order preserved", query)
			}
		}
	}
}

func TestRankDocumentsEmptyCollection(t *testing.T) {
	results := RankDocuments("rust", nil, BM25Params{})
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestRankDocumentsStopwordQuery(t *testing.T) {
	docs := fillerDocs(3)

	// Stopword-only queries take the normal scoring path, where every term
	// is skipped, so the positive-score filter yields nothing.
	results := RankDocuments("the and for with", docs, BM25Params{})

	if len(results) != 0 {
		t.Errorf("expected empty result for stopword query, got %d results", len(results))
	}
}

func TestFieldBoostOrdering(t *testing.T) {
	// a and b contain "rust" once each with identical document lengths; only
	// the field it appears in differs.
	docs := append([]Document{
		{ID: "a", Title: "rust handbook", Content: "systems programming notes"},
		{ID: "b", Title: "language handbook", Content: "rust programming notes"},
	}, fillerDocs(3)...)

	results := RankDocuments("rust", docs, BM25Params{})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "a" {
		t.Errorf("expected title match ranked first, got %s", results[0].ID)
	}
	if results[0].Score <= results[1].Score {
		t.Errorf("expected title boost to dominate: %f vs %f", results[0].Score, results[1].Score)
	}
}

func TestFieldBoostLadder(t *testing.T) {
	params := DefaultBM25Params()

	title := Document{Title: "rust guide"}
	subtitle := Document{Title: "guide", Subtitle: "about rust"}
	tag := Document{Title: "guide", TagNames: []string{"rust"}}
	none := Document{Title: "guide"}

	if got := fieldBoost(title, "rust", params); got != 2.0 {
		t.Errorf("title boost: expected 2.0, got %f", got)
	}
	if got := fieldBoost(subtitle, "rust", params); got != 1.5 {
		t.Errorf("subtitle boost: expected 1.5, got %f", got)
	}
	if got := fieldBoost(tag, "rust", params); got != 1.3 {
		t.Errorf("tag boost: expected 1.3, got %f", got)
	}
	if got := fieldBoost(none, "rust", params); got != 1.0 {
		t.Errorf("no boost: expected 1.0, got %f", got)
	}
}

func TestHigherK1RewardsRepetition(t *testing.T) {
	// All docs have five indexed tokens so document length equals the
	// average and the length normalization cancels out.
	docs := append([]Document{
		{ID: "a", Title: "compiler tooling", Content: "rust tooling rust"},
	}, fillerDocs(3)...)

	low := RankDocuments("rust", docs, BM25Params{K1: 1.5})
	high := RankDocuments("rust", docs, BM25Params{K1: 3.0})

	if len(low) != 1 || len(high) != 1 {
		t.Fatalf("expected 1 result each, got %d and %d", len(low), len(high))
	}
	if high[0].Score <= low[0].Score {
		t.Errorf("expected higher k1 to increase repeated-term score: %f vs %f", high[0].Score, low[0].Score)
	}
}

func TestSearchArticles(t *testing.T) {
	articles := []Article{
		{ID: "a", Title: "rust memory safety", Content: "ownership borrowing lifetimes"},
		{ID: "b", Title: "cooking pasta", Content: "boiling salting draining sauces"},
		{ID: "c", Title: "gardening tips", Content: "soil watering flowers seasons"},
	}

	results := SearchArticles("rust memory", articles, BM25Params{})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].ID != "a" {
		t.Errorf("expected article a, got %s", results[0].ID)
	}
	if results[0].Title != "rust memory safety" {
		t.Errorf("expected original article fields re-associated, got %q", results[0].Title)
	}
}

func TestStableOrderOnTies(t *testing.T) {
	// Identical documents score identically; stable sort keeps input order.
	docs := append([]Document{
		{ID: "first", Title: "rust primer", Content: "basics syntax tooling"},
		{ID: "second", Title: "rust primer", Content: "basics syntax tooling"},
	}, fillerDocs(3)...)

	results := RankDocuments("rust", docs, BM25Params{})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "first" || results[1].ID != "second" {
		t.Errorf("expected input order on ties, got %s then %s", results[0].ID, results[1].ID)
	}
}
