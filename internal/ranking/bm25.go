package ranking

import (
	"math"
	"sort"
	"strings"
)

// Document is the lexical view used by BM25 scoring.
type Document struct {
	ID       string
	Title    string
	Subtitle string
	Content  string
	TagNames []string
}

// ScoredDocument decorates a document with its BM25 score.
type ScoredDocument struct {
	Document
	Score float64
}

// SearchResult decorates an article with its BM25 score.
type SearchResult struct {
	Article
	Score float64
}

// BM25Params tunes the lexical scorer. Zero-value fields fall back to the
// defaults, so callers only set what they want to override.
type BM25Params struct {
	K1            float64 // term frequency saturation
	B             float64 // document length normalization
	TitleBoost    float64
	SubtitleBoost float64
	TagBoost      float64
}

func DefaultBM25Params() BM25Params {
	return BM25Params{
		K1:            1.5,
		B:             0.75,
		TitleBoost:    2.0,
		SubtitleBoost: 1.5,
		TagBoost:      1.3,
	}
}

func (p BM25Params) withDefaults() BM25Params {
	def := DefaultBM25Params()
	if p.K1 == 0 {
		p.K1 = def.K1
	}
	if p.B == 0 {
		p.B = def.B
	}
	if p.TitleBoost == 0 {
		p.TitleBoost = def.TitleBoost
	}
	if p.SubtitleBoost == 0 {
		p.SubtitleBoost = def.SubtitleBoost
	}
	if p.TagBoost == 0 {
		p.TagBoost = def.TagBoost
	}
	return p
}

func (d Document) indexedText() string {
	return d.Title + " " + d.Subtitle + " " + d.Content
}

// buildInvertedIndex maps each non-stopword term to the set of document IDs
// containing it. The index is rebuilt fresh for every scoring call.
func buildInvertedIndex(docs []Document) map[string]map[string]struct{} {
	index := make(map[string]map[string]struct{})
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range Tokenize(doc.indexedText()) {
			if stopwords[term] || seen[term] {
				continue
			}
			seen[term] = true
			if index[term] == nil {
				index[term] = make(map[string]struct{})
			}
			index[term][doc.ID] = struct{}{}
		}
	}
	return index
}

func avgDocLength(docs []Document) float64 {
	if len(docs) == 0 {
		return 0
	}
	total := 0
	for _, doc := range docs {
		total += len(Tokenize(doc.indexedText()))
	}
	return float64(total) / float64(len(docs))
}

// RankDocuments scores docs against query with BM25 plus field boosts and
// returns positive-scoring documents in descending score order. Equal scores
// keep their relative input order. An empty or whitespace-only query, or an
// empty collection, returns every document with score 0 unfiltered.
func RankDocuments(query string, docs []Document, params BM25Params) []ScoredDocument {
	params = params.withDefaults()

	if strings.TrimSpace(query) == "" || len(docs) == 0 {
		passthrough := make([]ScoredDocument, 0, len(docs))
		for _, doc := range docs {
			passthrough = append(passthrough, ScoredDocument{Document: doc})
		}
		return passthrough
	}

	index := buildInvertedIndex(docs)
	avgLen := avgDocLength(docs)
	n := len(docs)
	queryTerms := Tokenize(query)

	var results []ScoredDocument
	for _, doc := range docs {
		tokens := Tokenize(doc.indexedText())
		score := scoreDocument(doc, tokens, queryTerms, index, n, avgLen, params)
		if score > 0 {
			results = append(results, ScoredDocument{Document: doc, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

func scoreDocument(doc Document, tokens, queryTerms []string, index map[string]map[string]struct{}, totalDocs int, avgLen float64, params BM25Params) float64 {
	var score float64
	for _, term := range queryTerms {
		if stopwords[term] {
			continue
		}
		containing := len(index[term])
		if containing == 0 {
			continue
		}

		idf := math.Log((float64(totalDocs-containing) + 0.5) / (float64(containing) + 0.5))
		if idf <= 0 {
			continue
		}

		tf := 0
		for _, token := range tokens {
			if token == term {
				tf++
			}
		}
		if tf == 0 {
			continue
		}

		docLen := float64(len(tokens))
		termScore := idf * (float64(tf) * (params.K1 + 1)) /
			(float64(tf) + params.K1*(1-params.B+params.B*docLen/avgLen))

		score += termScore * fieldBoost(doc, term, params)
	}
	return score
}

// fieldBoost rewards terms appearing in prominent fields: title beats
// subtitle beats tag names. Matching is case-insensitive substring.
func fieldBoost(doc Document, term string, params BM25Params) float64 {
	if strings.Contains(strings.ToLower(doc.Title), term) {
		return params.TitleBoost
	}
	if strings.Contains(strings.ToLower(doc.Subtitle), term) {
		return params.SubtitleBoost
	}
	for _, name := range doc.TagNames {
		if strings.Contains(strings.ToLower(name), term) {
			return params.TagBoost
		}
	}
	return 1.0
}

// SearchArticles adapts articles into the document view, ranks them with
// BM25, and re-associates scores back to the original records by ID.
func SearchArticles(query string, articles []Article, params BM25Params) []SearchResult {
	byID := make(map[string]Article, len(articles))
	docs := make([]Document, 0, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
		names := make([]string, 0, len(a.Tags))
		for _, t := range a.Tags {
			names = append(names, t.Name)
		}
		docs = append(docs, Document{
			ID:       a.ID,
			Title:    a.Title,
			Subtitle: a.Subtitle,
			Content:  a.Content,
			TagNames: names,
		})
	}

	ranked := RankDocuments(query, docs, params)
	results := make([]SearchResult, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, SearchResult{Article: byID[r.ID], Score: r.Score})
	}
	return results
}
