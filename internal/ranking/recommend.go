package ranking

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Recommendation decorates a candidate article with its decayed similarity
// to the reference and the tag names both articles share.
type Recommendation struct {
	Article
	Similarity float64
	SharedTags []string
}

const (
	maxSeedArticles   = 5
	candidateMaxAge   = 365 // days
	recencyPenaltyMax = 0.2
	diversityKeySep   = "|"
)

// tagDocFreq counts, per tag ID, how many corpus articles carry the tag.
func tagDocFreq(corpus []Article) map[string]int {
	df := make(map[string]int)
	for _, a := range corpus {
		for _, t := range a.Tags {
			df[t.ID]++
		}
	}
	return df
}

// tagWeight is the TF-IDF-like weight of a tag within an article. Term
// frequency is binary, document frequency is smoothed, and articles with
// engagement weigh their tags higher.
func tagWeight(tagID string, a Article, df map[string]int, corpusSize int) float64 {
	if !a.hasTag(tagID) {
		return 0
	}

	idf := math.Log(float64(corpusSize+1) / float64(df[tagID]+1))
	engagement := 1 + math.Log(1+float64(a.Likes)*0.3+float64(a.Comments)*0.5+float64(a.Reads)*0.2)

	return idf * engagement
}

// WeightedJaccard computes the weighted Jaccard similarity between two
// articles' tag sets, using corpus-wide tag statistics for the weights. A
// tag is shared iff it has strictly positive weight in both articles; shared
// tag names are returned sorted.
func WeightedJaccard(a, b Article, corpus []Article) (float64, []string) {
	return weightedJaccard(a, b, tagDocFreq(corpus), len(corpus))
}

func weightedJaccard(a, b Article, df map[string]int, corpusSize int) (float64, []string) {
	union := make(map[string]bool)
	for _, t := range a.Tags {
		union[t.ID] = true
	}
	for _, t := range b.Tags {
		union[t.ID] = true
	}

	var minSum, maxSum float64
	var shared []string
	for tagID := range union {
		wa := tagWeight(tagID, a, df, corpusSize)
		wb := tagWeight(tagID, b, df, corpusSize)

		minSum += math.Min(wa, wb)
		maxSum += math.Max(wa, wb)

		if wa > 0 && wb > 0 {
			name := a.tagName(tagID)
			if name == "" {
				name = b.tagName(tagID)
			}
			shared = append(shared, name)
		}
	}

	if maxSum == 0 {
		return 0, nil
	}

	sort.Strings(shared)
	return minSum / maxSum, shared
}

// RecencyDecay penalizes older articles by up to 20%, the full penalty
// reached at one year old. Future timestamps count as age zero.
func RecencyDecay(similarity float64, createdAt, now time.Time) float64 {
	days := now.Sub(createdAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	ageFactor := math.Min(1, days/candidateMaxAge) * recencyPenaltyMax
	return similarity * (1 - ageFactor)
}

// ContentBasedRecommendations ranks candidates by decayed weighted-Jaccard
// similarity to ref, keeping only candidates that share at least one tag. A
// diversity pass keeps the top of the list from being dominated by a single
// tag combination.
func ContentBasedRecommendations(ref Article, candidates []Article, excludeIDs []string, limit int) []Recommendation {
	excluded := make(map[string]bool, len(excludeIDs)+1)
	excluded[ref.ID] = true
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	df := tagDocFreq(candidates)
	corpusSize := len(candidates)
	now := time.Now()

	var scored []Recommendation
	for _, c := range candidates {
		if excluded[c.ID] {
			continue
		}

		sim, shared := weightedJaccard(ref, c, df, corpusSize)
		if sim <= 0 || len(shared) == 0 {
			continue
		}

		scored = append(scored, Recommendation{
			Article:    c,
			Similarity: RecencyDecay(sim, c.CreatedAt, now),
			SharedTags: shared,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	return diversify(scored, limit)
}

// diversify accepts candidates in score order, skipping repeated tag
// combinations once half the quota is filled, so near-duplicate overlaps
// can still round out the result when diverse candidates run out. The half
// bound is fractional: an odd limit admits a repeat at the midpoint.
func diversify(scored []Recommendation, limit int) []Recommendation {
	used := make(map[string]bool)
	var out []Recommendation
	for _, rec := range scored {
		if len(out) >= limit {
			break
		}
		key := strings.Join(rec.SharedTags, diversityKeySep)
		if used[key] && 2*len(out) >= limit {
			continue
		}
		used[key] = true
		out = append(out, rec)
	}
	return out
}

// UserRecommendations recommends articles based on a user's read history: up
// to the 5 most recently created reads seed content-based lookups over
// candidates from the last year, and per-candidate scores merge by keeping
// the highest similarity seen across seeds.
func UserRecommendations(readArticles, allArticles []Article, limit int) []Recommendation {
	if len(readArticles) == 0 {
		return nil
	}

	seeds := make([]Article, len(readArticles))
	copy(seeds, readArticles)
	sort.SliceStable(seeds, func(i, j int) bool {
		return seeds[i].CreatedAt.After(seeds[j].CreatedAt)
	})
	if len(seeds) > maxSeedArticles {
		seeds = seeds[:maxSeedArticles]
	}

	now := time.Now()
	var candidates []Article
	for _, a := range allArticles {
		if now.Sub(a.CreatedAt).Hours()/24 <= candidateMaxAge {
			candidates = append(candidates, a)
		}
	}

	excludeIDs := make([]string, 0, len(readArticles))
	for _, a := range readArticles {
		excludeIDs = append(excludeIDs, a.ID)
	}

	best := make(map[string]Recommendation)
	for _, seed := range seeds {
		for _, rec := range ContentBasedRecommendations(seed, candidates, excludeIDs, limit) {
			if existing, ok := best[rec.Article.ID]; !ok || rec.Similarity > existing.Similarity {
				best[rec.Article.ID] = rec
			}
		}
	}

	merged := make([]Recommendation, 0, len(best))
	for _, rec := range best {
		merged = append(merged, rec)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Similarity > merged[j].Similarity
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
