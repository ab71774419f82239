package ranking

import (
	"math"
	"sort"
	"strings"
	"time"
)

// TrendingArticle decorates an article with its hot score and the
// intermediate signals that produced it.
type TrendingArticle struct {
	Article
	HotScore        float64
	EngagementScore float64
	TimeDecay       float64
}

// TrendingFilters tunes trending eligibility and decay. Use
// DefaultTrendingFilters and override individual fields; a zero DecayDays or
// Gravity falls back to its default.
type TrendingFilters struct {
	MinLikes            int
	MinComments         int
	MaxAgeDays          int // <= 0 disables the age filter
	UseLogarithmicDecay bool
	DecayDays           float64
	Gravity             float64
}

func DefaultTrendingFilters() TrendingFilters {
	return TrendingFilters{
		MinLikes:    1,
		MinComments: 0,
		MaxAgeDays:  90,
		DecayDays:   7,
		Gravity:     1.8,
	}
}

func (f TrendingFilters) withDefaults() TrendingFilters {
	if f.DecayDays == 0 {
		f.DecayDays = 7
	}
	if f.Gravity == 0 {
		f.Gravity = 1.8
	}
	return f
}

// EngagementScore is a weighted log scale over engagement counters, so viral
// articles don't dominate linearly. Comments weigh more than likes, likes
// more than reads.
func EngagementScore(a Article) float64 {
	return math.Log(1 + float64(a.Likes)*2 + float64(a.Comments)*3 + float64(a.Reads))
}

// ExponentialDecay halves roughly every decayDays*ln(2) days.
func ExponentialDecay(createdAt, now time.Time, decayDays float64) float64 {
	days := now.Sub(createdAt).Hours() / 24
	return math.Exp(-days / decayDays)
}

// LogarithmicDecay is a Hacker-News-style gravity decay over hours.
func LogarithmicDecay(createdAt, now time.Time, gravity float64) float64 {
	hours := now.Sub(createdAt).Hours()
	return 1 / math.Pow(1+hours/12, gravity)
}

// HotScore combines engagement and time decay, then applies verified-author
// and quality boosts. Quality only helps above 70, at +0.5% per point.
func HotScore(a Article, now time.Time, filters TrendingFilters) TrendingArticle {
	filters = filters.withDefaults()

	engagement := EngagementScore(a)

	var decay float64
	if filters.UseLogarithmicDecay {
		decay = LogarithmicDecay(a.CreatedAt, now, filters.Gravity)
	} else {
		decay = ExponentialDecay(a.CreatedAt, now, filters.DecayDays)
	}

	score := engagement * decay
	if a.AuthorVerified {
		score *= 1.1
	}
	if a.QualityScore > 70 {
		score *= 1 + ((a.QualityScore-70)/10)*0.05
	}

	return TrendingArticle{
		Article:         a,
		HotScore:        score,
		EngagementScore: engagement,
		TimeDecay:       decay,
	}
}

// RankTrending filters articles by engagement and age, scores survivors, and
// returns the top limit by hot score. An article is rejected on engagement
// only when it fails BOTH the likes and comments thresholds.
func RankTrending(articles []Article, filters TrendingFilters, limit int) []TrendingArticle {
	filters = filters.withDefaults()
	now := time.Now()

	var ranked []TrendingArticle
	for _, a := range articles {
		if a.Likes < filters.MinLikes && a.Comments < filters.MinComments {
			continue
		}
		if filters.MaxAgeDays > 0 {
			days := now.Sub(a.CreatedAt).Hours() / 24
			if days > float64(filters.MaxAgeDays) {
				continue
			}
		}
		ranked = append(ranked, HotScore(a, now, filters))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HotScore > ranked[j].HotScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TrendingByPeriod maps a named period to an age window and ranks with the
// default filters: WEEK is 7 days, MONTH 30, YEAR 365, anything else 90.
func TrendingByPeriod(articles []Article, period string, limit int) []TrendingArticle {
	filters := DefaultTrendingFilters()

	switch strings.ToUpper(period) {
	case "WEEK":
		filters.MaxAgeDays = 7
	case "MONTH":
		filters.MaxAgeDays = 30
	case "YEAR":
		filters.MaxAgeDays = 365
	default:
		filters.MaxAgeDays = 90
	}

	return RankTrending(articles, filters, limit)
}
