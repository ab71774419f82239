package ranking

import "time"

// Tag identifies a categorical label. ID is used for identity matching,
// Name for display and grouping.
type Tag struct {
	ID   string
	Name string
}

// Article is the read-only view every scorer operates on. Only the fields a
// given scorer needs have to be populated; none are ever mutated.
type Article struct {
	ID       string
	Title    string
	Subtitle string
	Content  string

	Tags []Tag

	Likes    int
	Comments int
	Reads    int

	CreatedAt time.Time

	AuthorVerified bool
	QualityScore   float64
}

func (a Article) hasTag(tagID string) bool {
	for _, t := range a.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

func (a Article) tagName(tagID string) string {
	for _, t := range a.Tags {
		if t.ID == tagID {
			return t.Name
		}
	}
	return ""
}
