package article

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/curatorhq/curator/internal/database"
)

type Tag struct {
	ID   int64
	Name string
}

type Article struct {
	ID             int64
	URL            string
	Title          string
	Subtitle       string
	Content        string
	Author         string
	AuthorVerified bool
	QualityScore   float64
	Likes          int
	Comments       int
	Reads          int
	CreatedAt      time.Time
	Tags           []Tag
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(a Article) (*Article, error) {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var url any
	if a.URL != "" {
		url = a.URL
	}

	result, err := r.db.Exec(
		`INSERT INTO articles (url, title, subtitle, content, author, author_verified, quality_score, likes, comments, reads, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		url, a.Title, a.Subtitle, a.Content, a.Author, a.AuthorVerified, a.QualityScore,
		a.Likes, a.Comments, a.Reads, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	a.ID = id
	a.CreatedAt = createdAt
	return &a, nil
}

func (r *Repository) Exists(url string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM articles WHERE url = ?`, url).Scan(&count)
	return count > 0, err
}

func (r *Repository) Get(id int64) (*Article, error) {
	row := r.db.QueryRow(`
		SELECT id, COALESCE(url, ''), title, COALESCE(subtitle, ''), COALESCE(content, ''),
		       COALESCE(author, ''), author_verified, quality_score, likes, comments, reads, created_at
		FROM articles WHERE id = ?
	`, id)

	var a Article
	if err := row.Scan(&a.ID, &a.URL, &a.Title, &a.Subtitle, &a.Content, &a.Author,
		&a.AuthorVerified, &a.QualityScore, &a.Likes, &a.Comments, &a.Reads, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("article %d not found", id)
		}
		return nil, err
	}

	if err := r.loadTags(map[int64]*Article{a.ID: &a}); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) List(limit, offset int) ([]Article, error) {
	rows, err := r.db.Query(`
		SELECT id, COALESCE(url, ''), title, COALESCE(subtitle, ''), COALESCE(content, ''),
		       COALESCE(author, ''), author_verified, quality_score, likes, comments, reads, created_at
		FROM articles
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.URL, &a.Title, &a.Subtitle, &a.Content, &a.Author,
			&a.AuthorVerified, &a.QualityScore, &a.Likes, &a.Comments, &a.Reads, &a.CreatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID := make(map[int64]*Article, len(articles))
	for i := range articles {
		byID[articles[i].ID] = &articles[i]
	}
	if err := r.loadTags(byID); err != nil {
		return nil, err
	}
	return articles, nil
}

// Tag attaches tags to an article, creating tag rows as needed. Already
// attached tags are left alone.
func (r *Repository) Tag(articleID int64, names []string) error {
	for _, name := range names {
		if name == "" {
			continue
		}

		if _, err := r.db.Exec(`INSERT OR IGNORE INTO tags (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("failed to create tag %q: %w", name, err)
		}

		var tagID int64
		if err := r.db.QueryRow(`SELECT id FROM tags WHERE name = ?`, name).Scan(&tagID); err != nil {
			return err
		}

		if _, err := r.db.Exec(
			`INSERT OR IGNORE INTO article_tags (article_id, tag_id) VALUES (?, ?)`,
			articleID, tagID,
		); err != nil {
			return fmt.Errorf("failed to tag article %d: %w", articleID, err)
		}
	}
	return nil
}

func (r *Repository) AddLikes(id int64, n int) error {
	_, err := r.db.Exec(`UPDATE articles SET likes = likes + ? WHERE id = ?`, n, id)
	return err
}

func (r *Repository) AddComments(id int64, n int) error {
	_, err := r.db.Exec(`UPDATE articles SET comments = comments + ? WHERE id = ?`, n, id)
	return err
}

// MarkRead records a read event and bumps the article's read counter.
func (r *Repository) MarkRead(id int64) error {
	if _, err := r.db.Exec(`INSERT INTO read_history (article_id) VALUES (?)`, id); err != nil {
		return fmt.Errorf("failed to record read: %w", err)
	}
	_, err := r.db.Exec(`UPDATE articles SET reads = reads + 1 WHERE id = ?`, id)
	return err
}

// ReadHistory returns distinct read articles, most recently read first.
func (r *Repository) ReadHistory(limit int) ([]Article, error) {
	rows, err := r.db.Query(`
		SELECT a.id, COALESCE(a.url, ''), a.title, COALESCE(a.subtitle, ''), COALESCE(a.content, ''),
		       COALESCE(a.author, ''), a.author_verified, a.quality_score, a.likes, a.comments, a.reads, a.created_at
		FROM articles a
		JOIN (SELECT article_id, MAX(read_at) AS last_read FROM read_history GROUP BY article_id) h
		  ON a.id = h.article_id
		ORDER BY h.last_read DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.URL, &a.Title, &a.Subtitle, &a.Content, &a.Author,
			&a.AuthorVerified, &a.QualityScore, &a.Likes, &a.Comments, &a.Reads, &a.CreatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID := make(map[int64]*Article, len(articles))
	for i := range articles {
		byID[articles[i].ID] = &articles[i]
	}
	if err := r.loadTags(byID); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *Repository) loadTags(byID map[int64]*Article) error {
	if len(byID) == 0 {
		return nil
	}

	rows, err := r.db.Query(`
		SELECT at.article_id, t.id, t.name
		FROM article_tags at
		JOIN tags t ON at.tag_id = t.id
		ORDER BY t.name
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var articleID int64
		var tag Tag
		if err := rows.Scan(&articleID, &tag.ID, &tag.Name); err != nil {
			return err
		}
		if a, ok := byID[articleID]; ok {
			a.Tags = append(a.Tags, tag)
		}
	}
	return rows.Err()
}
