package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
	path string
}

func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

func (db *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

func (db *DB) QueryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS articles (
		id INTEGER PRIMARY KEY,
		url TEXT UNIQUE,
		title TEXT NOT NULL,
		subtitle TEXT,
		content TEXT,
		author TEXT,
		author_verified BOOLEAN DEFAULT FALSE,
		quality_score REAL DEFAULT 0,
		likes INTEGER DEFAULT 0,
		comments INTEGER DEFAULT 0,
		reads INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS article_tags (
		article_id INTEGER NOT NULL REFERENCES articles(id),
		tag_id INTEGER NOT NULL REFERENCES tags(id),
		PRIMARY KEY (article_id, tag_id)
	);

	CREATE TABLE IF NOT EXISTS read_history (
		id INTEGER PRIMARY KEY,
		article_id INTEGER NOT NULL REFERENCES articles(id),
		read_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_articles_created ON articles(created_at);
	CREATE INDEX IF NOT EXISTS idx_article_tags_tag ON article_tags(tag_id);
	CREATE INDEX IF NOT EXISTS idx_read_history_read_at ON read_history(read_at);
	`

	_, err := db.conn.Exec(schema)
	return err
}
