// Package history persists what a browsing session looked at: a visit
// log of dotted paths plus user bookmarks, in a small sqlite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Visit is one recorded navigation to a dotted path.
type Visit struct {
	ID        string
	SessionID string
	Path      string
	TypeLabel string
	VisitedAt time.Time
}

// Bookmark is a saved dotted path.
type Bookmark struct {
	ID        string
	Path      string
	Label     string
	CreatedAt time.Time
}

// Store wraps the history database. Each Store carries the session id
// stamped onto visits it records.
type Store struct {
	db        *sql.DB
	sessionID string
}

// Open opens (creating if needed) the history database at path and
// brings the schema up to date.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir history dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db, sessionID: uuid.NewString()}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SessionID identifies this run in the visit log.
func (s *Store) SessionID() string { return s.sessionID }

// RecordVisit logs that path was browsed in this session.
func (s *Store) RecordVisit(ctx context.Context, path, typeLabel string) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO visits(id, session_id, path, type_label)
	VALUES (?, ?, ?, ?);
	`, uuid.NewString(), s.sessionID, path, typeLabel)
	return err
}

// RecentVisits returns the most recent visit per distinct path, newest
// first, at most limit rows.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT v.id, v.session_id, v.path, v.type_label, v.visited_at
	FROM visits v
	JOIN (SELECT path, MAX(visited_at) AS latest FROM visits GROUP BY path) g
	  ON g.path = v.path AND g.latest = v.visited_at
	GROUP BY v.path
	ORDER BY v.visited_at DESC, v.path
	LIMIT ?;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.SessionID, &v.Path, &v.TypeLabel, &v.VisitedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// AddBookmark saves path, replacing any previous bookmark of the same
// path.
func (s *Store) AddBookmark(ctx context.Context, path, label string) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO bookmarks(id, path, label)
	VALUES (?, ?, ?)
	ON CONFLICT(path) DO UPDATE SET
	 label=excluded.label;
	`, uuid.NewString(), path, label)
	return err
}

// Bookmarks lists saved paths in creation order.
func (s *Store) Bookmarks(ctx context.Context) ([]Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, path, label, created_at FROM bookmarks ORDER BY created_at, path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Bookmark
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.Path, &b.Label, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// RemoveBookmark deletes the bookmark for path, if present.
func (s *Store) RemoveBookmark(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE path = ?`, path)
	return err
}
