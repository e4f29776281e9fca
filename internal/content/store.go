package content

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"filmlog/internal/domain"
	"filmlog/internal/logging"
)

// Lists stored in the titles table
const (
	listTitles    = "titles"
	listWatchlist = "watchlist"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS titles (
		list TEXT NOT NULL,
		imdb_id TEXT NOT NULL,
		title TEXT,
		sort_title TEXT,
		release_year TEXT,
		release_sequence TEXT,
		review_date TEXT,
		review_year TEXT,
		review_sequence TEXT,
		grade TEXT,
		grade_value INTEGER,
		genres TEXT,
		slug TEXT,
		directors TEXT,
		performers TEXT,
		writers TEXT,
		collections TEXT,
		PRIMARY KEY (list, imdb_id)
	);`,
	`CREATE TABLE IF NOT EXISTS cast_and_crew (
		slug TEXT PRIMARY KEY,
		name TEXT,
		credited_as TEXT,
		review_count INTEGER,
		total_count INTEGER
	);`,
	`CREATE TABLE IF NOT EXISTS collections (
		slug TEXT PRIMARY KEY,
		name TEXT,
		description TEXT,
		review_count INTEGER,
		title_count INTEGER
	);`,
}

// Store keeps the content export in SQLite
type Store struct {
	db *sql.DB
}

// New wraps an open database. Call Migrate before use.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the database at path and creates the schema
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content store: %w", err)
	}
	for _, pragma := range []string{"PRAGMA journal_mode=WAL;", "PRAGMA synchronous=NORMAL;"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to configure content store: %w", err)
		}
	}
	s := New(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates missing tables
func (s *Store) Migrate(ctx context.Context) error {
	for _, q := range schema {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}

// Import replaces the stored content with e in one transaction
func (s *Store) Import(ctx context.Context, e *Export) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"titles", "cast_and_crew", "collections"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := insertTitles(ctx, tx, listTitles, e.Titles); err != nil {
		return err
	}
	if err := insertTitles(ctx, tx, listWatchlist, e.Watchlist); err != nil {
		return err
	}
	if err := insertCastAndCrew(ctx, tx, e.CastAndCrew); err != nil {
		return err
	}
	if err := insertCollections(ctx, tx, e.Collections); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	log := logging.Logger()
	log.Info().
		Int("titles", len(e.Titles)).
		Int("watchlist", len(e.Watchlist)).
		Int("cast_and_crew", len(e.CastAndCrew)).
		Int("collections", len(e.Collections)).
		Msg("content imported")
	return nil
}

func insertTitles(ctx context.Context, tx *sql.Tx, list string, titles []domain.Title) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO titles
		(list, imdb_id, title, sort_title, release_year, release_sequence, review_date, review_year,
		 review_sequence, grade, grade_value, genres, slug, directors, performers, writers, collections)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", list, err)
	}
	defer stmt.Close()

	for _, t := range titles {
		_, err := stmt.ExecContext(ctx, list, t.ImdbID, t.Title, t.SortTitle, t.ReleaseYear, t.ReleaseSequence,
			t.ReviewDate, t.ReviewYear, t.ReviewSequence, t.Grade, t.GradeValue, joinList(t.Genres), t.Slug,
			joinList(t.Directors), joinList(t.Performers), joinList(t.Writers), joinList(t.Collections))
		if err != nil {
			return fmt.Errorf("failed to insert %s %s: %w", list, t.ImdbID, err)
		}
	}
	return nil
}

func insertCastAndCrew(ctx context.Context, tx *sql.Tx, members []domain.CastAndCrewMember) error {
	for _, m := range members {
		_, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO cast_and_crew
			(slug, name, credited_as, review_count, total_count) VALUES (?, ?, ?, ?, ?)`,
			m.Slug, m.Name, joinList(m.CreditedAs), m.ReviewCount, m.TotalCount)
		if err != nil {
			return fmt.Errorf("failed to insert cast and crew %s: %w", m.Slug, err)
		}
	}
	return nil
}

func insertCollections(ctx context.Context, tx *sql.Tx, collections []domain.Collection) error {
	for _, c := range collections {
		_, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO collections
			(slug, name, description, review_count, title_count) VALUES (?, ?, ?, ?, ?)`,
			c.Slug, c.Name, c.Description, c.ReviewCount, c.TitleCount)
		if err != nil {
			return fmt.Errorf("failed to insert collection %s: %w", c.Slug, err)
		}
	}
	return nil
}

// ListTitles returns the reviewed and unreviewed titles in import order
func (s *Store) ListTitles(ctx context.Context) ([]domain.Title, error) {
	return s.listTitles(ctx, listTitles)
}

// ListWatchlist returns the watchlist in import order
func (s *Store) ListWatchlist(ctx context.Context) ([]domain.Title, error) {
	return s.listTitles(ctx, listWatchlist)
}

func (s *Store) listTitles(ctx context.Context, list string) ([]domain.Title, error) {
	const query = `SELECT imdb_id, title, sort_title, release_year, release_sequence, review_date, review_year,
		review_sequence, grade, grade_value, genres, slug, directors, performers, writers, collections
		FROM titles WHERE list = ? ORDER BY rowid`
	rows, err := s.db.QueryContext(ctx, query, list)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", list, err)
	}
	defer rows.Close()

	var titles []domain.Title
	for rows.Next() {
		var t domain.Title
		var genres, directors, performers, writers, collections string
		if err := rows.Scan(&t.ImdbID, &t.Title, &t.SortTitle, &t.ReleaseYear, &t.ReleaseSequence, &t.ReviewDate,
			&t.ReviewYear, &t.ReviewSequence, &t.Grade, &t.GradeValue, &genres, &t.Slug,
			&directors, &performers, &writers, &collections); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", list, err)
		}
		t.Genres = splitList(genres)
		t.Directors = splitList(directors)
		t.Performers = splitList(performers)
		t.Writers = splitList(writers)
		t.Collections = splitList(collections)
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

// ListCastAndCrew returns every cast and crew member in import order
func (s *Store) ListCastAndCrew(ctx context.Context) ([]domain.CastAndCrewMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, name, credited_as, review_count, total_count FROM cast_and_crew ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cast and crew: %w", err)
	}
	defer rows.Close()

	var members []domain.CastAndCrewMember
	for rows.Next() {
		var m domain.CastAndCrewMember
		var credits string
		if err := rows.Scan(&m.Slug, &m.Name, &credits, &m.ReviewCount, &m.TotalCount); err != nil {
			return nil, fmt.Errorf("failed to scan cast and crew: %w", err)
		}
		m.CreditedAs = splitList(credits)
		members = append(members, m)
	}
	return members, rows.Err()
}

// ListCollections returns every collection in import order
func (s *Store) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, name, description, review_count, title_count FROM collections ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	var collections []domain.Collection
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.Slug, &c.Name, &c.Description, &c.ReviewCount, &c.TitleCount); err != nil {
			return nil, fmt.Errorf("failed to scan collections: %w", err)
		}
		collections = append(collections, c)
	}
	return collections, rows.Err()
}

// Multi-valued columns hold a JSON array so names containing commas survive.
func joinList(values []string) string {
	if len(values) == 0 {
		return ""
	}
	data, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(data)
}

func splitList(column string) []string {
	if column == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(column), &values); err != nil {
		return nil
	}
	return values
}
