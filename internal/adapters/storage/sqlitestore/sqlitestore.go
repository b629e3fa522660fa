// Package sqlitestore implements the quote repository on an embedded SQLite
// database. It serves the local profile and tests that run without MongoDB.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen/quotebook-service/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook-service/internal/domain"
	"github.com/jsamuelsen/quotebook-service/internal/ports"
)

// ServiceName identifies this adapter in health checks, metrics and errors.
const ServiceName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS quotes (
	id       TEXT PRIMARY KEY,
	category TEXT NOT NULL,
	quote    TEXT NOT NULL,
	author   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quotes_category ON quotes (category);
`

// Store is a ports.QuoteRepository backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

var _ ports.QuoteRepository = (*Store)(nil)

// Open creates the database file if needed and applies the schema. Every
// failure wraps storage.ErrStartup.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: sqlite path is not set", storage.ErrStartup)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create db dir: %w", storage.ErrStartup, err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %w", storage.ErrStartup, err)
	}

	// One connection serializes statements. Concurrent WAL writers can fail
	// with SQLITE_BUSY_SNAPSHOT, which busy_timeout does not retry.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping sqlite: %w", storage.ErrStartup, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: apply schema: %w", storage.ErrStartup, err)
	}

	logger.Info("opened quote store",
		slog.String("store", ServiceName),
		slog.String("path", path),
	)

	return &Store{db: db}, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return ServiceName }

// Check pings the database.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle.
func (s *Store) Close(_ context.Context) error {
	return s.db.Close()
}

// Insert implements ports.QuoteRepository.
func (s *Store) Insert(ctx context.Context, draft domain.QuoteDraft) (domain.Quote, error) {
	q := domain.Quote{
		ID:       uuid.NewString(),
		Category: draft.Category,
		Text:     draft.Text,
		Author:   draft.Author,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quotes (id, category, quote, author) VALUES (?, ?, ?, ?)`,
		q.ID, q.Category, q.Text, q.Author,
	)
	if err != nil {
		return domain.Quote{}, unavailable("insert", err)
	}

	return q, nil
}

// DistinctCategories implements ports.QuoteRepository.
func (s *Store) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT category FROM quotes`)
	if err != nil {
		return nil, unavailable("distinct", err)
	}
	defer rows.Close()

	categories := []string{}

	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, unavailable("distinct", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("distinct", err)
	}

	return categories, nil
}

// SampleByCategory implements ports.QuoteRepository.
func (s *Store) SampleByCategory(ctx context.Context, category string) (domain.Quote, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, category, quote, author FROM quotes WHERE category = ? ORDER BY random() LIMIT 1`,
		category,
	)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Quote{}, false, nil
	}

	if err != nil {
		return domain.Quote{}, false, unavailable("sample", err)
	}

	return q, true, nil
}

// UpdateByID implements ports.QuoteRepository in one UPDATE ... RETURNING.
func (s *Store) UpdateByID(ctx context.Context, id string, patch domain.QuotePatch) (domain.Quote, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE quotes
		    SET category = COALESCE(?, category),
		        quote    = COALESCE(?, quote),
		        author   = COALESCE(?, author)
		  WHERE id = ?
		RETURNING id, category, quote, author`,
		nullable(patch.Category), nullable(patch.Text), nullable(patch.Author), id,
	)

	q, err := scanQuote(row)
	if err != nil {
		return domain.Quote{}, mapSingleRow(id, "update", err)
	}

	return q, nil
}

// DeleteByID implements ports.QuoteRepository in one DELETE ... RETURNING.
func (s *Store) DeleteByID(ctx context.Context, id string) (domain.Quote, error) {
	row := s.db.QueryRowContext(ctx,
		`DELETE FROM quotes WHERE id = ? RETURNING id, category, quote, author`,
		id,
	)

	q, err := scanQuote(row)
	if err != nil {
		return domain.Quote{}, mapSingleRow(id, "delete", err)
	}

	return q, nil
}

func scanQuote(row *sql.Row) (domain.Quote, error) {
	var q domain.Quote

	err := row.Scan(&q.ID, &q.Category, &q.Text, &q.Author)

	return q, err
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func mapSingleRow(id, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(domain.EntityQuote, id)
	}

	return unavailable(op, err)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w", op, domain.NewUnavailableError(ServiceName, err.Error()))
}
