package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is wrapped by every lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrConstraint is wrapped by every rejected write: dangling references,
	// duplicates and deletes blocked by dependent rows.
	ErrConstraint = errors.New("constraint violation")

	// ErrVenueNotFound indicates the venue id does not resolve.
	ErrVenueNotFound = fmt.Errorf("venue %w", ErrNotFound)
	// ErrArtistNotFound indicates the artist id does not resolve.
	ErrArtistNotFound = fmt.Errorf("artist %w", ErrNotFound)

	// ErrVenueHasShows blocks deleting a venue that still hosts shows.
	ErrVenueHasShows = fmt.Errorf("venue has shows: %w", ErrConstraint)
	// ErrUnknownArtist rejects a show whose artist does not exist.
	ErrUnknownArtist = fmt.Errorf("artist does not exist: %w", ErrConstraint)
	// ErrUnknownVenue rejects a show whose venue does not exist.
	ErrUnknownVenue = fmt.Errorf("venue does not exist: %w", ErrConstraint)
)

// Postgres SQLSTATE codes for integrity violations.
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
	notNullViolation    = "23502"
	checkViolation      = "23514"
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListOptions bounds and orders list queries.
type ListOptions struct {
	// Limit caps the number of rows; zero means no limit.
	Limit int
	// Newest orders by id descending instead of by name.
	Newest bool
}

func (o ListOptions) clause() (string, []any) {
	order := " ORDER BY name ASC, id ASC"
	if o.Newest {
		order = " ORDER BY id DESC"
	}
	if o.Limit > 0 {
		return order + " LIMIT $1", []any{o.Limit}
	}
	return order, nil
}

// withTx runs fn inside a single transaction. The transaction is rolled back
// unless fn returns nil and the commit succeeds.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", classify(err))
	}
	tx = nil

	return nil
}

// classify marks integrity violations reported by Postgres with ErrConstraint.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case foreignKeyViolation, uniqueViolation, notNullViolation, checkViolation:
		return fmt.Errorf("%w: %s", ErrConstraint, pgErr.Message)
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolation
	}
	return false
}

type queryRower interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func exists(ctx context.Context, q queryRower, query string, id int64) (bool, error) {
	var ok bool
	if err := q.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
