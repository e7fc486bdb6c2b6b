package search

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/models"
)

// PGStore implements Store using PostgreSQL.
type PGStore struct {
	db *sql.DB
}

// NewPGStore creates a Store backed by the supplied database handle.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (s *PGStore) SearchVenues(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $1 ESCAPE '\'
		GROUP BY v.id, v.name, v.city, v.state
		ORDER BY v.name ASC, v.id ASC
	`, likePattern(term), now)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	return scanSummaries(rows)
}

// SearchArtists returns artists whose name, city or state contains term,
// ignoring case.
func (s *PGStore) SearchArtists(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name, a.city, a.state,
		       COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $1 ESCAPE '\'
		   OR a.city ILIKE $1 ESCAPE '\'
		   OR a.state ILIKE $1 ESCAPE '\'
		GROUP BY a.id, a.name, a.city, a.state
		ORDER BY a.name ASC, a.id ASC
	`, likePattern(term), now)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]models.Summary, error) {
	defer rows.Close()

	results := make([]models.Summary, 0)
	for rows.Next() {
		var sum models.Summary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.City, &sum.State, &sum.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		results = append(results, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}
	return results, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a substring match, escaping LIKE wildcards so
// the term matches literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
