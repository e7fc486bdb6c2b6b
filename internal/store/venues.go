package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fyyur/internal/models"
)

const venueColumns = `id, name, city, state, address, phone, image_link,
		       facebook_link, website_link, genres, seeking_talent,
		       seeking_description, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (models.Venue, error) {
	var (
		v      models.Venue
		genres string
	)
	err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, &genres,
		&v.SeekingTalent, &v.SeekingDescription, &v.CreatedAt)
	if err != nil {
		return models.Venue{}, err
	}
	v.Genres = models.SplitGenres(genres)
	return v, nil
}

// CreateVenue inserts a venue and returns it with its generated id.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, image_link,
			                    facebook_link, website_link, genres, seeking_talent,
			                    seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at
		`,
			venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
			venue.ImageLink, venue.FacebookLink, venue.WebsiteLink,
			models.JoinGenres(venue.Genres), venue.SeekingTalent, venue.SeekingDescription,
		).Scan(&venue.ID, &venue.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert venue: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return models.Venue{}, err
	}

	venue.Genres = models.NormalizeGenres(venue.Genres)
	return venue, nil
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	v, err := scanVenue(s.db.QueryRowContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("select venue: %w", err)
	}
	return v, nil
}

// ListVenues returns venues ordered and limited by opts.
func (s *Store) ListVenues(ctx context.Context, opts ListOptions) ([]models.Venue, error) {
	clause, args := opts.clause()
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	venues := make([]models.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}
	return venues, nil
}

// VenueLocations returns each distinct (city, state) pair once.
func (s *Store) VenueLocations(ctx context.Context) ([]models.Location, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT city, state
		FROM venues
		ORDER BY state ASC, city ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select venue locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.City, &l.State); err != nil {
			return nil, fmt.Errorf("scan venue location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue locations: %w", err)
	}
	return locations, nil
}

// ListVenueSummaries returns every venue with the number of shows starting
// after now.
func (s *Store) ListVenueSummaries(ctx context.Context, now time.Time) ([]models.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id, v.name, v.city, v.state
		ORDER BY v.state ASC, v.city ASC, v.name ASC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("select venue summaries: %w", err)
	}
	defer rows.Close()

	var summaries []models.Summary
	for rows.Next() {
		var sum models.Summary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.City, &sum.State, &sum.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue summaries: %w", err)
	}
	return summaries, nil
}

// UpdateVenue loads the venue, lets apply overwrite its attributes and saves
// it, all in one transaction.
func (s *Store) UpdateVenue(ctx context.Context, id int64, apply func(*models.Venue)) (models.Venue, error) {
	var updated models.Venue
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		v, err := scanVenue(tx.QueryRowContext(ctx, `
			SELECT `+venueColumns+`
			FROM venues
			WHERE id = $1
			FOR UPDATE
		`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		if err != nil {
			return fmt.Errorf("select venue: %w", err)
		}

		apply(&v)
		v.ID = id

		if _, err := tx.ExecContext(ctx, `
			UPDATE venues
			SET name = $1, city = $2, state = $3, address = $4, phone = $5,
			    image_link = $6, facebook_link = $7, website_link = $8,
			    genres = $9, seeking_talent = $10, seeking_description = $11
			WHERE id = $12
		`,
			v.Name, v.City, v.State, v.Address, v.Phone,
			v.ImageLink, v.FacebookLink, v.WebsiteLink,
			models.JoinGenres(v.Genres), v.SeekingTalent, v.SeekingDescription, id,
		); err != nil {
			return fmt.Errorf("update venue: %w", classify(err))
		}

		updated = v
		return nil
	})
	if err != nil {
		return models.Venue{}, err
	}

	updated.Genres = models.NormalizeGenres(updated.Genres)
	return updated, nil
}

// DeleteVenue removes a venue and returns the name it had. Venues that still
// host shows are not deleted.
func (s *Store) DeleteVenue(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			SELECT name
			FROM venues
			WHERE id = $1
			FOR UPDATE
		`, id).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		if err != nil {
			return fmt.Errorf("select venue: %w", err)
		}

		hasShows, err := exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM shows WHERE venue_id = $1)`, id)
		if err != nil {
			return fmt.Errorf("check venue shows: %w", err)
		}
		if hasShows {
			return ErrVenueHasShows
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id); err != nil {
			if isForeignKeyViolation(err) {
				return ErrVenueHasShows
			}
			return fmt.Errorf("delete venue: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}
