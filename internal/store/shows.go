package store

import (
	"context"
	"database/sql"
	"fmt"

	"fyyur/internal/models"
)

// CreateShow books an artist at a venue. Both must exist when the
// transaction commits.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`, show.ArtistID)
		if err != nil {
			return fmt.Errorf("check artist: %w", err)
		}
		if !ok {
			return ErrUnknownArtist
		}

		ok, err = exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1)`, show.VenueID)
		if err != nil {
			return fmt.Errorf("check venue: %w", err)
		}
		if !ok {
			return ErrUnknownVenue
		}

		if err := tx.QueryRowContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`, show.ArtistID, show.VenueID, show.StartTime).Scan(&show.ID); err != nil {
			return fmt.Errorf("insert show: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return models.Show{}, err
	}
	return show, nil
}

// ListShows returns every show with its artist and venue inlined.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.artist_id, s.venue_id, s.start_time,
		       v.name AS venue_name, a.name AS artist_name,
		       a.image_link AS artist_image_link
		FROM shows s
		INNER JOIN venues v ON s.venue_id = v.id
		INNER JOIN artists a ON s.artist_id = a.id
		ORDER BY s.start_time ASC, s.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	shows := make([]models.ShowListing, 0)
	for rows.Next() {
		var sh models.ShowListing
		if err := rows.Scan(&sh.ID, &sh.ArtistID, &sh.VenueID, &sh.StartTime,
			&sh.VenueName, &sh.ArtistName, &sh.ArtistImageLink); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}
	return shows, nil
}

// ListShowsByVenue returns the shows hosted by a venue with the artist inlined.
func (s *Store) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowWithArtist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.artist_id, s.venue_id, s.start_time,
		       a.name AS artist_name, a.image_link AS artist_image_link
		FROM shows s
		INNER JOIN artists a ON s.artist_id = a.id
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC, s.id ASC
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("select venue shows: %w", err)
	}
	defer rows.Close()

	var shows []models.ShowWithArtist
	for rows.Next() {
		var sh models.ShowWithArtist
		if err := rows.Scan(&sh.ID, &sh.ArtistID, &sh.VenueID, &sh.StartTime,
			&sh.ArtistName, &sh.ArtistImageLink); err != nil {
			return nil, fmt.Errorf("scan venue show: %w", err)
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue shows: %w", err)
	}
	return shows, nil
}

// ListShowsByArtist returns the shows an artist plays with the venue inlined.
func (s *Store) ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowWithVenue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.artist_id, s.venue_id, s.start_time,
		       v.name AS venue_name, v.image_link AS venue_image_link
		FROM shows s
		INNER JOIN venues v ON s.venue_id = v.id
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC, s.id ASC
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select artist shows: %w", err)
	}
	defer rows.Close()

	var shows []models.ShowWithVenue
	for rows.Next() {
		var sh models.ShowWithVenue
		if err := rows.Scan(&sh.ID, &sh.ArtistID, &sh.VenueID, &sh.StartTime,
			&sh.VenueName, &sh.VenueImageLink); err != nil {
			return nil, fmt.Errorf("scan artist show: %w", err)
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist shows: %w", err)
	}
	return shows, nil
}
