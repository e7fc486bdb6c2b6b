package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fyyur/internal/models"
)

const artistColumns = `id, name, city, state, phone, image_link, facebook_link,
		       website_link, genres, seeking_venue, seeking_description,
		       created_at`

func scanArtist(row rowScanner) (models.Artist, error) {
	var (
		a      models.Artist
		genres string
	)
	err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &a.WebsiteLink, &genres, &a.SeekingVenue,
		&a.SeekingDescription, &a.CreatedAt)
	if err != nil {
		return models.Artist{}, err
	}
	a.Genres = models.SplitGenres(genres)
	return a, nil
}

// CreateArtist inserts an artist and returns it with its generated id.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, image_link, facebook_link,
			                     website_link, genres, seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, created_at
		`,
			artist.Name, artist.City, artist.State, artist.Phone, artist.ImageLink,
			artist.FacebookLink, artist.WebsiteLink, models.JoinGenres(artist.Genres),
			artist.SeekingVenue, artist.SeekingDescription,
		).Scan(&artist.ID, &artist.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert artist: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return models.Artist{}, err
	}

	artist.Genres = models.NormalizeGenres(artist.Genres)
	return artist, nil
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	a, err := scanArtist(s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("select artist: %w", err)
	}
	return a, nil
}

// ListArtists returns artists ordered and limited by opts.
func (s *Store) ListArtists(ctx context.Context, opts ListOptions) ([]models.Artist, error) {
	clause, args := opts.clause()
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	artists := make([]models.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

// UpdateArtist loads the artist, lets apply overwrite its attributes and
// saves it, all in one transaction.
func (s *Store) UpdateArtist(ctx context.Context, id int64, apply func(*models.Artist)) (models.Artist, error) {
	var updated models.Artist
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		a, err := scanArtist(tx.QueryRowContext(ctx, `
			SELECT `+artistColumns+`
			FROM artists
			WHERE id = $1
			FOR UPDATE
		`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		if err != nil {
			return fmt.Errorf("select artist: %w", err)
		}

		apply(&a)
		a.ID = id

		if _, err := tx.ExecContext(ctx, `
			UPDATE artists
			SET name = $1, city = $2, state = $3, phone = $4, image_link = $5,
			    facebook_link = $6, website_link = $7, genres = $8,
			    seeking_venue = $9, seeking_description = $10
			WHERE id = $11
		`,
			a.Name, a.City, a.State, a.Phone, a.ImageLink,
			a.FacebookLink, a.WebsiteLink, models.JoinGenres(a.Genres),
			a.SeekingVenue, a.SeekingDescription, id,
		); err != nil {
			return fmt.Errorf("update artist: %w", classify(err))
		}

		updated = a
		return nil
	})
	if err != nil {
		return models.Artist{}, err
	}

	updated.Genres = models.NormalizeGenres(updated.Genres)
	return updated, nil
}
