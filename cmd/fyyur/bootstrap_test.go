package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

type memoryStore struct {
	venues  []models.Venue
	artists []models.Artist
	shows   []models.Show
}

func (m *memoryStore) ListVenues(context.Context, store.ListOptions) ([]models.Venue, error) {
	return m.venues, nil
}

func (m *memoryStore) CreateVenue(_ context.Context, v models.Venue) (models.Venue, error) {
	v.ID = int64(len(m.venues) + 1)
	m.venues = append(m.venues, v)
	return v, nil
}

func (m *memoryStore) CreateArtist(_ context.Context, a models.Artist) (models.Artist, error) {
	a.ID = int64(len(m.artists) + 100)
	m.artists = append(m.artists, a)
	return a, nil
}

func (m *memoryStore) CreateShow(_ context.Context, s models.Show) (models.Show, error) {
	m.shows = append(m.shows, s)
	return s, nil
}

func TestBootstrapSeedsEmptyDatabaseOnce(t *testing.T) {
	st := &memoryStore{}

	require.NoError(t, bootstrapDemoData(context.Background(), st))
	assert.Len(t, st.venues, len(demoVenues))
	assert.Len(t, st.artists, len(demoArtists))
	require.Len(t, st.shows, len(demoShows))
	assert.Equal(t, int64(1), st.shows[0].VenueID)
	assert.Equal(t, int64(100), st.shows[0].ArtistID)

	require.NoError(t, bootstrapDemoData(context.Background(), st))
	assert.Len(t, st.venues, len(demoVenues))
}

func TestDemoDataPassesFormValidation(t *testing.T) {
	for _, v := range demoVenues {
		assert.NoError(t, forms.Validate(models.VenueInputFrom(v)), v.Name)
	}
	for _, a := range demoArtists {
		assert.NoError(t, forms.Validate(models.ArtistInputFrom(a)), a.Name)
	}
}
