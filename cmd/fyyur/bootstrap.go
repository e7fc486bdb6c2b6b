package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

// demoStore is the subset of the store used to seed demo data.
type demoStore interface {
	ListVenues(ctx context.Context, opts store.ListOptions) ([]models.Venue, error)
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
}

// bootstrapDemoData seeds the demo venues, artists and shows into an empty
// database. A database that already lists venues is left alone.
func bootstrapDemoData(ctx context.Context, dataStore demoStore) error {
	existing, err := dataStore.ListVenues(ctx, store.ListOptions{Limit: 1})
	if err != nil {
		return fmt.Errorf("check existing venues: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	venueIDs := make([]int64, 0, len(demoVenues))
	for _, v := range demoVenues {
		created, err := dataStore.CreateVenue(ctx, v)
		if err != nil {
			return fmt.Errorf("seed venue %q: %w", v.Name, err)
		}
		venueIDs = append(venueIDs, created.ID)
	}

	artistIDs := make([]int64, 0, len(demoArtists))
	for _, a := range demoArtists {
		created, err := dataStore.CreateArtist(ctx, a)
		if err != nil {
			return fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
		artistIDs = append(artistIDs, created.ID)
	}

	for _, s := range demoShows {
		show := models.Show{
			VenueID:   venueIDs[s.venue],
			ArtistID:  artistIDs[s.artist],
			StartTime: s.start,
		}
		if _, err := dataStore.CreateShow(ctx, show); err != nil {
			return fmt.Errorf("seed show: %w", err)
		}
	}

	log.Info().
		Int("venues", len(venueIDs)).
		Int("artists", len(artistIDs)).
		Int("shows", len(demoShows)).
		Msg("Seeded demo data")
	return nil
}

var demoVenues = []models.Venue{
	{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		WebsiteLink:        "https://www.themusicalhop.com",
		Genres:             []string{"Jazz", "Reggae", "Classical", "Folk"},
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		WebsiteLink:  "https://www.theduelingpianos.com",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
		Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
	},
}

var demoArtists = []models.Artist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		WebsiteLink:        "https://www.gunsnpetalsband.com",
		Genres:             []string{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		Genres:       []string{"Jazz"},
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
		Genres:    []string{"Jazz", "Classical"},
	},
}

// demoShows index into demoVenues and demoArtists.
var demoShows = []struct {
	venue, artist int
	start         time.Time
}{
	{venue: 0, artist: 0, start: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{venue: 2, artist: 1, start: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}
