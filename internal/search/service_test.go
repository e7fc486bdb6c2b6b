package search

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
)

type venueRow struct {
	models.Summary
}

type artistRow struct {
	models.Summary
}

// fakeStore mirrors the ILIKE semantics of PGStore in memory.
type fakeStore struct {
	venues  []venueRow
	artists []artistRow
	calls   int
	lastNow time.Time
}

func contains(field, term string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(term))
}

func (f *fakeStore) SearchVenues(_ context.Context, term string, now time.Time) ([]models.Summary, error) {
	f.calls++
	f.lastNow = now
	var out []models.Summary
	for _, v := range f.venues {
		if contains(v.Name, term) {
			out = append(out, v.Summary)
		}
	}
	return out, nil
}

func (f *fakeStore) SearchArtists(_ context.Context, term string, now time.Time) ([]models.Summary, error) {
	f.calls++
	f.lastNow = now
	var out []models.Summary
	for _, a := range f.artists {
		if contains(a.Name, term) || contains(a.City, term) || contains(a.State, term) {
			out = append(out, a.Summary)
		}
	}
	return out, nil
}

func seededStore() *fakeStore {
	return &fakeStore{
		venues: []venueRow{
			{models.Summary{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"}},
			{models.Summary{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"}},
			{models.Summary{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"}},
		},
		artists: []artistRow{
			{models.Summary{ID: 4, Name: "Guns N Petals", City: "San Francisco", State: "CA"}},
			{models.Summary{ID: 5, Name: "Matt Quevedo", City: "New York", State: "NY"}},
			{models.Summary{ID: 6, Name: "The Wild Sax Band", City: "San Francisco", State: "CA"}},
		},
	}
}

func ids(r Result) []int64 {
	out := make([]int64, 0, len(r.Data))
	for _, s := range r.Data {
		out = append(out, s.ID)
	}
	return out
}

func TestSearchVenuesIsCaseInsensitive(t *testing.T) {
	svc := NewService(seededStore(), nil)

	lower, err := svc.Search(context.Background(), Venues, "hop")
	require.NoError(t, err)
	upper, err := svc.Search(context.Background(), Venues, "HOP")
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, ids(lower))
	assert.Equal(t, ids(lower), ids(upper))
}

func TestSearchVenuesSubstring(t *testing.T) {
	svc := NewService(seededStore(), nil)

	res, err := svc.Search(context.Background(), Venues, "Music")
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 3}, ids(res))
	assert.Equal(t, len(res.Data), res.Count)
}

func TestSearchArtistsMatchesNameCityOrState(t *testing.T) {
	svc := NewService(seededStore(), nil)

	tests := []struct {
		query string
		want  []int64
	}{
		{"A", []int64{4, 5, 6}},
		{"band", []int64{6}},
		{"new york", []int64{5}},
		{"ny", []int64{5}},
		{"zzz", []int64{}},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			res, err := svc.Search(context.Background(), Artists, tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(res))
			assert.Equal(t, len(tc.want), res.Count)
		})
	}
}

func TestSearchBlankQueryMatchesNothing(t *testing.T) {
	store := seededStore()
	svc := NewService(store, nil)

	for _, q := range []string{"", "   ", "\t"} {
		res, err := svc.Search(context.Background(), Venues, q)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Count)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	}
	assert.Zero(t, store.calls)
}

func TestSearchTrimsTermAndUsesClock(t *testing.T) {
	store := seededStore()
	now := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(store, func() time.Time { return now })

	res, err := svc.Search(context.Background(), Venues, "  pianos  ")
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, ids(res))
	assert.Equal(t, now, store.lastNow)
}

func TestSearchUnknownKind(t *testing.T) {
	svc := NewService(seededStore(), nil)

	_, err := svc.Search(context.Background(), Kind("shows"), "hop")
	assert.Error(t, err)
}
