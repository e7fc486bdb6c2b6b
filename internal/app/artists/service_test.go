package artists

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/app"
	"fyyur/internal/models"
	"fyyur/internal/search"
	"fyyur/internal/store"
)

var now = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	artists  map[int64]models.Artist
	shows    []models.ShowWithVenue
	listOpts []store.ListOptions
	listErr  error
	created  []models.Artist
}

func (f *fakeStore) CreateArtist(_ context.Context, artist models.Artist) (models.Artist, error) {
	artist.ID = int64(len(f.created) + 4)
	f.created = append(f.created, artist)
	return artist, nil
}

func (f *fakeStore) GetArtist(_ context.Context, id int64) (models.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return models.Artist{}, store.ErrArtistNotFound
	}
	return a, nil
}

func (f *fakeStore) ListArtists(_ context.Context, opts store.ListOptions) ([]models.Artist, error) {
	f.listOpts = append(f.listOpts, opts)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []models.Artist{{ID: 4, Name: "Guns N Petals"}}, nil
}

func (f *fakeStore) UpdateArtist(_ context.Context, id int64, apply func(*models.Artist)) (models.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return models.Artist{}, store.ErrArtistNotFound
	}
	apply(&a)
	f.artists[id] = a
	return a, nil
}

func (f *fakeStore) ListShowsByArtist(_ context.Context, artistID int64) ([]models.ShowWithVenue, error) {
	var out []models.ShowWithVenue
	for _, s := range f.shows {
		if s.ArtistID == artistID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeSearcher struct {
	kind search.Kind
}

func (f *fakeSearcher) Search(_ context.Context, kind search.Kind, _ string) (search.Result, error) {
	f.kind = kind
	return search.Result{Data: []models.Summary{}}, nil
}

func gunsNPetals() models.ArtistInput {
	return models.ArtistInput{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		FacebookLink: "https://www.facebook.com/GunsNPetals",
		Genres:       []string{"Rock n Roll"},
		SeekingVenue: true,
	}
}

func TestListOrdersByName(t *testing.T) {
	st := &fakeStore{}
	svc := New(st, &fakeSearcher{}, nil)

	artists, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, artists, 1)
	assert.Equal(t, []store.ListOptions{{}}, st.listOpts)
}

func TestListFailureIsPersistence(t *testing.T) {
	svc := New(&fakeStore{listErr: errors.New("timeout")}, &fakeSearcher{}, nil)

	_, err := svc.List(context.Background())
	var appErr *app.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app.OpList, appErr.Op)
	assert.Equal(t, app.KindPersistence, appErr.Kind)
}

func TestGetEnrichesWithVenues(t *testing.T) {
	st := &fakeStore{
		artists: map[int64]models.Artist{4: {ID: 4, Name: "Guns N Petals"}},
		shows: []models.ShowWithVenue{
			{Show: models.Show{ID: 1, ArtistID: 4, VenueID: 1, StartTime: now.AddDate(-1, 0, 0)}, VenueName: "The Musical Hop"},
			{Show: models.Show{ID: 2, ArtistID: 4, VenueID: 3, StartTime: now.AddDate(0, 1, 0)}, VenueName: "Park Square Live Music & Coffee"},
			{Show: models.Show{ID: 3, ArtistID: 5, VenueID: 3, StartTime: now.AddDate(0, 1, 0)}},
		},
	}
	svc := New(st, &fakeSearcher{}, func() time.Time { return now })

	detail, err := svc.Get(context.Background(), 4)
	require.NoError(t, err)

	require.Len(t, detail.PastShows, 1)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, "The Musical Hop", detail.PastShows[0].VenueName)
	assert.Equal(t, "Park Square Live Music & Coffee", detail.UpcomingShows[0].VenueName)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
}

func TestGetMissing(t *testing.T) {
	svc := New(&fakeStore{artists: map[int64]models.Artist{}}, &fakeSearcher{}, nil)

	_, err := svc.Get(context.Background(), 99)
	assert.True(t, app.IsNotFound(err))
	assert.ErrorIs(t, err, store.ErrArtistNotFound)
}

func TestCreate(t *testing.T) {
	st := &fakeStore{}
	svc := New(st, &fakeSearcher{}, nil)

	artist, err := svc.Create(context.Background(), gunsNPetals())
	require.NoError(t, err)
	assert.Equal(t, int64(4), artist.ID)
	assert.True(t, artist.SeekingVenue)
}

func TestCreateRejectsUnknownGenre(t *testing.T) {
	st := &fakeStore{}
	svc := New(st, &fakeSearcher{}, nil)

	input := gunsNPetals()
	input.Genres = []string{"Polka"}
	_, err := svc.Create(context.Background(), input)

	assert.Equal(t, app.KindValidation, app.KindOf(err))
	assert.Empty(t, st.created)
}

func TestUpdatePhoneOnly(t *testing.T) {
	var existing models.Artist
	gunsNPetals().Apply(&existing)
	existing.ID = 4
	st := &fakeStore{artists: map[int64]models.Artist{4: existing}}
	svc := New(st, &fakeSearcher{}, nil)

	input := models.ArtistInputFrom(existing)
	input.Phone = "300-400-5000"
	artist, err := svc.Update(context.Background(), 4, input)
	require.NoError(t, err)

	assert.Equal(t, "300-400-5000", artist.Phone)
	assert.Equal(t, "Guns N Petals", artist.Name)
	assert.Equal(t, []string{"Rock n Roll"}, artist.Genres)
	assert.Equal(t, artist, st.artists[4])
}

func TestUpdateMissing(t *testing.T) {
	svc := New(&fakeStore{artists: map[int64]models.Artist{}}, &fakeSearcher{}, nil)

	_, err := svc.Update(context.Background(), 7, gunsNPetals())
	assert.True(t, app.IsNotFound(err))
}

func TestRecentAndSearch(t *testing.T) {
	st := &fakeStore{}
	searcher := &fakeSearcher{}
	svc := New(st, searcher, nil)

	_, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, store.ListOptions{Limit: 10, Newest: true}, st.listOpts[0])

	res, err := svc.Search(context.Background(), "band")
	require.NoError(t, err)
	assert.Equal(t, search.Artists, searcher.kind)
	assert.Zero(t, res.Count)
}
