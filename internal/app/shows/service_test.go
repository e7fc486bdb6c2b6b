package shows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/app"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

type fakeStore struct {
	artists map[int64]bool
	venues  map[int64]bool
	shows   []models.Show
}

func (f *fakeStore) CreateShow(_ context.Context, show models.Show) (models.Show, error) {
	if !f.artists[show.ArtistID] {
		return models.Show{}, store.ErrUnknownArtist
	}
	if !f.venues[show.VenueID] {
		return models.Show{}, store.ErrUnknownVenue
	}
	show.ID = int64(len(f.shows) + 1)
	f.shows = append(f.shows, show)
	return show, nil
}

func (f *fakeStore) ListShows(context.Context) ([]models.ShowListing, error) {
	out := make([]models.ShowListing, 0, len(f.shows))
	for _, s := range f.shows {
		out = append(out, models.ShowListing{Show: s})
	}
	return out, nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		artists: map[int64]bool{4: true, 5: true},
		venues:  map[int64]bool{1: true, 3: true},
	}
}

var start = time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

func TestCreateShow(t *testing.T) {
	st := newFakeStore()
	svc := New(st)

	show, err := svc.Create(context.Background(), models.ShowInput{ArtistID: 4, VenueID: 1, StartTime: start})
	require.NoError(t, err)
	assert.Equal(t, int64(1), show.ID)
	assert.True(t, show.StartTime.Equal(start))

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestCreateShowDanglingReference(t *testing.T) {
	tests := []struct {
		name  string
		input models.ShowInput
		want  error
	}{
		{"unknown artist", models.ShowInput{ArtistID: 99, VenueID: 1, StartTime: start}, store.ErrUnknownArtist},
		{"unknown venue", models.ShowInput{ArtistID: 4, VenueID: 99, StartTime: start}, store.ErrUnknownVenue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := newFakeStore()
			svc := New(st)

			_, err := svc.Create(context.Background(), tc.input)
			var appErr *app.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, app.OpCreate, appErr.Op)
			assert.Equal(t, app.KindConstraint, appErr.Kind)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, st.shows)
		})
	}
}

func TestCreateShowValidation(t *testing.T) {
	st := newFakeStore()
	svc := New(st)

	_, err := svc.Create(context.Background(), models.ShowInput{ArtistID: 4, VenueID: 1})
	assert.Equal(t, app.KindValidation, app.KindOf(err))
	assert.Empty(t, st.shows)
}
