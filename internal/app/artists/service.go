package artists

import (
	"context"
	"time"

	"fyyur/internal/app"
	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/search"
	"fyyur/internal/store"
)

// Store exposes the artist queries the service needs.
type Store interface {
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	ListArtists(ctx context.Context, opts store.ListOptions) ([]models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, apply func(*models.Artist)) (models.Artist, error)
	ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowWithVenue, error)
}

// Searcher runs substring searches.
type Searcher interface {
	Search(ctx context.Context, kind search.Kind, query string) (search.Result, error)
}

// Service provides artist-centric operations.
type Service interface {
	List(ctx context.Context) ([]models.Artist, error)
	Get(ctx context.Context, id int64) (models.ArtistDetail, error)
	Create(ctx context.Context, input models.ArtistInput) (models.Artist, error)
	Update(ctx context.Context, id int64, input models.ArtistInput) (models.Artist, error)
	Recent(ctx context.Context, n int) ([]models.Artist, error)
	Search(ctx context.Context, query string) (search.Result, error)
}

type service struct {
	store    Store
	searcher Searcher
	now      func() time.Time
}

// New constructs an artist Service backed by the supplied store.
func New(store Store, searcher Searcher, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, searcher: searcher, now: now}
}

func (s *service) List(ctx context.Context) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, app.Wrap(app.OpList, err)
	}

	artists, err := s.store.ListArtists(ctx, store.ListOptions{})
	if err != nil {
		return nil, app.Wrap(app.OpList, err)
	}
	return artists, nil
}

func (s *service) Get(ctx context.Context, id int64) (models.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.ArtistDetail{}, app.Wrap(app.OpGet, err)
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, app.Wrap(app.OpGet, err)
	}
	shows, err := s.store.ListShowsByArtist(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, app.Wrap(app.OpGet, err)
	}

	detail := models.ArtistDetail{
		Artist:        artist,
		PastShows:     []models.ShowWithVenue{},
		UpcomingShows: []models.ShowWithVenue{},
	}
	now := s.now()
	for _, show := range shows {
		if show.Upcoming(now) {
			detail.UpcomingShows = append(detail.UpcomingShows, show)
			continue
		}
		detail.PastShows = append(detail.PastShows, show)
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

func (s *service) Create(ctx context.Context, input models.ArtistInput) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, app.Wrap(app.OpCreate, err)
	}
	if err := forms.Validate(input); err != nil {
		return models.Artist{}, app.Wrap(app.OpCreate, err)
	}

	var artist models.Artist
	input.Apply(&artist)

	created, err := s.store.CreateArtist(ctx, artist)
	if err != nil {
		return models.Artist{}, app.Wrap(app.OpCreate, err)
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, input models.ArtistInput) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, app.Wrap(app.OpUpdate, err)
	}
	if err := forms.Validate(input); err != nil {
		return models.Artist{}, app.Wrap(app.OpUpdate, err)
	}

	updated, err := s.store.UpdateArtist(ctx, id, input.Apply)
	if err != nil {
		return models.Artist{}, app.Wrap(app.OpUpdate, err)
	}
	return updated, nil
}

func (s *service) Recent(ctx context.Context, n int) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, app.Wrap(app.OpList, err)
	}

	artists, err := s.store.ListArtists(ctx, store.ListOptions{Limit: n, Newest: true})
	if err != nil {
		return nil, app.Wrap(app.OpList, err)
	}
	return artists, nil
}

func (s *service) Search(ctx context.Context, query string) (search.Result, error) {
	if err := ctx.Err(); err != nil {
		return search.Result{}, app.Wrap(app.OpSearch, err)
	}

	res, err := s.searcher.Search(ctx, search.Artists, query)
	if err != nil {
		return search.Result{}, app.Wrap(app.OpSearch, err)
	}
	return res, nil
}
