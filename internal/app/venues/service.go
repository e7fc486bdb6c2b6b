package venues

import (
	"context"
	"time"

	"fyyur/internal/app"
	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/search"
	"fyyur/internal/store"
)

// Store defines the persistence operations venues rely on.
type Store interface {
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	ListVenues(ctx context.Context, opts store.ListOptions) ([]models.Venue, error)
	VenueLocations(ctx context.Context) ([]models.Location, error)
	ListVenueSummaries(ctx context.Context, now time.Time) ([]models.Summary, error)
	UpdateVenue(ctx context.Context, id int64, apply func(*models.Venue)) (models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) (string, error)
	ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowWithArtist, error)
}

// Searcher runs substring searches.
type Searcher interface {
	Search(ctx context.Context, kind search.Kind, query string) (search.Result, error)
}

// Service coordinates venue operations.
type Service interface {
	ListGroupedByLocation(ctx context.Context) ([]models.Area, error)
	Get(ctx context.Context, id int64) (models.VenueDetail, error)
	Create(ctx context.Context, input models.VenueInput) (models.Venue, error)
	Update(ctx context.Context, id int64, input models.VenueInput) (models.Venue, error)
	Delete(ctx context.Context, id int64) (string, error)
	Recent(ctx context.Context, n int) ([]models.Venue, error)
	Search(ctx context.Context, query string) (search.Result, error)
}

type service struct {
	store    Store
	searcher Searcher
	now      func() time.Time
}

// New constructs a venue Service. A nil clock defaults to time.Now.
func New(store Store, searcher Searcher, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, searcher: searcher, now: now}
}

func (s *service) ListGroupedByLocation(ctx context.Context) ([]models.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, app.Wrap(app.OpList, err)
	}

	locations, err := s.store.VenueLocations(ctx)
	if err != nil {
		return nil, app.Wrap(app.OpList, err)
	}
	summaries, err := s.store.ListVenueSummaries(ctx, s.now())
	if err != nil {
		return nil, app.Wrap(app.OpList, err)
	}

	byLocation := make(map[models.Location][]models.Summary, len(locations))
	for _, sum := range summaries {
		key := models.Location{City: sum.City, State: sum.State}
		byLocation[key] = append(byLocation[key], sum)
	}

	areas := make([]models.Area, 0, len(locations))
	seen := make(map[models.Location]bool, len(locations))
	for _, loc := range locations {
		if seen[loc] {
			continue
		}
		seen[loc] = true

		venues := byLocation[loc]
		if venues == nil {
			venues = []models.Summary{}
		}
		areas = append(areas, models.Area{City: loc.City, State: loc.State, Venues: venues})
	}
	return areas, nil
}

func (s *service) Get(ctx context.Context, id int64) (models.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.VenueDetail{}, app.Wrap(app.OpGet, err)
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return models.VenueDetail{}, app.Wrap(app.OpGet, err)
	}
	shows, err := s.store.ListShowsByVenue(ctx, id)
	if err != nil {
		return models.VenueDetail{}, app.Wrap(app.OpGet, err)
	}

	detail := models.VenueDetail{
		Venue:         venue,
		PastShows:     []models.ShowWithArtist{},
		UpcomingShows: []models.ShowWithArtist{},
	}
	now := s.now()
	for _, show := range shows {
		if show.Upcoming(now) {
			detail.UpcomingShows = append(detail.UpcomingShows, show)
		} else {
			detail.PastShows = append(detail.PastShows, show)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

func (s *service) Create(ctx context.Context, input models.VenueInput) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, app.Wrap(app.OpCreate, err)
	}
	if err := forms.Validate(input); err != nil {
		return models.Venue{}, app.Wrap(app.OpCreate, err)
	}

	var venue models.Venue
	input.Apply(&venue)

	created, err := s.store.CreateVenue(ctx, venue)
	if err != nil {
		return models.Venue{}, app.Wrap(app.OpCreate, err)
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, input models.VenueInput) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, app.Wrap(app.OpUpdate, err)
	}
	if err := forms.Validate(input); err != nil {
		return models.Venue{}, app.Wrap(app.OpUpdate, err)
	}

	updated, err := s.store.UpdateVenue(ctx, id, input.Apply)
	if err != nil {
		return models.Venue{}, app.Wrap(app.OpUpdate, err)
	}
	return updated, nil
}

// Delete removes the venue and returns the name it had.
func (s *service) Delete(ctx context.Context, id int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", app.Wrap(app.OpDelete, err)
	}

	name, err := s.store.DeleteVenue(ctx, id)
	if err != nil {
		return "", app.Wrap(app.OpDelete, err)
	}
	return name, nil
}

func (s *service) Recent(ctx context.Context, n int) ([]models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, app.Wrap(app.OpList, err)
	}

	venues, err := s.store.ListVenues(ctx, store.ListOptions{Limit: n, Newest: true})
	if err != nil {
		return nil, app.Wrap(app.OpList, err)
	}
	return venues, nil
}

func (s *service) Search(ctx context.Context, query string) (search.Result, error) {
	if err := ctx.Err(); err != nil {
		return search.Result{}, app.Wrap(app.OpSearch, err)
	}

	res, err := s.searcher.Search(ctx, search.Venues, query)
	if err != nil {
		return search.Result{}, app.Wrap(app.OpSearch, err)
	}
	return res, nil
}
