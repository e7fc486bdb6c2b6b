package shows

import (
	"context"

	"fyyur/internal/app"
	"fyyur/internal/forms"
	"fyyur/internal/models"
)

// Store defines persistence operations for shows.
type Store interface {
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
	ListShows(ctx context.Context) ([]models.ShowListing, error)
}

// Service coordinates show operations.
type Service interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, input models.ShowInput) (models.Show, error)
}

type service struct {
	store Store
}

// New constructs a shows Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, app.Wrap(app.OpList, err)
	}

	shows, err := s.store.ListShows(ctx)
	if err != nil {
		return nil, app.Wrap(app.OpList, err)
	}
	return shows, nil
}

// Create books the show. The store verifies both references inside the
// same transaction as the insert.
func (s *service) Create(ctx context.Context, input models.ShowInput) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, app.Wrap(app.OpCreate, err)
	}
	if err := forms.Validate(input); err != nil {
		return models.Show{}, app.Wrap(app.OpCreate, err)
	}

	show, err := s.store.CreateShow(ctx, models.Show{
		ArtistID:  input.ArtistID,
		VenueID:   input.VenueID,
		StartTime: input.StartTime,
	})
	if err != nil {
		return models.Show{}, app.Wrap(app.OpCreate, err)
	}
	return show, nil
}
