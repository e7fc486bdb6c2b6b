// Package search implements case-insensitive substring search over venues
// and artists.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/models"
)

// Kind selects the resource being searched.
type Kind string

const (
	Venues  Kind = "venues"
	Artists Kind = "artists"
)

// Store defines the persistence operations required by the search service.
type Store interface {
	SearchVenues(ctx context.Context, term string, now time.Time) ([]models.Summary, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]models.Summary, error)
}

// Result is the payload rendered on the search results pages.
type Result struct {
	Count int              `json:"count"`
	Data  []models.Summary `json:"data"`
}

// Service runs searches against a Store.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService builds a search service. A nil clock defaults to time.Now.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Search treats the whole trimmed query as a single term. A blank query
// matches nothing.
func (s *Service) Search(ctx context.Context, kind Kind, query string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	term := strings.TrimSpace(query)
	if term == "" {
		return Result{Data: []models.Summary{}}, nil
	}

	var (
		data []models.Summary
		err  error
	)
	switch kind {
	case Venues:
		data, err = s.store.SearchVenues(ctx, term, s.now())
	case Artists:
		data, err = s.store.SearchArtists(ctx, term, s.now())
	default:
		return Result{}, fmt.Errorf("search: unknown kind %q", kind)
	}
	if err != nil {
		return Result{}, err
	}
	if data == nil {
		data = []models.Summary{}
	}

	return Result{Count: len(data), Data: data}, nil
}
