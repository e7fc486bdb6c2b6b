package main

import (
	"database/sql"
	"fmt"
	"net/http"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/http/middleware"
	"fyyur/internal/httpapi"
	"fyyur/internal/search"
	"fyyur/internal/store"
)

func newHTTPHandler(db *sql.DB, dataStore *store.Store) (http.Handler, error) {
	renderer, err := httpapi.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	searchSvc := search.NewService(search.NewPGStore(db), nil)

	venueSvc := venues.New(dataStore, searchSvc, nil)
	artistSvc := artists.New(dataStore, searchSvc, nil)
	showSvc := shows.New(dataStore)

	var handler http.Handler = httpapi.New(venueSvc, artistSvc, showSvc, renderer).Routes()
	handler = middleware.Recovery()(handler)
	handler = middleware.RequestLogging()(handler)
	return handler, nil
}
