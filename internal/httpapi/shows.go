package httpapi

import (
	"net/http"

	"fyyur/internal/app"
	"fyyur/internal/forms"
)

const (
	showListed     = "Show was successfully listed!"
	showListFailed = "An error occurred. Show could not be listed."
)

type showFormData struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

func (s *Server) handleShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		s.fail(w, r, "An error occurred while loading shows.", err)
		return
	}
	s.render(w, r, http.StatusOK, "shows", shows)
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_show", showFormData{})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, showListFailed, app.Wrap(app.OpCreate, err))
		return
	}

	input, err := forms.DecodeShow(r.PostForm)
	if err != nil {
		s.fail(w, r, showListFailed, app.Wrap(app.OpCreate, err))
		return
	}
	if _, err := s.shows.Create(r.Context(), input); err != nil {
		s.fail(w, r, showListFailed, err)
		return
	}
	s.succeed(w, r, "/", showListed)
}
