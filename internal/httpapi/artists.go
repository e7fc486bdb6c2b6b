package httpapi

import (
	"fmt"
	"net/http"

	"fyyur/internal/app"
	"fyyur/internal/forms"
	"fyyur/internal/models"
)

type artistFormData struct {
	ID     int64
	Form   models.ArtistInput
	Action string
}

func (s *Server) handleArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		s.fail(w, r, "An error occurred while loading artists.", err)
		return
	}
	s.render(w, r, http.StatusOK, "artists", artists)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, "An error occurred. Search could not be completed.", app.Wrap(app.OpSearch, err))
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.fail(w, r, "An error occurred. Search could not be completed.", err)
		return
	}
	s.render(w, r, http.StatusOK, "search_artists", searchData{SearchTerm: term, Results: results})
}

func (s *Server) handleArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, fmt.Sprintf("Artist %d could not be found.", id), err)
		return
	}
	s.render(w, r, http.StatusOK, "show_artist", artist)
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_artist", artistFormData{Action: "/artists/create"})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, "An error occurred. Artist could not be listed.", app.Wrap(app.OpCreate, err))
		return
	}
	input := forms.DecodeArtist(r.PostForm)

	artist, err := s.artists.Create(r.Context(), input)
	if err != nil {
		s.fail(w, r, fmt.Sprintf("An error occurred. Artist %s could not be listed.", input.Name), err)
		return
	}
	s.succeed(w, r, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, fmt.Sprintf("Artist %d could not be found.", id), err)
		return
	}
	s.render(w, r, http.StatusOK, "edit_artist", artistFormData{
		ID:     id,
		Form:   models.ArtistInputFrom(artist.Artist),
		Action: fmt.Sprintf("/artists/%d/edit", id),
	})
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, "An error occurred. Artist could not be updated.", app.Wrap(app.OpUpdate, err))
		return
	}
	input := forms.DecodeArtist(r.PostForm)

	artist, err := s.artists.Update(r.Context(), id, input)
	if err != nil {
		s.fail(w, r, fmt.Sprintf("An error occurred. Artist %s could not be updated.", input.Name), err)
		return
	}
	s.succeed(w, r, fmt.Sprintf("/artists/%d", id), fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
}
