package httpapi

import (
	"fmt"
	"net/http"

	"fyyur/internal/app"
	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/search"
)

type venueFormData struct {
	ID     int64
	Form   models.VenueInput
	Action string
}

type searchData struct {
	SearchTerm string
	Results    search.Result
}

func (s *Server) handleVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.ListGroupedByLocation(r.Context())
	if err != nil {
		s.fail(w, r, "An error occurred while loading venues.", err)
		return
	}
	s.render(w, r, http.StatusOK, "venues", areas)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, "An error occurred. Search could not be completed.", app.Wrap(app.OpSearch, err))
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.fail(w, r, "An error occurred. Search could not be completed.", err)
		return
	}
	s.render(w, r, http.StatusOK, "search_venues", searchData{SearchTerm: term, Results: results})
}

func (s *Server) handleVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, fmt.Sprintf("Venue %d could not be found.", id), err)
		return
	}
	s.render(w, r, http.StatusOK, "show_venue", venue)
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_venue", venueFormData{Action: "/venues/create"})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, "An error occurred. Venue could not be listed.", app.Wrap(app.OpCreate, err))
		return
	}
	input := forms.DecodeVenue(r.PostForm)

	venue, err := s.venues.Create(r.Context(), input)
	if err != nil {
		s.fail(w, r, fmt.Sprintf("An error occurred. Venue %s could not be listed.", input.Name), err)
		return
	}
	s.succeed(w, r, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, fmt.Sprintf("Venue %d could not be found.", id), err)
		return
	}
	s.render(w, r, http.StatusOK, "edit_venue", venueFormData{
		ID:     id,
		Form:   models.VenueInputFrom(venue.Venue),
		Action: fmt.Sprintf("/venues/%d/edit", id),
	})
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, "An error occurred. Venue could not be updated.", app.Wrap(app.OpUpdate, err))
		return
	}
	input := forms.DecodeVenue(r.PostForm)

	venue, err := s.venues.Update(r.Context(), id, input)
	if err != nil {
		s.fail(w, r, fmt.Sprintf("An error occurred. Venue %s could not be updated.", input.Name), err)
		return
	}
	s.succeed(w, r, fmt.Sprintf("/venues/%d", id), fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	name, err := s.venues.Delete(r.Context(), id)
	if err != nil {
		s.fail(w, r, "An error occurred. Venue could not be deleted.", err)
		return
	}
	s.succeed(w, r, "/", fmt.Sprintf("Venue %s has been deleted successfully", name))
}
