package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fyyur/internal/app"
	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/search"
)

// recentLimit is how many venues and artists the home page lists.
const recentLimit = 10

// VenueService captures the venue workflows behind the venue pages.
type VenueService interface {
	ListGroupedByLocation(ctx context.Context) ([]models.Area, error)
	Get(ctx context.Context, id int64) (models.VenueDetail, error)
	Create(ctx context.Context, input models.VenueInput) (models.Venue, error)
	Update(ctx context.Context, id int64, input models.VenueInput) (models.Venue, error)
	Delete(ctx context.Context, id int64) (string, error)
	Recent(ctx context.Context, n int) ([]models.Venue, error)
	Search(ctx context.Context, query string) (search.Result, error)
}

// ArtistService captures the artist workflows behind the artist pages.
type ArtistService interface {
	List(ctx context.Context) ([]models.Artist, error)
	Get(ctx context.Context, id int64) (models.ArtistDetail, error)
	Create(ctx context.Context, input models.ArtistInput) (models.Artist, error)
	Update(ctx context.Context, id int64, input models.ArtistInput) (models.Artist, error)
	Recent(ctx context.Context, n int) ([]models.Artist, error)
	Search(ctx context.Context, query string) (search.Result, error)
}

// ShowService captures the show workflows.
type ShowService interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, input models.ShowInput) (models.Show, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues   VenueService
	artists  ArtistService
	shows    ShowService
	renderer Renderer
}

// New configures a Server.
func New(venues VenueService, artists ArtistService, shows ShowService, renderer Renderer) *Server {
	return &Server{
		venues:   venues,
		artists:  artists,
		shows:    shows,
		renderer: renderer,
	}
}

// Routes exposes the page handlers.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)

	router.HandleFunc("/venues", s.handleVenues).Methods(http.MethodGet)
	router.HandleFunc("/venues/search", s.handleSearchVenues).Methods(http.MethodPost)
	router.HandleFunc("/venues/create", s.handleNewVenueForm).Methods(http.MethodGet)
	router.HandleFunc("/venues/create", s.handleCreateVenue).Methods(http.MethodPost)
	router.HandleFunc("/venues/{id:[0-9]+}", s.handleVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleEditVenueForm).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleUpdateVenue).Methods(http.MethodPost)
	router.HandleFunc("/venues/{id:[0-9]+}/delete", s.handleDeleteVenue).Methods(http.MethodDelete, http.MethodPost)

	router.HandleFunc("/artists", s.handleArtists).Methods(http.MethodGet)
	router.HandleFunc("/artists/search", s.handleSearchArtists).Methods(http.MethodPost)
	router.HandleFunc("/artists/create", s.handleNewArtistForm).Methods(http.MethodGet)
	router.HandleFunc("/artists/create", s.handleCreateArtist).Methods(http.MethodPost)
	router.HandleFunc("/artists/{id:[0-9]+}", s.handleArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleEditArtistForm).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleUpdateArtist).Methods(http.MethodPost)

	router.HandleFunc("/shows", s.handleShows).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleNewShowForm).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleCreateShow).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.renderError(w, r, http.StatusNotFound, "The page you requested does not exist.")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	return router
}

type homeData struct {
	Venues  []models.Venue
	Artists []models.Artist
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	venues, err := s.venues.Recent(r.Context(), recentLimit)
	if err != nil {
		s.fail(w, r, "An error occurred while loading recent venues.", err)
		return
	}
	artists, err := s.artists.Recent(r.Context(), recentLimit)
	if err != nil {
		s.fail(w, r, "An error occurred while loading recent artists.", err)
		return
	}
	s.render(w, r, http.StatusOK, "home", homeData{Venues: venues, Artists: artists})
}

// render executes page with any pending flash messages.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	view := View{Flashes: popFlashes(w, r), Data: data}
	if err := s.renderer.Render(w, status, page, view); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("page", page).Msg("render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// succeed flashes msg and redirects to location.
func (s *Server) succeed(w http.ResponseWriter, r *http.Request, location, msg string) {
	addFlash(w, r, msg)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// fail logs err and renders the error page containing msg. Missing records
// get a 404, every other failure a 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	kind := app.KindOf(err)
	logging.WithContext(r.Context()).Error().
		Err(err).
		Str("kind", kind.String()).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg(msg)

	status := http.StatusInternalServerError
	if kind == app.KindNotFound {
		status = http.StatusNotFound
	}
	s.renderError(w, r, status, msg)
}

type errorData struct {
	Message string
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	page := "500"
	if status == http.StatusNotFound {
		page = "404"
	}
	s.render(w, r, status, page, errorData{Message: msg})
}

// pathID reads the numeric id route variable. Values that do not fit an
// int64 are treated as missing records.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		s.renderError(w, r, http.StatusNotFound, "The page you requested does not exist.")
		return 0, false
	}
	return id, true
}
