package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"showbill/internal/datefmt"
	"showbill/internal/models"
)

// VenueService captures the venue-facing operations needed by the HTTP handlers.
type VenueService interface {
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	ListByArea(ctx context.Context) ([]models.VenueArea, error)
	Search(ctx context.Context, term string) (int, []*models.VenueWithShowCount, error)
	Get(ctx context.Context, id int64) (*models.VenueDetail, error)
	GetForEdit(ctx context.Context, id int64) (*models.Venue, error)
	Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ArtistService captures the artist-facing operations needed by the HTTP handlers.
type ArtistService interface {
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	List(ctx context.Context) ([]models.ArtistRef, error)
	Search(ctx context.Context, term string) (int, []*models.ArtistWithShowCount, error)
	Get(ctx context.Context, id int64) (*models.ArtistDetail, error)
	GetForEdit(ctx context.Context, id int64) (*models.Artist, error)
	Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	Delete(ctx context.Context, id int64) error
}

// ShowService captures show listing and creation.
type ShowService interface {
	Create(ctx context.Context, venueID, artistID int64, startTime time.Time) (*models.Show, error)
	List(ctx context.Context) ([]models.ShowListing, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
}

// New configures a Server with the given services.
func New(venues VenueService, artists ArtistService, shows ShowService) *Server {
	return &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
	}
}

// Routes exposes the HTTP handlers for the booking directory.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)

	// Venue routes
	mux.HandleFunc("GET /venues", s.handleListVenues)
	mux.HandleFunc("POST /venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /venues/create", s.handleVenueFormMeta)
	mux.HandleFunc("POST /venues/create", s.handleCreateVenue)
	mux.HandleFunc("GET /venues/{id}", s.handleGetVenue)
	mux.HandleFunc("GET /venues/{id}/edit", s.handleEditVenueForm)
	mux.HandleFunc("POST /venues/{id}/edit", s.handleEditVenue)
	mux.HandleFunc("DELETE /venues/{id}", s.handleDeleteVenue)

	// Artist routes
	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("POST /artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /artists/create", s.handleArtistFormMeta)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("GET /artists/{id}", s.handleGetArtist)
	mux.HandleFunc("GET /artists/{id}/edit", s.handleEditArtistForm)
	mux.HandleFunc("POST /artists/{id}/edit", s.handleEditArtist)
	mux.HandleFunc("DELETE /artists/{id}", s.handleDeleteArtist)

	// Show routes
	mux.HandleFunc("GET /shows", s.handleListShows)
	mux.HandleFunc("GET /shows/create", s.handleShowFormMeta)
	mux.HandleFunc("POST /shows/create", s.handleCreateShow)

	// Everything else is a not-found page.
	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Service string `json:"service"`
	}{Service: "showbill"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "page not found"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// startTimeText is the plain textual serialization carried in view payloads.
func startTimeText(t time.Time) string {
	return t.Format(time.DateTime)
}

// startTimeDisplay runs the date filter over the textual form, the way the
// templates would at render time.
func startTimeDisplay(t time.Time) string {
	display, err := datefmt.Format(startTimeText(t), datefmt.StyleMedium)
	if err != nil {
		return startTimeText(t)
	}
	return display
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
