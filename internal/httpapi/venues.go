package httpapi

import (
	"errors"
	"net/http"

	"showbill/internal/models"
	"showbill/internal/store"
)

type venueShowEntry struct {
	ArtistID         int64  `json:"artist_id"`
	ArtistName       string `json:"artist_name"`
	ArtistImageLink  string `json:"artist_image_link"`
	StartTime        string `json:"start_time"`
	StartTimeDisplay string `json:"start_time_display"`
}

type venueDetailResponse struct {
	models.Venue
	PastShows          []venueShowEntry `json:"past_shows"`
	UpcomingShows      []venueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

type venueSearchResponse struct {
	Count      int                          `json:"count"`
	Data       []*models.VenueWithShowCount `json:"data"`
	SearchTerm string                       `json:"search_term"`
}

func venueShowEntries(refs []models.ShowRef) []venueShowEntry {
	entries := make([]venueShowEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, venueShowEntry{
			ArtistID:         ref.CounterpartID,
			ArtistName:       ref.CounterpartName,
			ArtistImageLink:  ref.CounterpartImage,
			StartTime:        startTimeText(ref.StartTime),
			StartTimeDisplay: startTimeDisplay(ref.StartTime),
		})
	}
	return entries
}

func venueErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrVenueNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidVenue):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.ListByArea(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if areas == nil {
		areas = []models.VenueArea{}
	}
	writeJSON(w, http.StatusOK, areas)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form submission"})
		return
	}
	term := r.PostForm.Get("search_term")

	count, matches, err := s.venues.Search(r.Context(), term)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if matches == nil {
		matches = []*models.VenueWithShowCount{}
	}
	writeJSON(w, http.StatusOK, venueSearchResponse{
		Count:      count,
		Data:       matches,
		SearchTerm: term,
	})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	venue, err := venueFromForm(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form submission"})
		return
	}

	created, err := s.venues.Create(r.Context(), venue)
	if err != nil {
		writeJSON(w, venueErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}

	detail, err := s.venues.Get(r.Context(), id)
	if err != nil {
		writeJSON(w, venueErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, venueDetailResponse{
		Venue:              detail.Venue,
		PastShows:          venueShowEntries(detail.PastShows),
		UpcomingShows:      venueShowEntries(detail.UpcomingShows),
		PastShowsCount:     detail.PastShowsCount,
		UpcomingShowsCount: detail.UpcomingShowsCount,
	})
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}

	venue, err := s.venues.GetForEdit(r.Context(), id)
	if err != nil {
		writeJSON(w, venueErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, venue)
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}

	venue, err := venueFromForm(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form submission"})
		return
	}

	updated, err := s.venues.Update(r.Context(), id, venue)
	if err != nil {
		writeJSON(w, venueErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}

	if err := s.venues.Delete(r.Context(), id); err != nil {
		writeJSON(w, venueErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
