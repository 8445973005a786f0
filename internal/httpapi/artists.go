package httpapi

import (
	"errors"
	"net/http"

	"showbill/internal/models"
	"showbill/internal/store"
)

type artistShowEntry struct {
	VenueID          int64  `json:"venue_id"`
	VenueName        string `json:"venue_name"`
	VenueImageLink   string `json:"venue_image_link"`
	StartTime        string `json:"start_time"`
	StartTimeDisplay string `json:"start_time_display"`
}

type artistDetailResponse struct {
	models.Artist
	PastShows          []artistShowEntry `json:"past_shows"`
	UpcomingShows      []artistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

type artistSearchResponse struct {
	Count      int                           `json:"count"`
	Data       []*models.ArtistWithShowCount `json:"data"`
	SearchTerm string                        `json:"search_term"`
}

func artistShowEntries(refs []models.ShowRef) []artistShowEntry {
	entries := make([]artistShowEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, artistShowEntry{
			VenueID:          ref.CounterpartID,
			VenueName:        ref.CounterpartName,
			VenueImageLink:   ref.CounterpartImage,
			StartTime:        startTimeText(ref.StartTime),
			StartTimeDisplay: startTimeDisplay(ref.StartTime),
		})
	}
	return entries
}

func artistErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrArtistNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidArtist):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if artists == nil {
		artists = []models.ArtistRef{}
	}
	writeJSON(w, http.StatusOK, artists)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form submission"})
		return
	}
	term := r.PostForm.Get("search_term")

	count, matches, err := s.artists.Search(r.Context(), term)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if matches == nil {
		matches = []*models.ArtistWithShowCount{}
	}
	writeJSON(w, http.StatusOK, artistSearchResponse{
		Count:      count,
		Data:       matches,
		SearchTerm: term,
	})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := artistFromForm(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form submission"})
		return
	}

	created, err := s.artists.Create(r.Context(), artist)
	if err != nil {
		writeJSON(w, artistErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	detail, err := s.artists.Get(r.Context(), id)
	if err != nil {
		writeJSON(w, artistErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, artistDetailResponse{
		Artist:             detail.Artist,
		PastShows:          artistShowEntries(detail.PastShows),
		UpcomingShows:      artistShowEntries(detail.UpcomingShows),
		PastShowsCount:     detail.PastShowsCount,
		UpcomingShowsCount: detail.UpcomingShowsCount,
	})
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	artist, err := s.artists.GetForEdit(r.Context(), id)
	if err != nil {
		writeJSON(w, artistErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	artist, err := artistFromForm(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form submission"})
		return
	}

	updated, err := s.artists.Update(r.Context(), id, artist)
	if err != nil {
		writeJSON(w, artistErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	if err := s.artists.Delete(r.Context(), id); err != nil {
		writeJSON(w, artistErrorStatus(err), errorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
