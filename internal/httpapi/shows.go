package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"showbill/internal/datefmt"
	"showbill/internal/models"
	"showbill/internal/store"
)

type showListingEntry struct {
	VenueID          int64  `json:"venue_id"`
	VenueName        string `json:"venue_name"`
	ArtistID         int64  `json:"artist_id"`
	ArtistName       string `json:"artist_name"`
	ArtistImageLink  string `json:"artist_image_link"`
	StartTime        string `json:"start_time"`
	StartTimeDisplay string `json:"start_time_display"`
}

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	listings, err := s.shows.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	entries := make([]showListingEntry, 0, len(listings))
	for _, l := range listings {
		entries = append(entries, showListingEntry{
			VenueID:          l.VenueID,
			VenueName:        l.VenueName,
			ArtistID:         l.ArtistID,
			ArtistName:       l.ArtistName,
			ArtistImageLink:  l.ArtistImageLink,
			StartTime:        startTimeText(l.StartTime),
			StartTimeDisplay: startTimeDisplay(l.StartTime),
		})
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form submission"})
		return
	}

	venueID, err := strconv.ParseInt(r.PostForm.Get("venue_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue_id"})
		return
	}

	artistID, err := strconv.ParseInt(r.PostForm.Get("artist_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist_id"})
		return
	}

	startTime, err := datefmt.Parse(r.PostForm.Get("start_time"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid start_time"})
		return
	}

	created, err := s.shows.Create(r.Context(), venueID, artistID, startTime)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, store.ErrReferencedRow):
			status = http.StatusBadRequest
		case errors.Is(err, store.ErrInvalidShow):
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, models.Show{
		ID:        created.ID,
		VenueID:   created.VenueID,
		ArtistID:  created.ArtistID,
		StartTime: created.StartTime,
	})
}
