package httpapi

import (
	"net/http"

	"showbill/internal/models"
)

// genreChoices and stateChoices back the create/edit form pages.
var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

var stateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

type formMetaResponse struct {
	Genres []string `json:"genres,omitempty"`
	States []string `json:"states,omitempty"`
}

func (s *Server) handleVenueFormMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formMetaResponse{Genres: genreChoices, States: stateChoices})
}

func (s *Server) handleArtistFormMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formMetaResponse{Genres: genreChoices, States: stateChoices})
}

func (s *Server) handleShowFormMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formMetaResponse{})
}

// venueFromForm reads a submitted venue form. Genres is a multi-value field
// and the seeking flag is derived from the checkbox field being present at
// all, not from its value.
func venueFromForm(r *http.Request) (*models.Venue, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	return &models.Venue{
		Name:               r.PostForm.Get("name"),
		City:               r.PostForm.Get("city"),
		State:              r.PostForm.Get("state"),
		Address:            r.PostForm.Get("address"),
		Phone:              r.PostForm.Get("phone"),
		Website:            r.PostForm.Get("website"),
		ImageLink:          r.PostForm.Get("image_link"),
		FacebookLink:       r.PostForm.Get("facebook_link"),
		Genres:             r.PostForm["genres"],
		SeekingTalent:      r.PostForm.Has("seeking_talent"),
		SeekingDescription: r.PostForm.Get("seeking_description"),
	}, nil
}

// artistFromForm reads a submitted artist form with the same field
// conventions as venueFromForm.
func artistFromForm(r *http.Request) (*models.Artist, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	return &models.Artist{
		Name:               r.PostForm.Get("name"),
		City:               r.PostForm.Get("city"),
		State:              r.PostForm.Get("state"),
		Phone:              r.PostForm.Get("phone"),
		Website:            r.PostForm.Get("website"),
		ImageLink:          r.PostForm.Get("image_link"),
		FacebookLink:       r.PostForm.Get("facebook_link"),
		Genres:             r.PostForm["genres"],
		SeekingVenue:       r.PostForm.Has("seeking_venue"),
		SeekingDescription: r.PostForm.Get("seeking_description"),
	}, nil
}
