package models

// Venue represents a location that can host shows.
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website,omitempty"`
	ImageLink          string   `json:"image_link,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	Genres             []string `json:"genres"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
}

// VenueWithShowCount decorates a venue with the number of shows that have not
// started yet at the time the row was read.
type VenueWithShowCount struct {
	Venue
	NumUpcomingShows int `json:"num_upcoming_shows"`
}

// VenueArea groups every venue located in one (city, state) pair.
type VenueArea struct {
	City   string               `json:"city"`
	State  string               `json:"state"`
	Venues []VenueWithShowCount `json:"venues"`
}

// VenueDetail is a venue plus its shows partitioned into past and upcoming,
// each show carrying the performing artist's display fields.
type VenueDetail struct {
	Venue
	PastShows          []ShowRef `json:"-"`
	UpcomingShows      []ShowRef `json:"-"`
	PastShowsCount     int       `json:"past_shows_count"`
	UpcomingShowsCount int       `json:"upcoming_shows_count"`
}
