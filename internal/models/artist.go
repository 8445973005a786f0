package models

// Artist represents a performer that can appear in shows.
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website,omitempty"`
	ImageLink          string   `json:"image_link,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	Genres             []string `json:"genres"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
}

// ArtistRef is the flat listing row: identity only.
type ArtistRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtistWithShowCount decorates an artist with its upcoming show count.
type ArtistWithShowCount struct {
	Artist
	NumUpcomingShows int `json:"num_upcoming_shows"`
}

// ArtistDetail is an artist plus its shows partitioned into past and upcoming,
// each show carrying the hosting venue's display fields.
type ArtistDetail struct {
	Artist
	PastShows          []ShowRef `json:"-"`
	UpcomingShows      []ShowRef `json:"-"`
	PastShowsCount     int       `json:"past_shows_count"`
	UpcomingShowsCount int       `json:"upcoming_shows_count"`
}
