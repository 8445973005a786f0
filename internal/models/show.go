package models

import "time"

// Show is a scheduled pairing of one artist at one venue at a specific time.
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowRef is a show as seen from one side of the venue/artist pair: the
// counterpart entity's display fields plus the start time.
type ShowRef struct {
	CounterpartID    int64
	CounterpartName  string
	CounterpartImage string
	StartTime        time.Time
}

// ShowListing is one row of the full shows page, flattened across both
// referenced entities.
type ShowListing struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// PartitionShows splits refs into past and upcoming relative to now. A show is
// upcoming iff its start time is strictly after now; a show starting exactly
// at now is past. The reference instant is an explicit argument so callers can
// pin it.
func PartitionShows(refs []ShowRef, now time.Time) (past, upcoming []ShowRef) {
	for _, ref := range refs {
		if ref.StartTime.After(now) {
			upcoming = append(upcoming, ref)
		} else {
			past = append(past, ref)
		}
	}
	return past, upcoming
}
