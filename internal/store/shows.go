package store

import (
	"context"
	"errors"
	"fmt"

	"showbill/internal/models"
)

var (
	ErrShowNotFound = errors.New("show not found")
	ErrInvalidShow  = errors.New("invalid show")
)

// CreateShow books an artist at a venue. A reference to a missing venue or
// artist surfaces as ErrReferencedRow rather than a bare driver error.
func (s *Store) CreateShow(ctx context.Context, show *models.Show) (*models.Show, error) {
	if show.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", ErrInvalidShow)
	}

	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		show.VenueID, show.ArtistID, show.StartTime,
	).Scan(&show.ID)

	if isForeignKeyViolation(err) {
		return nil, ErrReferencedRow
	}
	if err != nil {
		return nil, err
	}

	return show, nil
}

// ListShows returns every show flattened against its venue and artist, in
// insertion order.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	query := `
		SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shows []models.ShowListing
	for rows.Next() {
		var l models.ShowListing
		err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName,
			&l.ArtistImageLink, &l.StartTime)
		if err != nil {
			return nil, err
		}
		shows = append(shows, l)
	}

	return shows, rows.Err()
}

// ShowsByVenue returns every show held at a venue joined against the
// performing artist's display fields.
func (s *Store) ShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowRef, error) {
	query := `
		SELECT a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC
	`

	return s.showRefs(ctx, query, venueID)
}

// ShowsByArtist returns every show booked for an artist joined against the
// hosting venue's display fields.
func (s *Store) ShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowRef, error) {
	query := `
		SELECT v.id, v.name, v.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC
	`

	return s.showRefs(ctx, query, artistID)
}

func (s *Store) showRefs(ctx context.Context, query string, id int64) ([]models.ShowRef, error) {
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []models.ShowRef
	for rows.Next() {
		var ref models.ShowRef
		err := rows.Scan(&ref.CounterpartID, &ref.CounterpartName, &ref.CounterpartImage, &ref.StartTime)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}
