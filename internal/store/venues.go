package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"showbill/internal/models"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrInvalidVenue  = errors.New("invalid venue")
)

func validateVenue(venue *models.Venue) error {
	venue.Name = strings.TrimSpace(venue.Name)
	if venue.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidVenue)
	}
	if strings.TrimSpace(venue.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidVenue)
	}
	if strings.TrimSpace(venue.State) == "" {
		return fmt.Errorf("%w: state is required", ErrInvalidVenue)
	}
	return nil
}

// CreateVenue adds a new venue listing
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO venues (name, city, state, address, phone, website,
		                    image_link, facebook_link, genres, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.Website,
		venue.ImageLink, venue.FacebookLink, pq.Array(venue.Genres),
		venue.SeekingTalent, venue.SeekingDescription,
	).Scan(&venue.ID)

	if err != nil {
		return nil, err
	}

	return venue, nil
}

// ListVenues returns every venue together with the number of shows starting
// after the given instant, in insertion order.
func (s *Store) ListVenues(ctx context.Context, now time.Time) ([]*models.VenueWithShowCount, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state, v.address, v.phone, v.website,
		       v.image_link, v.facebook_link, v.genres, v.seeking_talent, v.seeking_description,
		       COUNT(s.id) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > $1
		GROUP BY v.id
		ORDER BY v.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []*models.VenueWithShowCount
	for rows.Next() {
		var v models.VenueWithShowCount
		err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Website,
			&v.ImageLink, &v.FacebookLink, pq.Array(&v.Genres), &v.SeekingTalent, &v.SeekingDescription,
			&v.NumUpcomingShows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, &v)
	}

	return venues, rows.Err()
}

// SearchVenues returns venues whose name contains term, case-insensitively.
// An empty term matches every venue.
func (s *Store) SearchVenues(ctx context.Context, term string, now time.Time) ([]*models.VenueWithShowCount, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state, v.address, v.phone, v.website,
		       v.image_link, v.facebook_link, v.genres, v.seeking_talent, v.seeking_description,
		       COUNT(s.id) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > $1
		WHERE v.name ILIKE $2
		GROUP BY v.id
		ORDER BY v.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, now, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []*models.VenueWithShowCount
	for rows.Next() {
		var v models.VenueWithShowCount
		err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Website,
			&v.ImageLink, &v.FacebookLink, pq.Array(&v.Genres), &v.SeekingTalent, &v.SeekingDescription,
			&v.NumUpcomingShows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, &v)
	}

	return venues, rows.Err()
}

// GetVenue retrieves a single venue by ID
func (s *Store) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	query := `
		SELECT id, name, city, state, address, phone, website,
		       image_link, facebook_link, genres, seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`

	var v models.Venue
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Website,
		&v.ImageLink, &v.FacebookLink, pq.Array(&v.Genres), &v.SeekingTalent, &v.SeekingDescription,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// UpdateVenue overwrites every mutable field of an existing venue.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, website = $6,
		    image_link = $7, facebook_link = $8, genres = $9,
		    seeking_talent = $10, seeking_description = $11
		WHERE id = $12
		RETURNING id, name, city, state, address, phone, website,
		          image_link, facebook_link, genres, seeking_talent, seeking_description
	`

	var v models.Venue
	err := s.db.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.Website,
		venue.ImageLink, venue.FacebookLink, pq.Array(venue.Genres),
		venue.SeekingTalent, venue.SeekingDescription, id,
	).Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Website,
		&v.ImageLink, &v.FacebookLink, pq.Array(&v.Genres), &v.SeekingTalent, &v.SeekingDescription)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// DeleteVenue removes a venue. Shows held at the venue go with it via the
// ON DELETE CASCADE constraint.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	query := `DELETE FROM venues WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVenueNotFound
	}

	return nil
}
