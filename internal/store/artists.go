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
	ErrArtistNotFound = errors.New("artist not found")
	ErrInvalidArtist  = errors.New("invalid artist")
)

func validateArtist(artist *models.Artist) error {
	artist.Name = strings.TrimSpace(artist.Name)
	if artist.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArtist)
	}
	if strings.TrimSpace(artist.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidArtist)
	}
	if strings.TrimSpace(artist.State) == "" {
		return fmt.Errorf("%w: state is required", ErrInvalidArtist)
	}
	return nil
}

// CreateArtist adds a new artist listing
func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := validateArtist(artist); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO artists (name, city, state, phone, website,
		                     image_link, facebook_link, genres, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, artist.Website,
		artist.ImageLink, artist.FacebookLink, pq.Array(artist.Genres),
		artist.SeekingVenue, artist.SeekingDescription,
	).Scan(&artist.ID)

	if err != nil {
		return nil, err
	}

	return artist, nil
}

// ListArtists returns the id and name of every artist in insertion order.
func (s *Store) ListArtists(ctx context.Context) ([]models.ArtistRef, error) {
	query := `
		SELECT id, name
		FROM artists
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []models.ArtistRef
	for rows.Next() {
		var a models.ArtistRef
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}

	return artists, rows.Err()
}

// SearchArtists returns artists whose name contains term, case-insensitively.
// An empty term matches every artist.
func (s *Store) SearchArtists(ctx context.Context, term string, now time.Time) ([]*models.ArtistWithShowCount, error) {
	query := `
		SELECT a.id, a.name, a.city, a.state, a.phone, a.website,
		       a.image_link, a.facebook_link, a.genres, a.seeking_venue, a.seeking_description,
		       COUNT(s.id) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id AND s.start_time > $1
		WHERE a.name ILIKE $2
		GROUP BY a.id
		ORDER BY a.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, now, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []*models.ArtistWithShowCount
	for rows.Next() {
		var a models.ArtistWithShowCount
		err := rows.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Website,
			&a.ImageLink, &a.FacebookLink, pq.Array(&a.Genres), &a.SeekingVenue, &a.SeekingDescription,
			&a.NumUpcomingShows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, &a)
	}

	return artists, rows.Err()
}

// GetArtist retrieves a single artist by ID
func (s *Store) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	query := `
		SELECT id, name, city, state, phone, website,
		       image_link, facebook_link, genres, seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`

	var a models.Artist
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Website,
		&a.ImageLink, &a.FacebookLink, pq.Array(&a.Genres), &a.SeekingVenue, &a.SeekingDescription,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// UpdateArtist overwrites every mutable field of an existing artist.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	if err := validateArtist(artist); err != nil {
		return nil, err
	}

	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, website = $5,
		    image_link = $6, facebook_link = $7, genres = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
		RETURNING id, name, city, state, phone, website,
		          image_link, facebook_link, genres, seeking_venue, seeking_description
	`

	var a models.Artist
	err := s.db.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, artist.Website,
		artist.ImageLink, artist.FacebookLink, pq.Array(artist.Genres),
		artist.SeekingVenue, artist.SeekingDescription, id,
	).Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Website,
		&a.ImageLink, &a.FacebookLink, pq.Array(&a.Genres), &a.SeekingVenue, &a.SeekingDescription)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// DeleteArtist removes an artist. Shows booked for the artist go with it via
// the ON DELETE CASCADE constraint.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	query := `DELETE FROM artists WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrArtistNotFound
	}

	return nil
}
