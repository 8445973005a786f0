package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"showbill/internal/models"
)

func TestValidateVenue(t *testing.T) {
	tests := []struct {
		name    string
		venue   models.Venue
		wantErr bool
	}{
		{
			name: "valid venue",
			venue: models.Venue{
				Name:   "The Musical Hop",
				City:   "San Francisco",
				State:  "CA",
				Genres: []string{"Jazz", "Reggae"},
			},
		},
		{
			name: "missing name",
			venue: models.Venue{
				City:  "San Francisco",
				State: "CA",
			},
			wantErr: true,
		},
		{
			name: "missing city",
			venue: models.Venue{
				Name:  "The Musical Hop",
				State: "CA",
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := validateVenue(&tc.venue)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
			if tc.wantErr && !errors.Is(err, ErrInvalidVenue) {
				t.Fatalf("expected ErrInvalidVenue, got %v", err)
			}
		})
	}
}

func TestCreateVenueSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO venues (name, city, state, address, phone, website,
		                    image_link, facebook_link, genres, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`)).
		WithArgs("The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
			"https://www.themusicalhop.com", "https://example.com/hop.jpg", "https://www.facebook.com/TheMusicalHop",
			pq.Array([]string{"Jazz", "Reggae", "Classical"}), true, "Looking for local artists").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	venue := &models.Venue{
		Name:               "  The Musical Hop ",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Website:            "https://www.themusicalhop.com",
		ImageLink:          "https://example.com/hop.jpg",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		Genres:             []string{"Jazz", "Reggae", "Classical"},
		SeekingTalent:      true,
		SeekingDescription: "Looking for local artists",
	}

	got, err := s.CreateVenue(context.Background(), venue)
	if err != nil {
		t.Fatalf("CreateVenue error: %v", err)
	}

	if got.ID != 7 {
		t.Fatalf("expected venue ID 7, got %d", got.ID)
	}
	if got.Name != "The Musical Hop" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateVenueMissingName(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	_, err = s.CreateVenue(context.Background(), &models.Venue{City: "X", State: "CA"})
	if !errors.Is(err, ErrInvalidVenue) {
		t.Fatalf("expected ErrInvalidVenue, got %v", err)
	}
}

func TestGetVenueNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, city, state, address, phone, website,
		       image_link, facebook_link, genres, seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`)).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err = s.GetVenue(context.Background(), 999)
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchVenuesPattern(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT v.id, v.name, v.city, v.state, v.address, v.phone, v.website,
		       v.image_link, v.facebook_link, v.genres, v.seeking_talent, v.seeking_description,
		       COUNT(s.id) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > $1
		WHERE v.name ILIKE $2
		GROUP BY v.id
		ORDER BY v.id ASC
	`)).
		WithArgs(now, "%hop%").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "city", "state", "address", "phone", "website",
			"image_link", "facebook_link", "genres", "seeking_talent", "seeking_description",
			"num_upcoming_shows",
		}).AddRow(int64(1), "The Musical Hop", "San Francisco", "CA", "", "", "",
			"", "", "{Jazz}", false, "", 2))

	matches, err := s.SearchVenues(context.Background(), "hop", now)
	if err != nil {
		t.Fatalf("SearchVenues error: %v", err)
	}

	if len(matches) != 1 || matches[0].Name != "The Musical Hop" {
		t.Fatalf("unexpected matches: %#v", matches)
	}
	if matches[0].NumUpcomingShows != 2 {
		t.Fatalf("expected 2 upcoming shows, got %d", matches[0].NumUpcomingShows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateVenueOverwritesEveryField(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	// The submission carries no phone and no seeking description, so the row
	// comes back with those columns blanked rather than keeping old values.
	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, website = $6,
		    image_link = $7, facebook_link = $8, genres = $9,
		    seeking_talent = $10, seeking_description = $11
		WHERE id = $12
		RETURNING id, name, city, state, address, phone, website,
		          image_link, facebook_link, genres, seeking_talent, seeking_description
	`)).
		WithArgs("The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "", "",
			"", "", pq.Array([]string{"Jazz"}), false, "", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "city", "state", "address", "phone", "website",
			"image_link", "facebook_link", "genres", "seeking_talent", "seeking_description",
		}).AddRow(int64(1), "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "", "",
			"", "", "{Jazz}", false, ""))

	updated, err := s.UpdateVenue(context.Background(), 1, &models.Venue{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz"},
	})
	if err != nil {
		t.Fatalf("UpdateVenue error: %v", err)
	}

	if updated.Phone != "" || updated.SeekingDescription != "" {
		t.Fatalf("expected omitted fields blanked, got %#v", updated)
	}
	if updated.SeekingTalent {
		t.Fatal("expected seeking_talent overwritten to false")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateVenueNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, website = $6,
		    image_link = $7, facebook_link = $8, genres = $9,
		    seeking_talent = $10, seeking_description = $11
		WHERE id = $12
		RETURNING id, name, city, state, address, phone, website,
		          image_link, facebook_link, genres, seeking_talent, seeking_description
	`)).
		WithArgs("Ghost Venue", "Nowhere", "CA", "", "", "", "", "",
			pq.Array([]string(nil)), false, "", int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err = s.UpdateVenue(context.Background(), 404, &models.Venue{
		Name:  "Ghost Venue",
		City:  "Nowhere",
		State: "CA",
	})
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteVenueNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM venues WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteVenue(context.Background(), 42); !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListVenuesScansCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT v.id, v.name, v.city, v.state, v.address, v.phone, v.website,
		       v.image_link, v.facebook_link, v.genres, v.seeking_talent, v.seeking_description,
		       COUNT(s.id) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id AND s.start_time > $1
		GROUP BY v.id
		ORDER BY v.id ASC
	`)).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "city", "state", "address", "phone", "website",
			"image_link", "facebook_link", "genres", "seeking_talent", "seeking_description",
			"num_upcoming_shows",
		}).
			AddRow(int64(1), "The Musical Hop", "San Francisco", "CA", "", "", "", "", "", "{Jazz,Reggae}", true, "", 1).
			AddRow(int64(2), "Park Square Live Music & Coffee", "San Francisco", "CA", "", "", "", "", "", "{Rock n Roll}", false, "", 0))

	venues, err := s.ListVenues(context.Background(), now)
	if err != nil {
		t.Fatalf("ListVenues error: %v", err)
	}

	if len(venues) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(venues))
	}
	if got := venues[0].Genres; len(got) != 2 || got[0] != "Jazz" || got[1] != "Reggae" {
		t.Fatalf("unexpected genres: %#v", got)
	}
	if venues[1].NumUpcomingShows != 0 {
		t.Fatalf("expected 0 upcoming shows, got %d", venues[1].NumUpcomingShows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
