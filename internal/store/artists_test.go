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

func TestCreateArtistSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO artists (name, city, state, phone, website,
		                     image_link, facebook_link, genres, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`)).
		WithArgs("Guns N Petals", "San Francisco", "CA", "326-123-5000",
			"https://www.gunsnpetalsband.com", "https://example.com/gnp.jpg", "https://www.facebook.com/GunsNPetals",
			pq.Array([]string{"Rock n Roll"}), true, "Looking for shows to perform").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	artist := &models.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            "https://www.gunsnpetalsband.com",
		ImageLink:          "https://example.com/gnp.jpg",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		Genres:             []string{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform",
	}

	got, err := s.CreateArtist(context.Background(), artist)
	if err != nil {
		t.Fatalf("CreateArtist error: %v", err)
	}

	if got.ID != 4 {
		t.Fatalf("expected artist ID 4, got %d", got.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateArtistMissingState(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	_, err = s.CreateArtist(context.Background(), &models.Artist{Name: "Guns N Petals", City: "SF"})
	if !errors.Is(err, ErrInvalidArtist) {
		t.Fatalf("expected ErrInvalidArtist, got %v", err)
	}
}

func TestListArtists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name
		FROM artists
		ORDER BY id ASC
	`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(4), "Guns N Petals").
			AddRow(int64(5), "Matt Quevedo"))

	artists, err := s.ListArtists(context.Background())
	if err != nil {
		t.Fatalf("ListArtists error: %v", err)
	}

	if len(artists) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(artists))
	}
	if artists[0].ID != 4 || artists[0].Name != "Guns N Petals" {
		t.Fatalf("unexpected first artist: %#v", artists[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchArtistsPattern(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT a.id, a.name, a.city, a.state, a.phone, a.website,
		       a.image_link, a.facebook_link, a.genres, a.seeking_venue, a.seeking_description,
		       COUNT(s.id) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id AND s.start_time > $1
		WHERE a.name ILIKE $2
		GROUP BY a.id
		ORDER BY a.id ASC
	`)).
		WithArgs(now, "%band%").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "city", "state", "phone", "website",
			"image_link", "facebook_link", "genres", "seeking_venue", "seeking_description",
			"num_upcoming_shows",
		}).AddRow(int64(6), "The Wild Sax Band", "San Francisco", "CA", "", "",
			"", "", "{Jazz,Classical}", false, "", 3))

	matches, err := s.SearchArtists(context.Background(), "band", now)
	if err != nil {
		t.Fatalf("SearchArtists error: %v", err)
	}

	if len(matches) != 1 || matches[0].Name != "The Wild Sax Band" {
		t.Fatalf("unexpected matches: %#v", matches)
	}
	if matches[0].NumUpcomingShows != 3 {
		t.Fatalf("expected 3 upcoming shows, got %d", matches[0].NumUpcomingShows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetArtistNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, city, state, phone, website,
		       image_link, facebook_link, genres, seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`)).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err = s.GetArtist(context.Background(), 999)
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateArtistNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, website = $5,
		    image_link = $6, facebook_link = $7, genres = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
		RETURNING id, name, city, state, phone, website,
		          image_link, facebook_link, genres, seeking_venue, seeking_description
	`)).
		WithArgs("Ghost Band", "Nowhere", "CA", "", "", "", "",
			pq.Array([]string(nil)), false, "", int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err = s.UpdateArtist(context.Background(), 404, &models.Artist{
		Name:  "Ghost Band",
		City:  "Nowhere",
		State: "CA",
	})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteArtistNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM artists WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteArtist(context.Background(), 42); !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
