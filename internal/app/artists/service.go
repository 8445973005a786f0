package artists

import (
	"context"
	"time"

	"showbill/internal/models"
)

// Store defines persistence operations for artists
type Store interface {
	CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	ListArtists(ctx context.Context) ([]models.ArtistRef, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]*models.ArtistWithShowCount, error)
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
	ShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowRef, error)
}

// Service coordinates artist-related operations
type Service interface {
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	List(ctx context.Context) ([]models.ArtistRef, error)
	Search(ctx context.Context, term string) (int, []*models.ArtistWithShowCount, error)
	Get(ctx context.Context, id int64) (*models.ArtistDetail, error)
	GetForEdit(ctx context.Context, id int64) (*models.Artist, error)
	Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs an artists Service
func New(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Create(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) List(ctx context.Context) ([]models.ArtistRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Search(ctx context.Context, term string) (int, []*models.ArtistWithShowCount, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	matches, err := s.store.SearchArtists(ctx, term, s.now())
	if err != nil {
		return 0, nil, err
	}
	return len(matches), matches, nil
}

// Get assembles the artist detail view: the artist's own fields plus its
// shows partitioned into past and upcoming relative to the service clock.
func (s *service) Get(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	refs, err := s.store.ShowsByArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := models.PartitionShows(refs, s.now())
	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) GetForEdit(ctx context.Context, id int64) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteArtist(ctx, id)
}
