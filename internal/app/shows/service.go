package shows

import (
	"context"
	"time"

	"showbill/internal/models"
)

// Store defines persistence operations for shows
type Store interface {
	CreateShow(ctx context.Context, show *models.Show) (*models.Show, error)
	ListShows(ctx context.Context) ([]models.ShowListing, error)
}

// Service coordinates show-related operations. Shows are created and listed
// only; there is no edit or delete.
type Service interface {
	Create(ctx context.Context, venueID, artistID int64, startTime time.Time) (*models.Show, error)
	List(ctx context.Context) ([]models.ShowListing, error)
}

type service struct {
	store Store
}

// New constructs a shows Service
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, venueID, artistID int64, startTime time.Time) (*models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateShow(ctx, &models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	})
}

func (s *service) List(ctx context.Context) ([]models.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}
