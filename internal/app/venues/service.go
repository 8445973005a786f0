package venues

import (
	"context"
	"time"

	"showbill/internal/models"
)

// Store defines persistence operations for venues
type Store interface {
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	ListVenues(ctx context.Context, now time.Time) ([]*models.VenueWithShowCount, error)
	SearchVenues(ctx context.Context, term string, now time.Time) ([]*models.VenueWithShowCount, error)
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
	ShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowRef, error)
}

// Service coordinates venue-related operations
type Service interface {
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	ListByArea(ctx context.Context) ([]models.VenueArea, error)
	Search(ctx context.Context, term string) (int, []*models.VenueWithShowCount, error)
	Get(ctx context.Context, id int64) (*models.VenueDetail, error)
	GetForEdit(ctx context.Context, id int64) (*models.Venue, error)
	Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a venues Service
func New(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateVenue(ctx, venue)
}

// ListByArea groups every venue by (city, state). Groups appear in the order
// the first venue of each pair was listed; no further ordering is imposed.
func (s *service) ListByArea(ctx context.Context) ([]models.VenueArea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	venues, err := s.store.ListVenues(ctx, s.now())
	if err != nil {
		return nil, err
	}

	type areaKey struct{ city, state string }

	var areas []models.VenueArea
	index := make(map[areaKey]int)
	for _, v := range venues {
		key := areaKey{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, models.VenueArea{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, *v)
	}

	return areas, nil
}

func (s *service) Search(ctx context.Context, term string) (int, []*models.VenueWithShowCount, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	matches, err := s.store.SearchVenues(ctx, term, s.now())
	if err != nil {
		return 0, nil, err
	}
	return len(matches), matches, nil
}

// Get assembles the venue detail view: the venue's own fields plus its shows
// partitioned into past and upcoming relative to the service clock.
func (s *service) Get(ctx context.Context, id int64) (*models.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	refs, err := s.store.ShowsByVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := models.PartitionShows(refs, s.now())
	return &models.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) GetForEdit(ctx context.Context, id int64) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}
