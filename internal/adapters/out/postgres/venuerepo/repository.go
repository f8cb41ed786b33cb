package venuerepo

import (
	"context"
	"errors"

	"meethere/internal/core/domain/model/venue"
	"meethere/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVenueRepository implements VenueRepository using GORM.
type GormVenueRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormVenueRepository creates a new GORM venue repository.
func NewGormVenueRepository(db *gorm.DB, tracker aggregateTracker) *GormVenueRepository {
	return &GormVenueRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new venue to the database and reflects the store-assigned id
// back into the entity.
func (r *GormVenueRepository) Add(ctx context.Context, entity *venue.Venue) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if entity.ID() == 0 {
		if err := entity.AssignID(dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// GetByName retrieves a venue by its unique name.
func (r *GormVenueRepository) GetByName(ctx context.Context, name string) (*venue.Venue, error) {
	var dto VenueDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("venueName", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
