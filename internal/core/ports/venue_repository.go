package ports

import (
	"context"

	"meethere/internal/core/domain/model/venue"
)

// VenueRepository defines the persistence contract for venues. Venues are
// read-only from the order component's perspective; Add exists for the seeder
// and tests.
type VenueRepository interface {
	// Add persists a new venue and reflects the store-assigned id back into
	// the entity. The venue name must not already exist.
	Add(ctx context.Context, entity *venue.Venue) error

	// GetByName retrieves a venue by its unique name.
	// Returns a not-found error when no such venue exists.
	GetByName(ctx context.Context, name string) (*venue.Venue, error)
}
