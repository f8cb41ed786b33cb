// Package ports defines repository and unit-of-work interfaces for the
// booking domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"meethere/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Listing and paging reads go through the query handlers instead; this
// interface carries only the lookups the write side needs.
type OrderRepository interface {
	// Add persists a new order and reflects the store-assigned id back into
	// the aggregate. The order must be valid and not yet inserted.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists a status-only change for the order with the given
	// id, leaving every other column untouched. Returns a not-found error when
	// no such order exists.
	UpdateStatus(ctx context.Context, id int64, status order.Status) error

	// Get retrieves an order aggregate by its store-assigned identifier.
	// Returns a not-found error when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllPendingBefore retrieves every NoAudit order whose start time lies
	// strictly before the cutoff. Used by the expiry sweep to reject stale
	// requests still sitting in the review queue.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete removes the order with the given id. Deleting an absent id is a
	// no-op, not an error.
	Delete(ctx context.Context, id int64) error
}
