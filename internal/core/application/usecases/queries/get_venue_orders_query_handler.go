package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVenueOrdersQueryHandler retrieves a venue's orders from the database.
type GetVenueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVenueOrdersQueryHandler creates a handler for venue order listings.
// Requires a GORM database connection for query execution.
func NewGetVenueOrdersQueryHandler(db *gorm.DB) GetVenueOrdersQueryHandler {
	return GetVenueOrdersQueryHandler{db: db}
}

// Handle executes the listing. BETWEEN keeps both range ends inclusive.
// Results are sorted by start time for a stable schedule view.
func (h GetVenueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVenueOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE venue_id = ?
		  AND start_time BETWEEN ? AND ?
		ORDER BY start_time, id
	`, query.VenueID(), query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
