package queries

import (
	"context"

	"meethere/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetReviewedOrdersQueryHandler retrieves approved and completed orders
// from the database.
type GetReviewedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewedOrdersQueryHandler creates a handler for reviewed order listings.
// Requires a GORM database connection for query execution.
func NewGetReviewedOrdersQueryHandler(db *gorm.DB) GetReviewedOrdersQueryHandler {
	return GetReviewedOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by id for consistent output.
func (h GetReviewedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReviewedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY id
	`, order.Wait, order.Finish).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
