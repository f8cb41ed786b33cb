package queries

import (
	"errors"

	"meethere/internal/pkg/guard"
)

var ErrGetReviewedOrdersQueryIsNotConstructed = errors.New(
	"GetReviewedOrdersQuery must be created via NewGetReviewedOrdersQuery constructor",
)

// GetReviewedOrdersQuery retrieves every order that passed review: approved
// bookings awaiting execution (Wait) and completed ones (Finish). Rejected
// orders are excluded. This is a parameterless, unpaged listing.
type GetReviewedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReviewedOrdersQuery creates a query for reviewed orders.
func NewGetReviewedOrdersQuery() GetReviewedOrdersQuery {
	return GetReviewedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReviewedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewedOrdersQueryIsNotConstructed)
}
