package queries

import (
	"errors"

	"meethere/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves one page of the administrator's review
// queue: every order still in the NoAudit status.
type GetPendingOrdersQuery struct {
	page PageRequest

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the review queue page.
func NewGetPendingOrdersQuery(page PageRequest) (GetPendingOrdersQuery, error) {
	if err := page.Validate(); err != nil {
		return GetPendingOrdersQuery{}, err
	}

	return GetPendingOrdersQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// Page returns the requested page slice.
func (q GetPendingOrdersQuery) Page() PageRequest {
	return q.page
}
