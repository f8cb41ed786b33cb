package queries

import (
	"errors"
	"strings"

	"meethere/internal/pkg/errs"
	"meethere/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves one page of a user's reservation orders.
// A user with no orders gets an empty page, not an error.
type GetUserOrdersQuery struct {
	userID string
	page   PageRequest

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for the given user's orders.
func NewGetUserOrdersQuery(userID string, page PageRequest) (GetUserOrdersQuery, error) {
	if strings.TrimSpace(userID) == "" {
		return GetUserOrdersQuery{}, errs.NewValueIsRequiredError("userID")
	}
	if err := page.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID: userID,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are requested.
func (q GetUserOrdersQuery) UserID() string {
	return q.userID
}

// Page returns the requested page slice.
func (q GetUserOrdersQuery) Page() PageRequest {
	return q.page
}
