package queries

import (
	"errors"
	"fmt"
	"time"

	"meethere/internal/pkg/errs"
	"meethere/internal/pkg/guard"
)

var ErrGetVenueOrdersQueryIsNotConstructed = errors.New(
	"GetVenueOrdersQuery must be created via NewGetVenueOrdersQuery constructor",
)

// GetVenueOrdersQuery retrieves every order for a venue whose start time falls
// within a date range. Both range ends are inclusive, so a booking starting
// exactly at either bound is returned.
//
// Example:
//
//	query, _ := NewGetVenueOrdersQuery(3, from, to)
//	handler := NewGetVenueOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
type GetVenueOrdersQuery struct {
	venueID int64
	from    time.Time
	to      time.Time

	guard guard.ConstructorGuard
}

// NewGetVenueOrdersQuery creates a query for a venue's orders between from
// and to inclusive. The range must be set and must not be inverted.
func NewGetVenueOrdersQuery(venueID int64, from, to time.Time) (GetVenueOrdersQuery, error) {
	if venueID <= 0 {
		return GetVenueOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"venueID", fmt.Errorf("%d is not greater than 0", venueID),
		)
	}
	if from.IsZero() {
		return GetVenueOrdersQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetVenueOrdersQuery{}, errs.NewValueIsRequiredError("to")
	}
	if to.Before(from) {
		return GetVenueOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"to", fmt.Errorf("%s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339)),
		)
	}

	return GetVenueOrdersQuery{
		venueID: venueID,
		from:    from,
		to:      to,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVenueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVenueOrdersQueryIsNotConstructed)
}

// VenueID returns the identifier of the venue whose orders are requested.
func (q GetVenueOrdersQuery) VenueID() int64 {
	return q.venueID
}

// From returns the inclusive lower bound of the start-time range.
func (q GetVenueOrdersQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper bound of the start-time range.
func (q GetVenueOrdersQuery) To() time.Time {
	return q.to
}
