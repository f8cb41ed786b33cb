package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"meethere/internal/core/domain/model/venue"
	"meethere/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a store-assigned identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order represents a venue reservation request. It is the aggregate root that
// manages the order lifecycle from submission through review to completion.
//
// Order maintains these invariants:
//   - hours is positive
//   - total equals hours × the venue's hourly price at submission time,
//     recomputed on every re-submission
//   - startTime lies strictly in the future at submission/update time
//   - userID is non-blank
//   - status transitions follow the rules in Status
//
// The identifier is assigned by the store on first insert; a freshly submitted
// order carries id 0 until the repository reflects the generated key back via
// AssignID.
type Order struct {
	id        int64
	userID    string
	venueID   int64
	startTime time.Time
	hours     int
	total     int
	orderTime time.Time
	status    Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new reservation order for the given venue with
// validation. The order starts in NoAudit status with orderTime set to now
// and total computed as hours × the venue's hourly price.
//
// Parameters:
//   - v: the reserved venue (must be a valid Venue)
//   - startTime: reservation start (must be strictly in the future)
//   - hours: booked duration (must be positive)
//   - userID: requesting user (must be non-blank)
//
// Returns the created order, or a validation error if any parameter is
// invalid. All violations are joined so callers see every failing field.
func NewOrder(v *venue.Venue, startTime time.Time, hours int, userID string) (*Order, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:        NoAudit,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setStartTime(startTime),
		order.setHours(hours),
		order.setUserID(userID),
	); err != nil {
		return nil, err
	}

	order.venueID = v.ID()
	order.total = order.hours * v.Price()
	order.orderTime = time.Now()

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// submission-time checks: a stored startTime may legitimately lie in the past
// and the total is taken as persisted. The status must still be valid.
func RestoreOrder(
	id int64,
	userID string,
	venueID int64,
	startTime time.Time,
	hours int,
	total int,
	orderTime time.Time,
	status Status,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		userID:        userID,
		venueID:       venueID,
		startTime:     startTime,
		hours:         hours,
		total:         total,
		orderTime:     orderTime,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID reflects the store-generated identifier back into the aggregate
// after the first insert. It may be called exactly once, with a positive id.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", id))
	}

	o.id = id
	return nil
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's store-assigned identifier (0 before first insert).
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the identifier of the requesting user.
func (o *Order) UserID() string {
	return o.userID
}

// VenueID returns the identifier of the reserved venue.
func (o *Order) VenueID() int64 {
	return o.venueID
}

// StartTime returns the reservation start time.
func (o *Order) StartTime() time.Time {
	return o.startTime
}

// Hours returns the booked duration in hours.
func (o *Order) Hours() int {
	return o.hours
}

// Total returns the computed cost of the reservation.
func (o *Order) Total() int {
	return o.total
}

// OrderTime returns the time the order was submitted or last re-submitted.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Status returns the current review status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Resubmit replaces the order's booking details and resets it to NoAudit.
//
// Every edit is a re-submission: the prior review verdict is discarded, the
// total is recomputed against the venue's current hourly price and orderTime
// is set to now. The same validation rules as NewOrder apply. Ownership of
// the order is the caller's concern; Resubmit overwrites userID with the
// supplied value.
func (o *Order) Resubmit(v *venue.Venue, startTime time.Time, hours int, userID string) error {
	if err := v.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		o.setStartTime(startTime),
		o.setHours(hours),
		o.setUserID(userID),
	); err != nil {
		return err
	}

	newStatus, err := o.status.Resubmit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.venueID = v.ID()
	o.total = o.hours * v.Price()
	o.orderTime = time.Now()
	return nil
}

// Confirm applies the Wait verdict: the order is approved and awaits
// execution. Any valid current status may be confirmed.
func (o *Order) Confirm() error {
	return o.review(Wait)
}

// Finish applies the Finish verdict: the order is marked completed.
// No prior confirmation is required.
func (o *Order) Finish() error {
	return o.review(Finish)
}

// Reject applies the Reject verdict: the order is administratively denied.
func (o *Order) Reject() error {
	return o.review(Reject)
}

func (o *Order) review(verdict Status) error {
	newStatus, err := o.status.Review(verdict)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setStartTime validates and sets the reservation start time.
// The time must be set and lie strictly in the future.
func (o *Order) setStartTime(startTime time.Time) error {
	if startTime.IsZero() {
		return errs.NewValueIsRequiredError("startTime")
	}
	if !startTime.After(time.Now()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"startTime",
			fmt.Errorf("%s is not in the future", startTime.Format(time.RFC3339)),
		)
	}
	o.startTime = startTime
	return nil
}

// setHours validates and sets the booked duration.
// Hours must be positive.
func (o *Order) setHours(hours int) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("hours", fmt.Errorf("%d is not greater than 0", hours))
	}
	o.hours = hours
	return nil
}

// setUserID validates and sets the requesting user's identifier.
func (o *Order) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("userID")
	}
	o.userID = userID
	return nil
}
