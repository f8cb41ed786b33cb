package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"meethere/internal/pkg/errs"
	"meethere/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to re-submit an existing order with
// new booking details. Only the owning user may update an order; a successful
// update resets the order to the NoAudit status for a fresh review.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	venueName string
	startTime time.Time
	hours     int
	userID    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// Applies the same field validation as submission plus a positive order id.
func NewUpdateOrderCommand(
	orderID int64, venueName string, startTime time.Time, hours int, userID string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVenueName(venueName),
		cmd.setHours(hours),
		cmd.setStartTime(startTime),
		cmd.setUserID(userID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// VenueName returns the unique name of the venue to book.
func (c UpdateOrderCommand) VenueName() string {
	return c.venueName
}

// StartTime returns the new reservation start.
func (c UpdateOrderCommand) StartTime() time.Time {
	return c.startTime
}

// Hours returns the new duration in hours.
func (c UpdateOrderCommand) Hours() int {
	return c.hours
}

// UserID returns the identifier of the requesting user.
func (c UpdateOrderCommand) UserID() string {
	return c.userID
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setVenueName(venueName string) error {
	if strings.TrimSpace(venueName) == "" {
		return errs.NewValueIsRequiredError("venueName")
	}

	c.venueName = venueName
	return nil
}

func (c *UpdateOrderCommand) setHours(hours int) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("hours", fmt.Errorf("%d is not greater than 0", hours))
	}

	c.hours = hours
	return nil
}

func (c *UpdateOrderCommand) setStartTime(startTime time.Time) error {
	if startTime.IsZero() {
		return errs.NewValueIsRequiredError("startTime")
	}
	if !startTime.After(time.Now()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"startTime",
			fmt.Errorf("%s is not in the future", startTime.Format(time.RFC3339)),
		)
	}

	c.startTime = startTime
	return nil
}

func (c *UpdateOrderCommand) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
