package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"meethere/internal/pkg/errs"
	"meethere/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to book a venue.
// The venue is referenced by its unique name; cost and review status are
// derived by the handler.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("Court A", startTime, 2, "user1")
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	venueName string
	startTime time.Time
	hours     int
	userID    string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new reservation order.
// Validates that the venue name and user id are non-blank, hours is positive
// and the start time is set and lies strictly in the future.
func NewSubmitOrderCommand(venueName string, startTime time.Time, hours int, userID string) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVenueName(venueName),
		cmd.setHours(hours),
		cmd.setStartTime(startTime),
		cmd.setUserID(userID),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// VenueName returns the unique name of the venue to book.
func (c SubmitOrderCommand) VenueName() string {
	return c.venueName
}

// StartTime returns the requested reservation start.
func (c SubmitOrderCommand) StartTime() time.Time {
	return c.startTime
}

// Hours returns the requested duration in hours.
func (c SubmitOrderCommand) Hours() int {
	return c.hours
}

// UserID returns the identifier of the requesting user.
func (c SubmitOrderCommand) UserID() string {
	return c.userID
}

func (c *SubmitOrderCommand) setVenueName(venueName string) error {
	if strings.TrimSpace(venueName) == "" {
		return errs.NewValueIsRequiredError("venueName")
	}

	c.venueName = venueName
	return nil
}

func (c *SubmitOrderCommand) setHours(hours int) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("hours", fmt.Errorf("%d is not greater than 0", hours))
	}

	c.hours = hours
	return nil
}

func (c *SubmitOrderCommand) setStartTime(startTime time.Time) error {
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

func (c *SubmitOrderCommand) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}
