package commands

import (
	"errors"
	"fmt"

	"meethere/internal/core/domain/model/order"
	"meethere/internal/pkg/errs"
	"meethere/internal/pkg/guard"
)

var ErrReviewOrderCommandIsNotConstructed = errors.New(
	"ReviewOrderCommand must be created via one of its verdict constructors",
)

// ReviewOrderCommand represents an administrator verdict on an order.
// The three verdicts share one command shape; use the dedicated constructor
// for the verdict you need:
//
//	cmd, err := NewConfirmOrderCommand(orderID) // approve the booking
//	cmd, err := NewFinishOrderCommand(orderID)  // mark the booking completed
//	cmd, err := NewRejectOrderCommand(orderID)  // decline the booking
type ReviewOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	verdict order.Status

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command that approves the order,
// moving it to the Wait status.
func NewConfirmOrderCommand(orderID int64) (ReviewOrderCommand, error) {
	return newReviewOrderCommand(orderID, order.Wait)
}

// NewFinishOrderCommand creates a command that marks the order completed,
// moving it to the Finish status.
func NewFinishOrderCommand(orderID int64) (ReviewOrderCommand, error) {
	return newReviewOrderCommand(orderID, order.Finish)
}

// NewRejectOrderCommand creates a command that declines the order,
// moving it to the Reject status.
func NewRejectOrderCommand(orderID int64) (ReviewOrderCommand, error) {
	return newReviewOrderCommand(orderID, order.Reject)
}

func newReviewOrderCommand(orderID int64, verdict order.Status) (ReviewOrderCommand, error) {
	cmd := ReviewOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVerdict(verdict),
	); err != nil {
		return ReviewOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ReviewOrderCommand) Validate() error {
	return c.guard.Validate(ErrReviewOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order under review.
func (c ReviewOrderCommand) OrderID() int64 {
	return c.orderID
}

// Verdict returns the status the review moves the order to.
func (c ReviewOrderCommand) Verdict() order.Status {
	return c.verdict
}

func (c *ReviewOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ReviewOrderCommand) setVerdict(verdict order.Status) error {
	if err := verdict.ValidateVerdict(); err != nil {
		return err
	}

	c.verdict = verdict
	return nil
}
