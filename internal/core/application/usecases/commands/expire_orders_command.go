package commands

import (
	"errors"
	"time"

	"meethere/internal/pkg/errs"
	"meethere/internal/pkg/guard"
)

var ErrExpireOrdersCommandIsNotConstructed = errors.New(
	"ExpireOrdersCommand must be created via NewExpireOrdersCommand constructor",
)

// ExpireOrdersCommand represents a sweep that rejects every unreviewed order
// whose start time has already passed. Issued periodically by the background
// scheduler with the current time as the cutoff.
type ExpireOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireOrdersCommand creates a command that expires pending orders
// starting before the given cutoff.
func NewExpireOrdersCommand(cutoff time.Time) (ExpireOrdersCommand, error) {
	cmd := ExpireOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return ExpireOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOrdersCommandIsNotConstructed)
}

// Cutoff returns the moment before which pending orders are considered stale.
func (c ExpireOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *ExpireOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}
