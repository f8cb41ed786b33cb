package order

import (
	"fmt"

	"meethere/internal/pkg/errs"
)

// Status represents the review state of a reservation order.
//
// State transitions:
//
//	            ┌──> Wait
//	NoAudit ────┼──> Finish
//	            └──> Reject
//
// Every submitted or re-submitted order starts in NoAudit. An administrative
// review moves it to Wait, Finish or Reject; the three verdicts are
// independently callable and carry no precondition on the current status
// (finishing does not require a prior confirmation). A further update of the
// order resets any status back to NoAudit.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NoAudit is the initial status of every submitted or re-submitted order.
	// Orders in this status are waiting for administrative review.
	NoAudit

	// Wait indicates the order has been approved and awaits execution.
	Wait

	// Finish indicates the order has been completed.
	Finish

	// Reject indicates the order has been administratively denied.
	Reject
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		NoAudit: "NoAudit",
		Wait:    "Wait",
		Finish:  "Finish",
		Reject:  "Reject",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NoAudit: "NoAudit",
		Wait:    "Wait",
		Finish:  "Finish",
		Reject:  "Reject",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: NoAudit, Wait, Finish, Reject.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateVerdict checks that the status is a legal review outcome.
// Only Wait, Finish and Reject may be applied as verdicts.
func (s Status) ValidateVerdict() error {
	if s != Wait && s != Finish && s != Reject {
		return errs.NewValueIsInvalidErrorWithCause(
			"verdict is invalid",
			fmt.Errorf("%s is not a valid review verdict", s.String()),
		)
	}
	return nil
}

// Review transitions the status to the given verdict.
//
// The current status must be valid and the verdict must be one of Wait,
// Finish or Reject. No ordering between verdicts is enforced: an order may be
// finished without having been confirmed first, and an already reviewed order
// may be reviewed again.
func (s Status) Review(verdict Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := verdict.ValidateVerdict(); err != nil {
		return 0, err
	}
	return verdict, nil
}

// Resubmit transitions the status back to NoAudit.
//
// Any valid status may be resubmitted; an edited order always requires a new
// review regardless of its prior verdict.
func (s Status) Resubmit() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return NoAudit, nil
}
