// Package venue provides the Venue entity: a bookable space with a unique
// name and an hourly price. Venues are read-only from the order component's
// perspective; they are provisioned by the seeder and looked up by name when
// orders are submitted or updated.
package venue

import (
	"errors"
	"fmt"
	"strings"

	"meethere/internal/pkg/errs"
)

var (
	// ErrVenueIsNotConstructed is returned when a Venue instance was not created
	// through the NewVenue or RestoreVenue factory methods.
	ErrVenueIsNotConstructed = errors.New("Venue must be created via NewVenue constructor")

	// ErrVenueIDAlreadyAssigned is returned when AssignID is called on a venue
	// that already carries a store-assigned identifier.
	ErrVenueIDAlreadyAssigned = errors.New("venue ID is already assigned")
)

// Venue represents a bookable space. The name is the unique lookup key used
// by order submission; price is the cost per booked hour.
type Venue struct {
	id    int64
	name  string
	price int

	isConstructed bool
}

// NewVenue creates a venue with validation. The name must be non-blank and
// the price positive. The identifier is assigned by the store on insert.
func NewVenue(name string, price int) (*Venue, error) {
	v := &Venue{isConstructed: true}

	if err := errors.Join(
		v.setName(name),
		v.setPrice(price),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVenue reconstructs a venue from persistence.
func RestoreVenue(id int64, name string, price int) (*Venue, error) {
	v := &Venue{isConstructed: true}

	if err := errors.Join(
		v.setName(name),
		v.setPrice(price),
	); err != nil {
		return nil, err
	}

	v.id = id
	return v, nil
}

// Validate ensures the Venue instance was properly constructed through a
// factory method. Returns ErrVenueIsNotConstructed otherwise.
func (v *Venue) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVenueIsNotConstructed
	}
	return nil
}

// AssignID reflects the store-generated identifier back into the entity
// after the first insert. It may be called exactly once, with a positive id.
func (v *Venue) AssignID(id int64) error {
	if v.id != 0 {
		return ErrVenueIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("venueID", fmt.Errorf("%d is not greater than 0", id))
	}

	v.id = id
	return nil
}

// ID returns the venue's store-assigned identifier (0 before first insert).
func (v *Venue) ID() int64 {
	return v.id
}

// Name returns the venue's unique name.
func (v *Venue) Name() string {
	return v.name
}

// Price returns the venue's cost per booked hour.
func (v *Venue) Price() int {
	return v.price
}

func (v *Venue) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("venueName")
	}
	v.name = name
	return nil
}

func (v *Venue) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	v.price = price
	return nil
}
