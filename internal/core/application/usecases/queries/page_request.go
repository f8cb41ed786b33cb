// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read directly
// from the database with raw SQL, bypassing the domain model for performance.
package queries

import (
	"errors"
	"fmt"

	"meethere/internal/pkg/errs"
	"meethere/internal/pkg/guard"
)

var ErrPageRequestIsNotConstructed = errors.New(
	"PageRequest must be created via NewPageRequest constructor",
)

const (
	// DefaultPageSize is used when a listing request does not name a size.
	DefaultPageSize = 10

	// MaxPageSize caps a single listing request.
	MaxPageSize = 100
)

// PageRequest is a validated slice of a listing: a 1-based page number and a
// page size between 1 and MaxPageSize.
type PageRequest struct { //nolint:recvcheck //using for validation
	page int
	size int

	guard guard.ConstructorGuard
}

// NewPageRequest creates a page request with the given 1-based page number
// and page size. Pass 0 as size to get DefaultPageSize.
func NewPageRequest(page, size int) (PageRequest, error) {
	if size == 0 {
		size = DefaultPageSize
	}

	pr := PageRequest{
		guard: guard.NewConstructorGuard(),
	}

	if page < 1 {
		return PageRequest{}, errs.NewValueIsInvalidErrorWithCause(
			"page", fmt.Errorf("%d is not greater than 0", page),
		)
	}
	pr.page = page

	if size < 1 || size > MaxPageSize {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("pageSize", size, 1, MaxPageSize)
	}
	pr.size = size

	return pr, nil
}

// Validate ensures the page request was created through the constructor.
func (p PageRequest) Validate() error {
	return p.guard.Validate(ErrPageRequestIsNotConstructed)
}

// Page returns the 1-based page number.
func (p PageRequest) Page() int {
	return p.page
}

// Size returns the page size.
func (p PageRequest) Size() int {
	return p.size
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return (p.page - 1) * p.size
}
