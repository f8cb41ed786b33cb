// Package guard provides the constructor guard used by commands, queries and
// value objects to detect instances that bypassed their constructor.
//
// A zero-value struct embedding a ConstructorGuard fails Validate, so code
// that receives a command or query can refuse objects that were never put
// through constructor validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error was supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. The zero value is "not constructed".
//
// Example:
//
//	type SubmitOrderCommand struct {
//	    venueName string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewSubmitOrderCommand(venueName string) (SubmitOrderCommand, error) {
//	    if venueName == "" {
//	        return SubmitOrderCommand{}, errs.NewValueIsRequiredError("venueName")
//	    }
//	    return SubmitOrderCommand{venueName: venueName, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
