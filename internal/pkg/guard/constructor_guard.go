// Package guard provides the ConstructorGuard pattern used by commands,
// queries and value objects to ensure instances are created through their
// designated constructor functions rather than as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific validation error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through a constructor from
// zero-value instances. Embedding a guard in a struct and setting it with
// NewConstructorGuard inside the constructor lets Validate detect structs
// that bypassed construction and therefore skipped validation.
//
// Example:
//
//	type CreateParcelCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCreateParcelCommand(orderID string) (CreateParcelCommand, error) {
//	    if orderID == "" {
//	        return CreateParcelCommand{}, ErrOrderIDIsRequired
//	    }
//	    return CreateParcelCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateParcelCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as properly
// constructed. Call it only inside constructor functions.
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
