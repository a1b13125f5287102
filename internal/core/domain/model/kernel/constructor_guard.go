package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// the caller passes a nil validation error, so a misconstructed object
// always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor
// from zero-value structs. Domain types embed one, set it in the
// constructor, and check it first in Validate, so a struct literal that
// skipped the constructor fails validation before any invariant is read.
//
// Example:
//
//	type Cart struct {
//	    sessionID string
//	    guard     ConstructorGuard
//	}
//
//	func NewCart(sessionID string) (Cart, error) {
//	    if sessionID == "" {
//	        return Cart{}, errors.New("sessionID is required")
//	    }
//	    return Cart{sessionID: sessionID, guard: NewConstructorGuard()}, nil
//	}
//
//	func (c Cart) Validate() error {
//	    return c.guard.Validate(ErrCartNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the containing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed object. For a zero value it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
