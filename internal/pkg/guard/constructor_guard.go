// Package guard provides the constructor guard pattern used by domain objects
// to ensure they are only created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value objects
// and entities are only created through their designated constructor functions.
// It prevents direct struct initialization from bypassing validation rules.
//
// The guard works by maintaining an internal flag that is only set when the
// object is created through the proper constructor. Any attempt to use a
// zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrReportNotConstructed = errors.New("MalfunctionReport must be created via NewMalfunctionReport")
//
//	type MalfunctionReport struct {
//	    causeCode string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewMalfunctionReport(causeCode string) (MalfunctionReport, error) {
//	    if causeCode == "" {
//	        return MalfunctionReport{}, errors.New("cause code is required")
//	    }
//	    return MalfunctionReport{causeCode: causeCode, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r MalfunctionReport) Validate() error {
//	    return r.guard.Validate(ErrReportNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call this in the constructor of domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects, the provided validationError for
// zero values, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
