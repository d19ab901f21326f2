package kernel

import (
	"errors"

	"maintenance/internal/pkg/errs"
)

var (
	// ErrEquipmentRefIsNotConstructed indicates that an EquipmentRef was not
	// created through one of the constructor functions.
	ErrEquipmentRefIsNotConstructed = errs.NewValueIsRequiredError(
		"EquipmentRef must be created via NewEquipmentRef or NewFunctionalLocationRef",
	)
	// ErrEquipmentRefIsAmbiguous is returned when both an equipment id and a
	// functional location are supplied. Exactly one of the two must identify
	// the technical object.
	ErrEquipmentRefIsAmbiguous = errors.New("equipment reference must carry either an equipment id or a functional location, not both")
)

// EquipmentRef identifies the technical object a maintenance order works on.
// A reference points either at a concrete piece of equipment (by equipment id)
// or at a functional location in the plant hierarchy — exactly one of the two.
//
// EquipmentRef is an immutable value object; the zero value is invalid.
//
// Example:
//
//	ref, err := kernel.NewEquipmentRef("PUMP-001")
//	ref, err := kernel.NewFunctionalLocationRef("PLANT-A/LINE-2/STATION-7")
type EquipmentRef struct {
	equipmentID        string
	functionalLocation string
}

// NewEquipmentRef creates a reference to a concrete piece of equipment.
func NewEquipmentRef(equipmentID string) (EquipmentRef, error) {
	if equipmentID == "" {
		return EquipmentRef{}, errs.NewValueIsRequiredError("equipment id")
	}
	return EquipmentRef{equipmentID: equipmentID}, nil
}

// NewFunctionalLocationRef creates a reference to a functional location.
func NewFunctionalLocationRef(functionalLocation string) (EquipmentRef, error) {
	if functionalLocation == "" {
		return EquipmentRef{}, errs.NewValueIsRequiredError("functional location")
	}
	return EquipmentRef{functionalLocation: functionalLocation}, nil
}

// RestoreEquipmentRef reconstructs a reference from persistence, where exactly
// one of the two identifiers must be present.
func RestoreEquipmentRef(equipmentID, functionalLocation string) (EquipmentRef, error) {
	switch {
	case equipmentID != "" && functionalLocation != "":
		return EquipmentRef{}, ErrEquipmentRefIsAmbiguous
	case equipmentID != "":
		return NewEquipmentRef(equipmentID)
	case functionalLocation != "":
		return NewFunctionalLocationRef(functionalLocation)
	default:
		return EquipmentRef{}, ErrEquipmentRefIsNotConstructed
	}
}

// EquipmentID returns the equipment id, or "" for functional-location references.
func (r EquipmentRef) EquipmentID() string {
	return r.equipmentID
}

// FunctionalLocation returns the functional location, or "" for equipment references.
func (r EquipmentRef) FunctionalLocation() string {
	return r.functionalLocation
}

// String returns whichever identifier the reference carries.
func (r EquipmentRef) String() string {
	if r.equipmentID != "" {
		return r.equipmentID
	}
	return r.functionalLocation
}

// IsEqual compares two references by value.
func (r EquipmentRef) IsEqual(other EquipmentRef) bool {
	return r.equipmentID == other.equipmentID && r.functionalLocation == other.functionalLocation
}

// Validate checks that the EquipmentRef was properly constructed.
func (r EquipmentRef) Validate() error {
	if r.equipmentID == "" && r.functionalLocation == "" {
		return ErrEquipmentRefIsNotConstructed
	}
	return nil
}
