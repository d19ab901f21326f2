package order

import (
	"fmt"
	"strings"

	"maintenance/internal/pkg/errs"
)

// Type distinguishes planned maintenance orders from emergency breakdown
// orders. Breakdown orders follow accelerated release rules and mandatory
// post-hoc malfunction reporting.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeGeneral is a planned maintenance order.
	TypeGeneral

	// TypeBreakdown is an emergency order created from a fault notification.
	TypeBreakdown
)

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t != TypeGeneral && t != TypeBreakdown {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the canonical lowercase name of the order type.
func (t Type) String() string {
	switch t {
	case TypeGeneral:
		return "general"
	case TypeBreakdown:
		return "breakdown"
	default:
		return "unknown"
	}
}

// ParseType converts an external string to a Type, case-normalizing at the
// boundary.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "general":
		return TypeGeneral, nil
	case "breakdown":
		return TypeBreakdown, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"order type", fmt.Errorf("%q is not a known order type", s))
	}
}

// Priority ranks the urgency of a maintenance order. Breakdown orders are
// always forced to Urgent at creation.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow is routine work with no schedule pressure.
	PriorityLow

	// PriorityNormal is the default priority for planned work.
	PriorityNormal

	// PriorityHigh is schedule-critical planned work.
	PriorityHigh

	// PriorityUrgent is reserved for emergency work.
	PriorityUrgent
)

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p < PriorityLow || p > PriorityUrgent {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the canonical lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

// ParsePriority converts an external string to a Priority, case-normalizing
// at the boundary.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "normal":
		return PriorityNormal, nil
	case "high":
		return PriorityHigh, nil
	case "urgent":
		return PriorityUrgent, nil
	default:
		return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
			"priority", fmt.Errorf("%q is not a known priority", s))
	}
}
