package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"maintenance/internal/pkg/errs"
)

const (
	// GeneralOrderPrefix is the namespace prefix for planned maintenance orders.
	GeneralOrderPrefix = "MO"
	// BreakdownOrderPrefix is the namespace prefix for emergency breakdown orders.
	BreakdownOrderPrefix = "BD"

	orderNumberSeparator = "-"
	orderNumberDigits    = 6
)

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not created
// through one of the constructor functions.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewGeneralOrderNumber, NewBreakdownOrderNumber, or OrderNumberFromString",
)

// OrderNumber is the immutable business identifier of a maintenance order.
// It carries a namespace prefix that distinguishes planned ("MO-") from
// breakdown ("BD-") orders while remaining unique system-wide, because both
// namespaces draw from the same monotonic sequence.
//
// The zero value is invalid and must be constructed through one of the
// factory functions. OrderNumber is immutable and safe for concurrent use.
//
// Example:
//
//	number := kernel.NewGeneralOrderNumber(42)
//	fmt.Println(number.String()) // "MO-000042"
type OrderNumber struct {
	value string
}

// NewGeneralOrderNumber builds the order number for a planned maintenance
// order from a sequence value. The sequence must be positive.
func NewGeneralOrderNumber(sequence int64) (OrderNumber, error) {
	return newOrderNumber(GeneralOrderPrefix, sequence)
}

// NewBreakdownOrderNumber builds the order number for an emergency breakdown
// order from a sequence value. The sequence must be positive.
func NewBreakdownOrderNumber(sequence int64) (OrderNumber, error) {
	return newOrderNumber(BreakdownOrderPrefix, sequence)
}

func newOrderNumber(prefix string, sequence int64) (OrderNumber, error) {
	if sequence <= 0 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence", fmt.Errorf("%d is not greater than 0", sequence))
	}
	return OrderNumber{
		value: fmt.Sprintf("%s%s%0*d", prefix, orderNumberSeparator, orderNumberDigits, sequence),
	}, nil
}

// OrderNumberFromString parses an order number from its string representation.
// Accepts only the canonical "MO-NNNNNN" / "BD-NNNNNN" forms; this is the
// reconstruction path for persistence and system boundaries.
func OrderNumberFromString(s string) (OrderNumber, error) {
	prefix, digits, found := strings.Cut(s, orderNumberSeparator)
	if !found || (prefix != GeneralOrderPrefix && prefix != BreakdownOrderPrefix) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q does not match MO-/BD- namespace", s))
	}

	sequence, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || sequence <= 0 || len(digits) != orderNumberDigits {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q does not carry a valid sequence", s))
	}

	return OrderNumber{value: s}, nil
}

// String returns the canonical textual representation, e.g. "MO-000042".
func (n OrderNumber) String() string {
	return n.value
}

// IsBreakdown reports whether the number belongs to the breakdown namespace.
func (n OrderNumber) IsBreakdown() bool {
	return strings.HasPrefix(n.value, BreakdownOrderPrefix+orderNumberSeparator)
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks that the OrderNumber was properly constructed.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
