package order

import (
	"errors"
	"fmt"
	"strings"

	"maintenance/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for transition requests that are not
// part of the workflow's closed transition table. It is always a client
// error and is never retried.
var ErrInvalidTransition = errors.New("transition is not defined from current status")

// Status represents the lifecycle state of a maintenance order.
// It implements a strictly forward state machine:
//
//	Created → Planned → Released → InProgress → Confirmed → TECO
//
// There are no cycles and no fallthrough: a transition exists only if the
// (current, requested) pair is enumerated in the transition table. TECO
// (technical completion) is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned at order creation.
	// Operations and components are defined in this status.
	Created

	// Planned indicates scope definition is complete and the cost estimate
	// has been computed.
	Planned

	// Released indicates the order has passed its release prerequisites
	// (permits, materials, technician) and work may begin.
	Released

	// InProgress indicates execution has started: at least one goods issue
	// or confirmation has been posted.
	InProgress

	// Confirmed indicates all planned operations carry at least one
	// confirmation.
	Confirmed

	// Teco is technical completion, the terminal state of the workflow.
	Teco
)

// transitionTable enumerates every permitted transition. The workflow is a
// single forward chain, so each status has at most one successor.
func transitionTable() map[Status]Status {
	return map[Status]Status{
		Created:    Planned,
		Planned:    Released,
		Released:   InProgress,
		InProgress: Confirmed,
		Confirmed:  Teco,
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Planned:    "Planned",
		Released:   "Released",
		InProgress: "InProgress",
		Confirmed:  "Confirmed",
		Teco:       "TECO",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Planned:    "Planned",
		Released:   "Released",
		InProgress: "InProgress",
		Confirmed:  "Confirmed",
		Teco:       "TECO",
	}
}

// Validate checks if the Status value is one of the six workflow states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leads out of the status.
func (s Status) IsTerminal() bool {
	_, ok := transitionTable()[s]
	return !ok && s == Teco
}

// CanTransitionTo reports whether the (s, target) pair is part of the
// transition table. Pairs not enumerated never transition.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := transitionTable()[s]
	return ok && next == target
}

// TransitionTo returns the new status for a requested transition, or an
// InvalidTransitionError when the (s, target) pair is not enumerated.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Released)
//	if err != nil {
//	    var invalid *order.InvalidTransitionError
//	    if errors.As(err, &invalid) {
//	        // reject as client error, do not retry
//	    }
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}

// InvalidTransitionError reports a transition request whose (from, to) pair
// is not part of the transition table. Unwraps to ErrInvalidTransition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ParseStatus converts an external string to a Status. Matching is
// case-insensitive and accepts "in_progress" for InProgress; this is the
// single case-normalizing conversion point for the system boundary. Core
// code compares Status values, never strings.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "created":
		return Created, nil
	case "planned":
		return Planned, nil
	case "released":
		return Released, nil
	case "inprogress", "in_progress":
		return InProgress, nil
	case "confirmed":
		return Confirmed, nil
	case "teco":
		return Teco, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a known status", s))
	}
}
