package game

import "errors"

// Failure taxonomy. Every declined action wraps one of these sentinels
// with a reason; none of them is fatal and none mutates state.
var (
	// ErrNotFound: the referenced animal/enclosure/worker/offer does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation: malformed or out-of-range input.
	ErrValidation = errors.New("invalid input")

	// ErrIneligible: the action is structurally impossible right now
	// (placement mismatch, breeding rules, assignment caps, firing the
	// director or the last worker).
	ErrIneligible = errors.New("action declined")

	// ErrInsufficientFunds: the zoo cannot pay for it.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
