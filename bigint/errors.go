package bigint

import "errors"

var (
	// ErrCapacityExhausted indicates an operation on a non-growable bigint
	// needed more digits than were allocated to it.
	ErrCapacityExhausted = errors.New("bigint: capacity exhausted")

	// ErrInvalidArgument indicates a nil or out-of-domain argument, such as
	// a zero modulus, a non-positive trial count, or a sieve bound below 3.
	ErrInvalidArgument = errors.New("bigint: invalid argument")

	// ErrBufferTooSmall indicates Serialize was given a buffer smaller
	// than SerializedSize requires.
	ErrBufferTooSmall = errors.New("bigint: buffer too small")

	// ErrPrecondition indicates an argument-aliasing precondition was
	// violated, such as passing the same bigint as both the quotient and
	// another argument to DivMod.
	ErrPrecondition = errors.New("bigint: precondition violated")
)
