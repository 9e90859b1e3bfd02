package accumulator

import "github.com/go-errors/errors"

var (
	// ErrInvalidArgument is returned when an input fails its type/shape
	// contract. No state is changed.
	ErrInvalidArgument = errors.New("accumulator: invalid argument")

	// ErrNotAMember is returned by Accumulator.Del when the supplied
	// witness does not verify against the current commitment. No state
	// is changed.
	ErrNotAMember = errors.New("accumulator: witness is not a member")

	// ErrArithmeticFailure indicates a modular inverse of zero was
	// required, or that Prover.Prove lacks a Q point it needs; either implies
	// a broken invariant (for example an accumulated element
	// e with e+c โ‰ก 0 mod n). This is a fatal condition; an Accumulator or
	// Prover that returns it should be discarded.
	ErrArithmeticFailure = errors.New("accumulator: arithmetic failure (broken invariant)")

	// ErrUnknownElement is returned by Prover.Prove when asked to prove
	// membership of an element not currently believed to be accumulated.
	// The spec leaves this case's behavior undefined and notes that
	// implementations "SHOULD surface an error rather than produce a
	// witness that will silently fail verification"; this package takes
	// that option.
	ErrUnknownElement = errors.New("accumulator: element is not currently accumulated")
)
