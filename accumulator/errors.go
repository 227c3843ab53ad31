package accumulator

import (
	"errors"

	"github.com/accumulator-labs/go-accumulator/bigint"
)

// The closed set of failure conditions surfaced by this package. Every
// fallible operation returns one of these, possibly wrapped with additional
// context; none of them is ever recovered from locally. Match with
// errors.Is.
var (
	// ErrDuplicateMember is returned when inserting a value whose prime image
	// is already present. The accumulator is left unchanged.
	ErrDuplicateMember = errors.New("accumulator: member already present")

	// ErrInvalidMember is returned when removing a value whose prime image is
	// not present. The accumulator is left unchanged.
	ErrInvalidMember = errors.New("accumulator: member not present")

	// ErrNonInvertibleElement is returned when a removal requires inverting
	// an element that is not coprime to the secret totient. Under the
	// hash-to-prime contract this is practically unreachable, but it is
	// propagated rather than swallowed.
	ErrNonInvertibleElement = bigint.ErrNonInvertible

	// ErrMalformedEncoding is returned by FromBytes when the input is shorter
	// than the fixed header, truncated mid-member-list, or otherwise not an
	// instance of the canonical layout.
	ErrMalformedEncoding = errors.New("accumulator: malformed encoding")
)
