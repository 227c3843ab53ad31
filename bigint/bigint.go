// Package bigint provides the arbitrary-precision integer value type and the
// modulus-bound field abstraction used by the accumulator. Values are
// immutable by convention: no operation modifies its operands, and fields
// always return freshly allocated results.
package bigint

import (
	"io"
	"math/big"
)

// Int represents an immutable-by-convention, arbitrary-precision nonnegative
// integer. Ints are totally ordered and support value equality, explicit
// cloning, and fixed-width big-endian encoding.
type Int = *integer

type integer struct {
	value big.Int
}

// New returns the Int with the given value.
func New(v uint64) Int {
	x := &integer{}
	x.value.SetUint64(v)
	return x
}

// Non-constant time function, to be used for testing purposes and initialization only.
// Panics on invalid input; value must represent a natural number in base 10.
func NewFromString(value string) Int {
	x := &integer{}
	if _, ok := x.value.SetString(value, 10); !ok || x.value.Sign() < 0 {
		panic("invalid integer value: " + value)
	}
	return x
}

// FromBytes interprets the given slice as a big-endian unsigned integer.
// An empty slice yields zero.
func FromBytes(b []byte) Int {
	x := &integer{}
	x.value.SetBytes(b)
	return x
}

// Random samples an Int uniformly from {0, 1, ..., bound - 1} using the
// provided io.Reader. A constant number of bytes, 128 bits more than the
// bound's size, is read so that the result is deterministically derived from
// the reader and the modulo reduction bias is negligible.
func Random(rand io.Reader, bound Int) (Int, error) {
	rngBytes := make([]byte, len(bound.value.Bytes())+16)
	if _, err := io.ReadFull(rand, rngBytes); err != nil {
		return nil, err
	}
	x := &integer{}
	x.value.SetBytes(rngBytes)
	x.value.Mod(&x.value, &bound.value)
	return x, nil
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, and +1 if x > y.
func (x Int) Cmp(y Int) int {
	return x.value.Cmp(&y.value)
}

// Equal tests two Ints for value equality.
func (x Int) Equal(y Int) bool {
	return x.value.Cmp(&y.value) == 0
}

// IsZero returns true if x is zero, and false otherwise.
func (x Int) IsZero() bool {
	return x.value.Sign() == 0
}

// Returns an independent copy of the integer.
func (x Int) Clone() Int {
	c := &integer{}
	c.value.Set(&x.value)
	return c
}

// Bytes returns the minimal big-endian encoding of x. The result is empty for
// a zero value.
func (x Int) Bytes() []byte {
	return x.value.Bytes()
}

// FixedBytes returns the big-endian encoding of x, left-padded with zeros to
// exactly size bytes. It panics if x does not fit; marshaling code relies on
// this to surface encoding contract violations through the codec's panic
// recovery.
func (x Int) FixedBytes(size int) []byte {
	buf := make([]byte, size)
	x.value.FillBytes(buf)
	return buf
}

// Non-constant time function, to be used for testing purposes.
func (x Int) String() string {
	return x.value.String()
}
