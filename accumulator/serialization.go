package accumulator

import (
	"fmt"

	"github.com/accumulator-labs/go-accumulator/bigint"
	"github.com/accumulator-labs/go-accumulator/hashtoprime"
	"github.com/accumulator-labs/go-accumulator/internal/codec"
)

// Canonical binary layout, all fields fixed-width big-endian:
//
//	generator     2*FactorSize bytes
//	value         2*FactorSize bytes
//	modulus       2*FactorSize bytes
//	member count  4 bytes
//	members       MemberSize bytes each, ascending numeric order
const (
	// FactorSize is the byte length of one modulus factor; the modulus,
	// generator, and accumulated value occupy twice that.
	FactorSize = 128

	// MemberSize is the byte length of one encoded member prime.
	MemberSize = hashtoprime.Size

	// MinBytes is the encoded size of an empty accumulator, and the fixed
	// header length of any encoding.
	MinBytes = 6*FactorSize + codec.IntSize
)

var _ codec.Codec[*Accumulator] = &Accumulator{}

// Bytes returns the canonical binary encoding of the accumulator's public
// state. Encoding is deterministic: equal accumulators produce identical
// bytes.
func (a *Accumulator) Bytes() ([]byte, error) {
	return codec.Marshal(a)
}

// FromBytes decodes an accumulator from its canonical binary encoding.
// Inputs shorter than required at any stage, longer than the declared
// member count accounts for, or carrying a generator or value not reduced
// modulo the modulus, fail with ErrMalformedEncoding.
//
// Decoding performs no cryptographic revalidation: the value field is
// trusted as-is rather than recomputed from the generator, modulus, and
// members. A corrupted or adversarial encoding can therefore decode into a
// structurally valid but cryptographically inconsistent accumulator; the
// producer of the bytes is assumed honest.
func FromBytes(data []byte) (*Accumulator, error) {
	a, err := codec.Unmarshal(data, &Accumulator{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	field, err := bigint.NewConstantTimeField(a.modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	// Structural validity, not cryptographic revalidation: field elements
	// must be reduced for the decoded accumulator to support further
	// updates.
	if a.generator.Cmp(a.modulus) >= 0 || a.value.Cmp(a.modulus) >= 0 {
		return nil, fmt.Errorf("%w: field element not reduced modulo the modulus", ErrMalformedEncoding)
	}

	a.field = field
	return a, nil
}

func (a *Accumulator) MarshalTo(target codec.Target) {
	target.WriteBytes(a.generator.FixedBytes(2 * FactorSize))
	target.WriteBytes(a.value.FixedBytes(2 * FactorSize))
	target.WriteBytes(a.modulus.FixedBytes(2 * FactorSize))
	target.WriteInt(len(a.members))
	for _, p := range a.members {
		target.WriteBytes(p.FixedBytes(MemberSize))
	}
}

func (a *Accumulator) UnmarshalFrom(source codec.Source) *Accumulator {
	a.generator = bigint.FromBytes(source.ReadBytes(2 * FactorSize))
	a.value = bigint.FromBytes(source.ReadBytes(2 * FactorSize))
	a.modulus = bigint.FromBytes(source.ReadBytes(2 * FactorSize))

	count := source.ReadNonNegativeInt()
	// Cap the preallocation by the bytes actually present, so a hostile
	// member count cannot force a huge allocation before the length check
	// fails.
	a.members = make(memberSet, 0, min(count, source.Available()/MemberSize))
	for i := 0; i < count; i++ {
		// insert re-sorts and deduplicates, so a non-canonical member order
		// in the input still yields a canonical in-memory set.
		a.members.insert(bigint.FromBytes(source.ReadBytes(MemberSize)))
	}
	return a
}
