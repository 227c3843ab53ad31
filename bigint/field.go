package bigint

import (
	"errors"
	"math/big"
)

// ErrNonInvertible is returned by Field.Inv when the element shares a
// nontrivial factor with the field modulus. Callers must propagate it
// unchanged; it is never swallowed inside this package.
var ErrNonInvertible = errors.New("bigint: element is not invertible modulo the field modulus")

// Field is a modulus-scoped ring view over Int. All results are reduced into
// {0, 1, ..., modulus - 1}. Operands must already be reduced; passing a value
// outside that range is a contract violation.
//
// A Field is stateless aside from its modulus and safe to share across
// concurrent callers. Any per-call scratch state is allocated per invocation
// and never shared.
//
// Implementations must be interchangeable: conforming backends produce
// bit-identical results for the same inputs across Exp, Mul, and Inv. The
// conformance suite in this package's tests is run against every backend.
type Field interface {
	// Exp returns base^exponent mod modulus.
	Exp(base, exponent Int) Int

	// Mul returns (a * b) mod modulus.
	Mul(a, b Int) Int

	// Inv returns a^-1 mod modulus, or ErrNonInvertible if gcd(a, modulus) != 1.
	Inv(a Int) (Int, error)

	// Modulus returns the field's modulus. Must not be modified by the caller.
	Modulus() Int
}

// NewField returns a Field backed by math/big. Operations are not constant
// time; use NewConstantTimeField where timing side channels matter. Unlike
// the constant-time backend this one places no restriction on the modulus
// beyond it being greater than one, so it also serves even moduli such as
// the totient ring used for batched exponent folding.
//
// Panics if the modulus is not greater than one.
func NewField(modulus Int) Field {
	if modulus.value.Cmp(big.NewInt(1)) <= 0 {
		panic("bigint: field modulus must be greater than one")
	}
	return &bigField{modulus.Clone()}
}

type bigField struct {
	modulus Int
}

func (f *bigField) Exp(base, exponent Int) Int {
	r := &integer{}
	r.value.Exp(&base.value, &exponent.value, &f.modulus.value)
	return r
}

func (f *bigField) Mul(a, b Int) Int {
	r := &integer{}
	r.value.Mul(&a.value, &b.value)
	r.value.Mod(&r.value, &f.modulus.value)
	return r
}

func (f *bigField) Inv(a Int) (Int, error) {
	r := &integer{}
	if r.value.ModInverse(&a.value, &f.modulus.value) == nil {
		return nil, ErrNonInvertible
	}
	return r, nil
}

func (f *bigField) Modulus() Int {
	return f.modulus
}
