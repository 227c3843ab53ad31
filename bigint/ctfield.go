// Constant time field backend based on the bigmod package from Go's internal
// stdlib, exported via filippo.io/bigmod.

package bigint

import (
	"fmt"

	"filippo.io/bigmod"
)

// NewConstantTimeField returns a Field backed by filippo.io/bigmod. Exp and
// Mul run in constant time with respect to the operand values; Inv is
// variable time. The modulus must be odd (a Montgomery arithmetic
// restriction), which any RSA-style modulus satisfies.
func NewConstantTimeField(modulus Int) (Field, error) {
	m, err := bigmod.NewModulus(modulus.Bytes())
	if err != nil {
		return nil, fmt.Errorf("bigint: invalid constant-time field modulus: %w", err)
	}
	return &ctField{modulus.Clone(), m}, nil
}

type ctField struct {
	modulus Int
	m       *bigmod.Modulus
}

// nat converts a reduced Int operand into a bigmod.Nat for this field.
// Panics if the operand is out of range, violating the Field contract.
func (f *ctField) nat(x Int) *bigmod.Nat {
	n, err := bigmod.NewNat().SetBytes(x.FixedBytes(f.m.Size()), f.m)
	if err != nil {
		panic("bigint: field operand out of range: " + err.Error())
	}
	return n
}

func (f *ctField) Exp(base, exponent Int) Int {
	if exponent.IsZero() {
		// Empty exponent encoding; both backends define x^0 = 1.
		return New(1)
	}
	r := bigmod.NewNat().Exp(f.nat(base), exponent.Bytes(), f.m)
	return FromBytes(r.Bytes(f.m))
}

func (f *ctField) Mul(a, b Int) Int {
	r := f.nat(a).Mul(f.nat(b), f.m)
	return FromBytes(r.Bytes(f.m))
}

func (f *ctField) Inv(a Int) (Int, error) {
	r, ok := bigmod.NewNat().InverseVarTime(f.nat(a), f.m)
	if !ok {
		return nil, ErrNonInvertible
	}
	return FromBytes(r.Bytes(f.m)), nil
}

func (f *ctField) Modulus() Int {
	return f.modulus
}
