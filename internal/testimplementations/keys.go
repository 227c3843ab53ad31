// Package testimplementations provides insecure, deterministic collaborator
// implementations for tests. Nothing in this package is suitable for real
// commitments.
package testimplementations

import (
	"math/big"

	"github.com/accumulator-labs/go-accumulator/bigint"
)

// InsecureSecretKey implements the accumulator's SecretKey interface from two
// caller-supplied primes. Key generation is deliberately out of scope for
// this module; tests construct keys from fixed, publicly known primes.
type InsecureSecretKey struct {
	modulus bigint.Int
	totient bigint.Int
}

// NewInsecureSecretKey derives modulus = p*q and totient = (p-1)(q-1) from
// the given factors. The factors must be prime for removal to behave
// correctly; this is not checked here.
func NewInsecureSecretKey(p, q bigint.Int) *InsecureSecretKey {
	pv := new(big.Int).SetBytes(p.Bytes())
	qv := new(big.Int).SetBytes(q.Bytes())

	modulus := new(big.Int).Mul(pv, qv)

	one := big.NewInt(1)
	totient := new(big.Int).Mul(new(big.Int).Sub(pv, one), new(big.Int).Sub(qv, one))

	return &InsecureSecretKey{bigint.FromBytes(modulus.Bytes()), bigint.FromBytes(totient.Bytes())}
}

// DefaultSecretKey returns a fixed test key built from the Mersenne primes
// 2^607 - 1 and 2^1279 - 1. The factors are publicly known, so the key
// provides no security whatsoever, but the resulting 1886-bit modulus has the
// correct structure for exercising every accumulator operation
// deterministically.
func DefaultSecretKey() *InsecureSecretKey {
	return NewInsecureSecretKey(mersenne(607), mersenne(1279))
}

func mersenne(exp uint) bigint.Int {
	v := new(big.Int).Lsh(big.NewInt(1), exp)
	v.Sub(v, big.NewInt(1))
	return bigint.FromBytes(v.Bytes())
}

func (k *InsecureSecretKey) Modulus() bigint.Int {
	return k.modulus.Clone()
}

func (k *InsecureSecretKey) Totient() bigint.Int {
	return k.totient.Clone()
}
