// Package hashtoprime implements the deterministic mapping from arbitrary
// byte strings to prime integers used to encode accumulator members.
//
// The input is expanded with a domain-separated SHAKE256 XOF into a Size-byte
// candidate with its top bit forced, and the candidate is walked upward to
// the first probable prime. The same input always yields the same prime.
// Because results are Size*8-bit primes, a result dividing the totient of an
// independently chosen RSA modulus is cryptographically negligible, which is
// what makes trapdoor removal by modular inversion safe.
package hashtoprime

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/accumulator-labs/go-accumulator/bigint"
)

// Size is the length of the fixed-width big-endian encoding of every prime
// produced by HashToPrime, in bytes.
const Size = 32

// Domain separation tag, length-prefixed into the XOF before the input so
// that the encoding of (tag, input) is unique.
const dst = "accumulator-labs/go-accumulator/hash-to-prime/v1"

// millerRabinRounds is deliberately generous; primality testing is not the
// dominant cost next to the modular exponentiations consuming the result.
const millerRabinRounds = 64

// HashToPrime deterministically maps the given bytes to a probable prime of
// exactly Size bytes.
func HashToPrime(data []byte) bigint.Int {
	shake := sha3.NewShake256()

	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(dst)))
	shake.Write(length[:])
	shake.Write([]byte(dst))
	shake.Write(data)

	candidate := make([]byte, Size)
	shake.Read(candidate)

	// Force the top bit so the prime occupies the full Size bytes, and the
	// low bit so the upward walk only visits odd candidates.
	candidate[0] |= 0x80
	candidate[Size-1] |= 0x01

	p := new(big.Int).SetBytes(candidate)
	two := big.NewInt(2)
	for !p.ProbablyPrime(millerRabinRounds) {
		p.Add(p, two)
	}
	return bigint.FromBytes(p.Bytes())
}
