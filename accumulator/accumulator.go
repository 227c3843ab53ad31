// Package accumulator implements a dynamic universal RSA accumulator: a
// single fixed-size commitment to a set of members, maintained over the
// hidden-order group Z_N* for an RSA-style modulus N, with efficient
// incremental addition and trapdoor-gated removal.
//
// Raw member values are encoded as primes via hashtoprime and folded into the
// accumulated value by modular exponentiation. Anyone holding the public
// modulus can add members; removal requires the secret totient. Witness
// generation and verification are external consumers of this package's state
// and are not implemented here.
//
// An Accumulator carries no internal synchronization. Mutating one instance
// from multiple goroutines concurrently is undefined; concurrent branching
// callers must use the copy-on-write forms (Insert, Remove), which never
// touch a shared instance.
package accumulator

import (
	"fmt"
	"io"
	"sync"

	"github.com/accumulator-labs/go-accumulator/bigint"
	"github.com/accumulator-labs/go-accumulator/hashtoprime"
)

// SecretKey is the trapdoor collaborator. Implementations conceptually hold
// two large primes p, q and expose their product and Euler totient. The
// accumulator never stores or serializes a SecretKey; it is consumed
// transiently by WithMembers and Remove.
type SecretKey interface {
	// Modulus returns N = p*q.
	Modulus() bigint.Int

	// Totient returns (p-1)*(q-1). Knowledge of the totient is equivalent to
	// knowledge of the factorization and must be kept secret.
	Totient() bigint.Int
}

// Accumulator commits to a set of members through a single accumulated
// value. The invariant maintained by every operation is
//
//	value == generator ^ (product of members) mod modulus
//
// even though the value is updated incrementally and never recomputed from
// the full member set.
type Accumulator struct {
	// generator is a random quadratic residue modulo the modulus, fixed for
	// the lifetime of the accumulator and every copy derived from it.
	// Squaring the sampled element keeps the generator free of small-order
	// components.
	generator bigint.Int
	modulus   bigint.Int
	members   memberSet
	value     bigint.Int

	// field is the ring view modulo modulus. It is stateless and shared
	// read-only between an accumulator and its copies.
	field bigint.Field
}

// New creates an empty accumulator for the given key. The generator is
// sampled from the provided randomness source; production callers pass
// crypto/rand.Reader, tests may inject a deterministic reader to make the
// generator reproducible.
func New(key SecretKey, rand io.Reader) (*Accumulator, error) {
	modulus := key.Modulus().Clone()
	field, err := bigint.NewConstantTimeField(modulus)
	if err != nil {
		return nil, fmt.Errorf("accumulator: unusable modulus: %w", err)
	}

	generator, err := randomQR(field, rand)
	if err != nil {
		return nil, err
	}

	// The empty product has exponent 1, so the initial value is the
	// generator itself.
	return &Accumulator{generator, modulus, nil, generator.Clone(), field}, nil
}

// WithMembers creates an accumulator pre-populated with the given raw
// values. Duplicate raw values collapse to a single member.
//
// Instead of one modular exponentiation per member, the member primes are
// folded into a single exponent with multiplications modulo the secret
// totient, and the accumulated value is computed with exactly one
// exponentiation (Camenisch-Lysyanskaya, section 3.2 of
// https://cs.brown.edu/people/alysyans/papers/camlys02.pdf). Hashing the raw
// values to primes is independent per value and runs concurrently.
func WithMembers(key SecretKey, rand io.Reader, values [][]byte) (*Accumulator, error) {
	modulus := key.Modulus().Clone()
	field, err := bigint.NewConstantTimeField(modulus)
	if err != nil {
		return nil, fmt.Errorf("accumulator: unusable modulus: %w", err)
	}

	primes := make([]bigint.Int, len(values))
	var wg sync.WaitGroup
	for i, v := range values {
		wg.Add(1)
		go func(i int, v []byte) {
			defer wg.Done()
			primes[i] = hashtoprime.HashToPrime(v)
		}(i, v)
	}
	wg.Wait()

	members := make(memberSet, 0, len(primes))
	for _, p := range primes {
		members.insert(p)
	}

	// The fold is commutative and associative, so the member ordering is
	// irrelevant to the result.
	totientRing := bigint.NewField(key.Totient())
	exponent := bigint.New(1)
	for _, p := range members {
		exponent = totientRing.Mul(exponent, p)
	}

	generator, err := randomQR(field, rand)
	if err != nil {
		return nil, err
	}
	value := field.Exp(generator, exponent)

	return &Accumulator{generator, modulus, members, value, field}, nil
}

// randomQR samples an element uniformly below the modulus and squares it,
// forcing the result into the quadratic-residue subgroup.
func randomQR(field bigint.Field, rand io.Reader) (bigint.Int, error) {
	r, err := bigint.Random(rand, field.Modulus())
	if err != nil {
		return nil, fmt.Errorf("accumulator: sampling generator: %w", err)
	}
	return field.Mul(r, r), nil
}

// Insert returns a new accumulator with the given value added; the receiver
// is left untouched. Fails with ErrDuplicateMember if the value's prime
// image is already present. No secret key is required to add members.
func (a *Accumulator) Insert(value []byte) (*Accumulator, error) {
	b := a.Clone()
	if err := b.InsertMut(value); err != nil {
		return nil, err
	}
	return b, nil
}

// InsertMut adds the given value to the accumulator in place. Fails with
// ErrDuplicateMember, leaving the accumulator unchanged, if the value's
// prime image is already present.
func (a *Accumulator) InsertMut(value []byte) error {
	p := hashtoprime.HashToPrime(value)
	if a.members.contains(p) {
		return ErrDuplicateMember
	}
	a.value = a.field.Exp(a.value, p)
	a.members.insert(p)
	return nil
}

// Remove returns a new accumulator with the given value removed; the
// receiver is left untouched. Fails with ErrInvalidMember if the value's
// prime image is not present.
//
// Removal is the trapdoor operation: the member prime is inverted modulo the
// secret totient, which only the key holder can do. Removing a value after
// inserting it restores the accumulated value that preceded the insert.
func (a *Accumulator) Remove(key SecretKey, value []byte) (*Accumulator, error) {
	b := a.Clone()
	if err := b.RemoveMut(key, value); err != nil {
		return nil, err
	}
	return b, nil
}

// RemoveMut removes the given value from the accumulator in place. Fails
// with ErrInvalidMember, leaving the accumulator unchanged, if the value's
// prime image is not present.
func (a *Accumulator) RemoveMut(key SecretKey, value []byte) error {
	p := hashtoprime.HashToPrime(value)
	if !a.members.contains(p) {
		return ErrInvalidMember
	}

	pInv, err := bigint.NewField(key.Totient()).Inv(p)
	if err != nil {
		// Unreachable under the hash-to-prime contract, still propagated.
		return fmt.Errorf("accumulator: removing member: %w", err)
	}

	a.value = a.field.Exp(a.value, pInv)
	a.members.remove(p)
	return nil
}

// MustInsert is the abort-on-error variant of Insert, for callers chaining
// insertions of values known to be fresh. Unlike the method API's
// error-returning contract, it panics on failure.
func (a *Accumulator) MustInsert(value []byte) *Accumulator {
	b, err := a.Insert(value)
	if err != nil {
		panic(err)
	}
	return b
}

// MustInsertMut is the abort-on-error variant of InsertMut; it panics on
// failure.
func (a *Accumulator) MustInsertMut(value []byte) {
	if err := a.InsertMut(value); err != nil {
		panic(err)
	}
}

// Clone returns an independent deep copy. Every big integer is cloned, so no
// later mutation of either instance can be observed through the other. The
// stateless field view is shared.
func (a *Accumulator) Clone() *Accumulator {
	return &Accumulator{
		a.generator.Clone(),
		a.modulus.Clone(),
		a.members.clone(),
		a.value.Clone(),
		a.field,
	}
}

// Generator returns the accumulator's generator.
func (a *Accumulator) Generator() bigint.Int {
	return a.generator.Clone()
}

// Modulus returns the accumulator's RSA modulus.
func (a *Accumulator) Modulus() bigint.Int {
	return a.modulus.Clone()
}

// Value returns the current accumulated value.
func (a *Accumulator) Value() bigint.Int {
	return a.value.Clone()
}

// Len returns the number of members.
func (a *Accumulator) Len() int {
	return len(a.members)
}

// Members returns the member primes in ascending order.
func (a *Accumulator) Members() []bigint.Int {
	return a.members.clone()
}

// Equal compares all public fields of two accumulators.
func (a *Accumulator) Equal(b *Accumulator) bool {
	return a.generator.Equal(b.generator) &&
		a.modulus.Equal(b.modulus) &&
		a.value.Equal(b.value) &&
		a.members.equal(b.members)
}
