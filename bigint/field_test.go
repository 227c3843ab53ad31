package bigint

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accumulator-labs/go-accumulator/internal/testimplementations/unsaferand"
)

// backends enumerates every Field implementation; the conformance suite
// below runs against each and additionally cross-checks them for
// bit-identical results.
func backends(t *testing.T, modulus Int) map[string]Field {
	ct, err := NewConstantTimeField(modulus)
	require.NoError(t, err)
	return map[string]Field{
		"big":    NewField(modulus),
		"bigmod": ct,
	}
}

func TestFieldKnownAnswers(t *testing.T) {
	for name, f := range backends(t, New(13)) {
		t.Run(name, func(t *testing.T) {
			require.True(t, f.Exp(New(7), New(4)).Equal(New(9)))   // 2401 mod 13
			require.True(t, f.Exp(New(7), New(0)).Equal(New(1)))   // empty product
			require.True(t, f.Exp(New(0), New(5)).Equal(New(0)))
			require.True(t, f.Mul(New(11), New(12)).Equal(New(2))) // 132 mod 13

			inv, err := f.Inv(New(7))
			require.NoError(t, err)
			require.True(t, inv.Equal(New(2))) // 7 * 2 = 14 ≡ 1 mod 13
		})
	}
}

func TestFieldInvNotCoprime(t *testing.T) {
	for name, f := range backends(t, New(15)) {
		t.Run(name, func(t *testing.T) {
			_, err := f.Inv(New(5))
			require.ErrorIs(t, err, ErrNonInvertible)

			inv, err := f.Inv(New(7))
			require.NoError(t, err)
			require.True(t, f.Mul(New(7), inv).Equal(New(1)))
		})
	}
}

// Backends must agree bit for bit, including on encodings; the accumulator's
// serialized form has to be backend-independent.
func TestFieldBackendsProduceIdenticalResults(t *testing.T) {
	// 2^521 - 1, a Mersenne prime, as an odd modulus both backends accept.
	modulus := FromBytes(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 521), big.NewInt(1)).Bytes())

	rand := unsaferand.New("field conformance")
	fields := backends(t, modulus)
	reference := fields["big"]

	for i := 0; i < 25; i++ {
		a, err := Random(rand, modulus)
		require.NoError(t, err)
		b, err := Random(rand, modulus)
		require.NoError(t, err)

		want := struct {
			exp, mul, inv Int
		}{reference.Exp(a, b), reference.Mul(a, b), nil}
		want.inv, err = reference.Inv(a)
		require.NoError(t, err)

		for name, f := range fields {
			t.Run(fmt.Sprintf("%s/%d", name, i), func(t *testing.T) {
				require.Equal(t, want.exp.Bytes(), f.Exp(a, b).Bytes())
				require.Equal(t, want.mul.Bytes(), f.Mul(a, b).Bytes())

				inv, err := f.Inv(a)
				require.NoError(t, err)
				require.Equal(t, want.inv.Bytes(), inv.Bytes())
				require.Equal(t, want.inv.FixedBytes(66), inv.FixedBytes(66))
			})
		}
	}
}

func TestFieldModulusAccessor(t *testing.T) {
	for name, f := range backends(t, New(21)) {
		t.Run(name, func(t *testing.T) {
			require.True(t, f.Modulus().Equal(New(21)))
		})
	}
}

func TestNewFieldRejectsTrivialModulus(t *testing.T) {
	require.Panics(t, func() { NewField(New(1)) })
	require.Panics(t, func() { NewField(New(0)) })
}
