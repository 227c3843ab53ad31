package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accumulator-labs/go-accumulator/internal/testimplementations/unsaferand"
)

func TestOrderingAndEquality(t *testing.T) {
	a := New(41)
	b := NewFromString("59")
	c := FromBytes([]byte{41})

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(c))
	require.True(t, a.Equal(c))
	require.False(t, a.Equal(b))
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewFromString("123456789123456789123456789")
	b := a.Clone()

	require.True(t, a.Equal(b))
	require.NotSame(t, a, b)
}

func TestBytesRoundTrip(t *testing.T) {
	a := NewFromString("340282366920938463463374607431768211455") // 2^128 - 1
	require.Len(t, a.Bytes(), 16)
	require.True(t, FromBytes(a.Bytes()).Equal(a))

	require.Empty(t, New(0).Bytes())
	require.True(t, New(0).IsZero())
	require.False(t, a.IsZero())
}

func TestFixedBytes(t *testing.T) {
	a := New(0x0102)

	require.Equal(t, []byte{0, 0, 1, 2}, a.FixedBytes(4))
	require.Equal(t, []byte{1, 2}, a.FixedBytes(2))
	require.Panics(t, func() { a.FixedBytes(1) })
}

func TestNewFromStringRejectsInvalidInput(t *testing.T) {
	require.Panics(t, func() { NewFromString("not a number") })
	require.Panics(t, func() { NewFromString("-17") })
	require.Equal(t, "17", NewFromString("17").String())
}

func TestRandomIsBoundedAndDeterministic(t *testing.T) {
	bound := NewFromString("1000000000000000000000000000000000000000")

	a, err := Random(unsaferand.New("bigint random"), bound)
	require.NoError(t, err)
	b, err := Random(unsaferand.New("bigint random"), bound)
	require.NoError(t, err)
	c, err := Random(unsaferand.New("another seed"), bound)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	for i := 0; i < 100; i++ {
		x, err := Random(unsaferand.New(i), bound)
		require.NoError(t, err)
		require.Equal(t, -1, x.Cmp(bound))
	}
}
