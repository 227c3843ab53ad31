package accumulator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigEndianBytes(t *testing.T) {
	require.Equal(t, []byte{0xFF}, bigEndianBytes(uint8(255)))
	require.Equal(t, []byte{0x7F}, bigEndianBytes(int8(127)))
	require.Equal(t, []byte{0xFA}, bigEndianBytes(int8(-6)))
	require.Equal(t, []byte{0xFF, 0x98}, bigEndianBytes(uint16(65432)))
	require.Equal(t, []byte{0x07, 0x5B, 0xCD, 0x15}, bigEndianBytes(uint32(123456789)))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 13}, bigEndianBytes(uint64(13)))
	require.Equal(t, []byte{0, 0, 0, 0x2A}, bigEndianBytes(int32(42)))

	type myID uint16
	require.Equal(t, []byte{0x01, 0x02}, bigEndianBytes(myID(0x0102)))
}

func TestTypedInsertMatchesByteForm(t *testing.T) {
	acc, _ := newTestAccumulator(t, "typed equivalence")

	viaBytes, err := acc.Insert([]byte{0, 0, 0, 0, 0, 0, 0, 7})
	require.NoError(t, err)
	viaTyped, err := InsertInt(acc, uint64(7))
	require.NoError(t, err)

	require.True(t, viaBytes.Equal(viaTyped))
}

func TestTypedInsertRemoveAcrossWidths(t *testing.T) {
	acc, key := newTestAccumulator(t, "typed widths")
	before := acc.Clone()

	require.NoError(t, InsertIntMut(acc, uint8(255)))
	require.NoError(t, InsertIntMut(acc, int16(31432)))
	require.NoError(t, InsertIntMut(acc, uint32(123456789)))
	require.NoError(t, InsertIntMut(acc, int64(12345678987654)))
	require.Equal(t, 4, acc.Len())

	require.NoError(t, RemoveIntMut(acc, key, int16(31432)))
	require.NoError(t, RemoveIntMut(acc, key, uint8(255)))
	require.NoError(t, RemoveIntMut(acc, key, int64(12345678987654)))
	require.NoError(t, RemoveIntMut(acc, key, uint32(123456789)))
	require.True(t, acc.Equal(before))
}

func TestTypedCopyOnWriteForms(t *testing.T) {
	acc, key := newTestAccumulator(t, "typed cow")

	inserted, err := InsertInt(acc, uint64(12345678987654))
	require.NoError(t, err)
	require.Equal(t, 0, acc.Len())
	require.Equal(t, 1, inserted.Len())

	_, err = InsertInt(inserted, uint64(12345678987654))
	require.ErrorIs(t, err, ErrDuplicateMember)

	removed, err := RemoveInt(inserted, key, uint64(12345678987654))
	require.NoError(t, err)
	require.Equal(t, 1, inserted.Len())
	require.True(t, removed.Equal(acc))

	_, err = RemoveInt(acc, key, uint64(404))
	require.ErrorIs(t, err, ErrInvalidMember)
}
