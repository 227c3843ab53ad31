package accumulator

import (
	"encoding/binary"
	"unsafe"
)

// FixedInt covers the fixed-width integer types accepted by the typed
// insertion and removal helpers.
type FixedInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bigEndianBytes encodes v with its natural width in big-endian byte order.
func bigEndianBytes[T FixedInt](v T) []byte {
	switch unsafe.Sizeof(v) {
	case 1:
		return []byte{byte(v)}
	case 2:
		return binary.BigEndian.AppendUint16(nil, uint16(v))
	case 4:
		return binary.BigEndian.AppendUint32(nil, uint32(v))
	default:
		return binary.BigEndian.AppendUint64(nil, uint64(v))
	}
}

// InsertInt inserts a fixed-width integer, big-endian-encoding it before
// hashing. Semantics are otherwise identical to Accumulator.Insert.
func InsertInt[T FixedInt](a *Accumulator, v T) (*Accumulator, error) {
	return a.Insert(bigEndianBytes(v))
}

// InsertIntMut inserts a fixed-width integer in place; see
// Accumulator.InsertMut.
func InsertIntMut[T FixedInt](a *Accumulator, v T) error {
	return a.InsertMut(bigEndianBytes(v))
}

// RemoveInt removes a fixed-width integer; see Accumulator.Remove.
func RemoveInt[T FixedInt](a *Accumulator, key SecretKey, v T) (*Accumulator, error) {
	return a.Remove(key, bigEndianBytes(v))
}

// RemoveIntMut removes a fixed-width integer in place; see
// Accumulator.RemoveMut.
func RemoveIntMut[T FixedInt](a *Accumulator, key SecretKey, v T) error {
	return a.RemoveMut(key, bigEndianBytes(v))
}
