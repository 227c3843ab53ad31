package codec

import (
	"encoding/binary"
	"fmt"
)

// Internal representation for a source of bytes to be unmarshaled. The buffer slice is modified during reading.
type source struct {
	buffer []byte
}

// Available returns the number of bytes that are still available for reading from the source.
func (s *source) Available() int {
	return len(s.buffer)
}

// ReadInt reads a 32-bit signed integer from the source in BigEndian byte order.
// It panics if not enough bytes are available in the source.
func (s *source) ReadInt() int {
	if len(s.buffer) < IntSize {
		panic(fmt.Sprintf("ReadInt called, %d bytes required, but only %d bytes available", IntSize, len(s.buffer)))
	}
	value := int(int32(binary.BigEndian.Uint32(s.buffer)))
	s.buffer = s.buffer[IntSize:]
	return value
}

// ReadNonNegativeInt reads a non-negative 32-bit signed integer from the source in BigEndian byte order.
// It panics if not enough bytes are available in the source or if the read integer is negative.
func (s *source) ReadNonNegativeInt() int {
	value := s.ReadInt()
	if value < 0 {
		panic(fmt.Sprintf("ReadNonNegativeInt call failed, negative value %d read", value))
	}
	return value
}

// ReadBytes reads a specified number of bytes from the source. Its returns a slice of the source's buffer without
// creating a copy. It panics if not enough bytes are available in the source.
func (s *source) ReadBytes(length int) []byte {
	if len(s.buffer) < length {
		panic(fmt.Sprintf("ReadBytes called with length %d, but only %d bytes available", length, len(s.buffer)))
	}
	value := s.buffer[:length:length] // limit cap(value) to prevent overwriting the source's buffer on append
	s.buffer = s.buffer[length:]
	return value
}
