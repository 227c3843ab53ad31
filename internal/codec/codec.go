package codec

import "fmt"

// High level type definitions for the codec package.
// Use the codec.Marshal(...) and codec.Unmarshal(...) functions for marshaling and unmarshaling.
//
// Reading past the end of a source panics with a descriptive length-mismatch
// message; codec.Unmarshal(...) always recovers such panics into errors.

const IntSize = 4

type Marshaler interface {
	MarshalTo(target Target)
}

type Unmarshaler[T any] interface {
	UnmarshalFrom(source Source) T
}

type Codec[T any] interface {
	Marshaler
	Unmarshaler[T]
}

type Target = *target
type Source = *source

// Marshals the given (non-nil) object into a byte slice.
// Panics during marshaling are recovered and returned as errors.
func Marshal(object Marshaler) ([]byte, error) {
	target := &target{}
	err := target.Marshal(object)
	if err != nil {
		return nil, err
	}
	return target.buffer, nil
}

// Unmarshal the given byte slice into a new instance of type T. Panics during unmarshaling are recovered and returned
// as errors. Additionally, this function also checks that all input bytes are consumed during unmarshaling, returning
// an error if any non-read bytes remain.
func Unmarshal[T any](data []byte, unmarshaler Unmarshaler[T]) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result, err = zero, fmt.Errorf("recovered panic while unmarshaling: %v", r)
		}
	}()

	src := &source{data}
	result = unmarshaler.UnmarshalFrom(src)

	if src.Available() > 0 {
		var zero T
		return zero, fmt.Errorf(
			"unmarshaling did not consume all bytes, %d bytes remaining", src.Available(),
		)
	}
	return result, nil
}
