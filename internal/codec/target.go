package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

type target struct {
	buffer []byte
}

// Marshals the given object into the this target. Panics, which may be raised by the marshaling of child objects,
// are recovered and returned as errors.
func (t *target) Marshal(object Marshaler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered panic during marshaling: %v", r)
		}
	}()

	if object == nil {
		panic("Marshal called with nil object")
	}
	object.MarshalTo(t)
	return nil
}

// WriteInt writes a 32-bit signed integer to the target in BigEndian byte order.
// It panics if the value is out of range of int32.
func (t *target) WriteInt(value int) {
	if value > math.MaxInt32 || value < math.MinInt32 {
		panic(fmt.Sprintf("WriteInt called with value %d, which is out of range of int32", value))
	}
	t.buffer = binary.BigEndian.AppendUint32(t.buffer, uint32(value))
}

func (t *target) WriteBytes(value []byte) {
	t.buffer = append(t.buffer, value...)
}
