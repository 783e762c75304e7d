package protocol

import "math"

// The wire format knows a single integer width. Values outside this range
// can't be represented and are rejected, never truncated.
const (
	MaxInt = math.MaxInt32
	MinInt = math.MinInt32
)

func Int8(s Serializer, v int8)     { s.Int32(int32(v)) }
func Int16(s Serializer, v int16)   { s.Int32(int32(v)) }
func Uint8(s Serializer, v uint8)   { s.Int32(int32(v)) }
func Uint16(s Serializer, v uint16) { s.Int32(int32(v)) }

func Int(s Serializer, v int) { Int64(s, int64(v)) }

// Int64 emits v as Int32, or fails s with an *IntegerOverflowError if v
// does not fit.
func Int64(s Serializer, v int64) {
	if v < MinInt || v > MaxInt {
		s.Fail(&IntegerOverflowError{Value: v})
		return
	}
	s.Int32(int32(v))
}

func Uint(s Serializer, v uint)     { Uint64(s, uint64(v)) }
func Uint32(s Serializer, v uint32) { Uint64(s, uint64(v)) }

// Uint64 emits v as Int32, or fails s with an *IntegerOverflowError if v
// does not fit.
func Uint64(s Serializer, v uint64) {
	if v > MaxInt {
		s.Fail(&IntegerOverflowError{Value: v})
		return
	}
	s.Int32(int32(v))
}

// Float32 widens v. There is no separate wire representation for
// single precision floats.
func Float32(s Serializer, v float32) { s.Float64(float64(v)) }
