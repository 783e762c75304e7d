package encoder

import "fmt"

// SinkWriteError is the first write failure of the sink an Encoder writes to.
type SinkWriteError struct {
	Err error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("write to sink: %v", e.Err)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}

// EncodingError is returned by EncodeToString if the encoded bytes are not
// valid UTF-8 text.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoded output is not valid utf-8 (offset %d)", e.Offset)
}

// UnsupportedValueError is recorded for values that have no representation
// in the wire format, such as NaN, or compound member names.
type UnsupportedValueError struct {
	Value string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value: %s", e.Value)
}
