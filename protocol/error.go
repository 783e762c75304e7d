package protocol

import "fmt"

// IntegerOverflowError is returned when an integer does not fit into the
// signed 32 bit range of the wire format.
type IntegerOverflowError struct {
	Value interface{}
}

func (e *IntegerOverflowError) Error() string {
	return fmt.Sprintf("integer %v overflows the 32-bit range [%d, %d]", e.Value, MinInt, MaxInt)
}
