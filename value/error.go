package value

import (
	"fmt"
	"reflect"
)

// UnsupportedTypeError is returned by From for host types that have no
// representation as a Value.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("type %v can't be converted to a value", e.Type)
}
