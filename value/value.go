// Package value implements the tree of values that XML-RPC can represent.
//
// A tree is built fresh from caller data, never mutated and discarded after it
// has been encoded. Every Value describes itself to a protocol.Serializer, which
// makes the tree the reference producer of the serialization protocol.
package value

import "github.com/tsatke/xmlrpc/protocol"

// Value is one of Nil, Boolean, Int, Double, String, DateTime, Base64, Array
// and Struct.
type Value interface {
	protocol.Marshaler

	Type() Type
}

var (
	_ Value = Nil
	_ Value = Boolean(false)
	_ Value = Int(0)
	_ Value = Double(0)
	_ Value = String("")
	_ Value = DateTime("")
	_ Value = Base64(nil)
	_ Value = Array(nil)
	_ Value = Struct{}
)

// Equal reports whether a and b are structurally equal trees.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch left := a.(type) {
	case Base64:
		return string(left) == string(b.(Base64))
	case Array:
		right := b.(Array)
		if len(left) != len(right) {
			return false
		}
		for i := range left {
			if !Equal(left[i], right[i]) {
				return false
			}
		}
		return true
	case Struct:
		return left.Equal(b.(Struct))
	default:
		return a == b
	}
}
