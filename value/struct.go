package value

import (
	iradix "github.com/hashicorp/go-immutable-radix/v2"
	"github.com/tsatke/xmlrpc/protocol"
)

// Struct maps unique string keys to values. Members are always visited in
// sorted key order, so encoding the same members twice yields the same
// output regardless of the order they were added in.
//
// A Struct is immutable. With returns a new Struct that shares structure
// with the receiver. The zero value is an empty Struct.
type Struct struct {
	tree *iradix.Tree[Value]
}

// NewStruct returns an empty Struct.
func NewStruct() Struct {
	return Struct{tree: iradix.New[Value]()}
}

// StructOf returns a Struct holding the given members.
func StructOf(members map[string]Value) Struct {
	txn := iradix.New[Value]().Txn()
	for k, v := range members {
		txn.Insert([]byte(k), v)
	}
	return Struct{tree: txn.Commit()}
}

func (Struct) Type() Type { return TypeStruct }

// With returns a copy of s in which key is mapped to v.
func (s Struct) With(key string, v Value) Struct {
	tree, _, _ := s.root().Insert([]byte(key), v)
	return Struct{tree: tree}
}

func (s Struct) Get(key string) (Value, bool) {
	return s.root().Get([]byte(key))
}

func (s Struct) Len() int {
	return s.root().Len()
}

// Keys returns all keys in sorted order.
func (s Struct) Keys() []string {
	keys := make([]string, 0, s.Len())
	s.Range(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for every member in sorted key order, until fn returns false.
func (s Struct) Range(fn func(key string, v Value) bool) {
	s.root().Root().Walk(func(k []byte, v Value) bool {
		return !fn(string(k), v)
	})
}

// Equal reports whether s and other hold structurally equal members.
func (s Struct) Equal(other Struct) bool {
	if s.Len() != other.Len() {
		return false
	}
	equal := true
	s.Range(func(key string, v Value) bool {
		o, ok := other.Get(key)
		equal = ok && Equal(v, o)
		return equal
	})
	return equal
}

func (s Struct) MarshalXMLRPC(ser protocol.Serializer) {
	ser.MappingStart(s.Len())
	i := 0
	s.Range(func(key string, v Value) bool {
		ser.MappingKey(i)
		ser.String(key)
		ser.MappingValue(i)
		v.MarshalXMLRPC(ser)
		i++
		return true
	})
	ser.MappingEnd()
}

func (s Struct) root() *iradix.Tree[Value] {
	if s.tree == nil {
		return iradix.New[Value]()
	}
	return s.tree
}
