package value

import "github.com/tsatke/xmlrpc/protocol"

// Array is an ordered sequence of values.
type Array []Value

// ArrayOf returns an Array holding vals.
func ArrayOf(vals ...Value) Array {
	return Array(vals)
}

func (Array) Type() Type { return TypeArray }

func (a Array) Len() int { return len(a) }

func (a Array) MarshalXMLRPC(s protocol.Serializer) {
	s.SequenceStart(len(a))
	for i, v := range a {
		s.SequenceElement(i)
		v.MarshalXMLRPC(s)
	}
	s.SequenceEnd()
}
