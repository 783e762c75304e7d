package value

import "github.com/tsatke/xmlrpc/protocol"

const (
	// Nil is the constant value nil.
	Nil = nilValue(0)
)

type nilValue uint8

func (nilValue) Type() Type     { return TypeNil }
func (nilValue) String() string { return "nil" }

func (nilValue) MarshalXMLRPC(s protocol.Serializer) { s.Nil() }
