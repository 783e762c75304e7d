package value

import "github.com/tsatke/xmlrpc/protocol"

const (
	False = Boolean(false)
	True  = Boolean(true)
)

type Boolean bool

func (Boolean) Type() Type { return TypeBoolean }
func (b Boolean) String() string {
	if !b {
		return "false"
	}
	return "true"
}

func (b Boolean) MarshalXMLRPC(s protocol.Serializer) { s.Bool(bool(b)) }
