package value

import "github.com/tsatke/xmlrpc/protocol"

type String string

func (String) Type() Type       { return TypeString }
func (s String) String() string { return string(s) }

func (s String) MarshalXMLRPC(ser protocol.Serializer) { ser.String(string(s)) }
