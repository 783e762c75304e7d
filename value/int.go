package value

import (
	"strconv"

	"github.com/tsatke/xmlrpc/protocol"
)

// Int is a signed 32 bit integer, the only integer width of the wire format.
type Int int32

func (Int) Type() Type       { return TypeInt }
func (i Int) Value() int32   { return int32(i) }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

func (i Int) MarshalXMLRPC(s protocol.Serializer) { s.Int32(int32(i)) }
