package value

import (
	"strconv"

	"github.com/tsatke/xmlrpc/protocol"
)

type Double float64

func (Double) Type() Type       { return TypeDouble }
func (d Double) Value() float64 { return float64(d) }
func (d Double) String() string { return strconv.FormatFloat(float64(d), 'g', -1, 64) }

func (d Double) MarshalXMLRPC(s protocol.Serializer) { s.Float64(float64(d)) }
