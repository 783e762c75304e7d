package value

import (
	"time"

	"github.com/tsatke/xmlrpc/protocol"
)

// DateTimeLayout is the ISO 8601 variant commonly used by XML-RPC
// implementations.
const DateTimeLayout = "20060102T15:04:05"

// DateTime is a timestamp in textual form. The text is passed through as is
// and is not validated.
type DateTime string

// DateTimeOf formats t with DateTimeLayout.
func DateTimeOf(t time.Time) DateTime {
	return DateTime(t.Format(DateTimeLayout))
}

func (DateTime) Type() Type       { return TypeDateTime }
func (d DateTime) String() string { return string(d) }

// Time parses d with DateTimeLayout.
func (d DateTime) Time() (time.Time, error) {
	return time.Parse(DateTimeLayout, string(d))
}

func (d DateTime) MarshalXMLRPC(s protocol.Serializer) {
	if ext, ok := s.(protocol.ExtendedSerializer); ok {
		ext.DateTime(string(d))
		return
	}
	s.String(string(d))
}
