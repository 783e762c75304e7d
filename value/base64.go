package value

import "github.com/tsatke/xmlrpc/protocol"

// Base64 is a binary blob.
type Base64 []byte

func (Base64) Type() Type { return TypeBase64 }

// MarshalXMLRPC writes b natively if s supports it, and as a sequence of
// byte values otherwise.
func (b Base64) MarshalXMLRPC(s protocol.Serializer) {
	if ext, ok := s.(protocol.ExtendedSerializer); ok {
		ext.Base64(b)
		return
	}
	s.SequenceStart(len(b))
	for i, c := range b {
		s.SequenceElement(i)
		protocol.Uint8(s, c)
	}
	s.SequenceEnd()
}
