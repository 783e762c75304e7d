package encoder

import (
	"bytes"
	"unicode/utf8"

	"github.com/tsatke/xmlrpc/protocol"
)

// EncodeToBytes encodes m into a new buffer.
func EncodeToBytes(m protocol.Marshaler, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := New(&buf, opts...).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeToString encodes m and returns the result as text. If the encoded
// bytes are not valid UTF-8, an *EncodingError is returned.
func EncodeToString(m protocol.Marshaler, opts ...Option) (string, error) {
	b, err := EncodeToBytes(m, opts...)
	if err != nil {
		return "", err
	}
	if err := ValidateUTF8(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// ValidateUTF8 returns an *EncodingError pointing at the first invalid
// byte of b, or nil if b is valid UTF-8.
func ValidateUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	return &EncodingError{Offset: invalidOffset(b)}
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}
