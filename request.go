package xmlrpc

import (
	"bytes"
	"io"

	"github.com/tsatke/xmlrpc/encoder"
	"github.com/tsatke/xmlrpc/value"
)

const (
	requestBegin     = "<?xml version=\"1.0\"?>\r\n<methodCall><methodName>"
	requestEndMethod = "</methodName>\r\n"
	paramsTag        = "<params>"
	paramsEndTag     = "</params>"
	paramTag         = "<param>"
	paramEndTag      = "</param>"
	requestEnd       = "</methodCall>\r\n"
)

// WriteRequest writes a complete methodCall request for method to w. If
// params is an Array, every element becomes a parameter of its own.
// Otherwise params is the only parameter.
func WriteRequest(w io.Writer, method string, params value.Value, opts ...encoder.Option) error {
	enc := encoder.New(w, opts...)

	enc.Raw(requestBegin)
	enc.Raw(encoder.Escape(method))
	enc.Raw(requestEndMethod)
	enc.Raw(paramsTag)
	if arr, ok := params.(value.Array); ok {
		for _, param := range arr {
			writeParam(enc, param)
		}
	} else {
		writeParam(enc, params)
	}
	enc.Raw(paramsEndTag)
	enc.Raw(requestEnd)

	return enc.Err()
}

// BuildRequest returns the request WriteRequest would write. The request
// must be valid UTF-8, otherwise an *EncodingError is returned.
func BuildRequest(method string, params value.Value, opts ...encoder.Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteRequest(&buf, method, params, opts...); err != nil {
		return nil, err
	}
	if err := encoder.ValidateUTF8(buf.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeParam(enc *encoder.Encoder, param value.Value) {
	if param == nil {
		param = value.Nil
	}
	enc.Raw(paramTag)
	_ = enc.Encode(param)
	enc.Raw(paramEndTag)
}
