package xmlrpc

import (
	"fmt"

	"github.com/tsatke/xmlrpc/encoder"
	"github.com/tsatke/xmlrpc/protocol"
)

// Errors produced while encoding a request.
type (
	SinkWriteError        = encoder.SinkWriteError
	EncodingError         = encoder.EncodingError
	UnsupportedValueError = encoder.UnsupportedValueError
	IntegerOverflowError  = protocol.IntegerOverflowError
)

// TransportError is returned by HTTPTransport if the request could not be
// delivered, or if the server answered with a status other than 2xx. The
// Client passes transport errors on unchanged.
type TransportError struct {
	// StatusCode is 0 if no response was received.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
