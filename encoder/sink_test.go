package encoder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsatke/xmlrpc/encoder"
	"github.com/tsatke/xmlrpc/value"
)

var errSinkFull = errors.New("sink full")

// failingWriter accepts the first ok writes and fails every write after.
type failingWriter struct {
	ok     int
	writes int
	data   []byte
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.ok {
		return 0, errSinkFull
	}
	w.data = append(w.data, p...)
	return len(p), nil
}

func TestSinkFailureIsSticky(t *testing.T) {
	w := &failingWriter{ok: 1}
	enc := encoder.New(w)

	enc.SequenceStart(3)
	enc.SequenceElement(0)
	enc.Int32(1)

	first := enc.Err()
	var sinkErr *encoder.SinkWriteError
	require.ErrorAs(t, first, &sinkErr)
	assert.ErrorIs(t, first, errSinkFull)
	assert.Equal(t, 2, w.writes)

	enc.SequenceElement(1)
	enc.String("after failure")
	enc.SequenceElement(2)
	value.NewStruct().With("a", value.Int(1)).MarshalXMLRPC(enc)
	enc.Base64([]byte("data"))
	enc.DateTime("20200101T00:00:00")
	enc.Raw("raw")
	enc.SequenceEnd()
	enc.Fail(errors.New("later"))

	assert.Equal(t, 2, w.writes, "no writes after the first failure")
	assert.Same(t, first, enc.Err())
	assert.Equal(t, "<value><array><data>", string(w.data))
}

func TestEncodeReportsSinkFailure(t *testing.T) {
	for ok := 0; ok < 6; ok++ {
		w := &failingWriter{ok: ok}
		err := encoder.New(w).Encode(value.Array{
			value.Int(1),
			value.String("two"),
			value.NewStruct().With("three", value.Base64("3")),
		})

		var sinkErr *encoder.SinkWriteError
		if assert.ErrorAs(t, err, &sinkErr, "failing after %d writes", ok) {
			assert.Equal(t, errSinkFull, sinkErr.Err)
		}
		assert.Equal(t, ok+1, w.writes, "failing after %d writes", ok)
	}
}

func TestSinkWriteError(t *testing.T) {
	err := &encoder.SinkWriteError{Err: errSinkFull}
	assert.EqualError(t, err, "write to sink: sink full")
	assert.Equal(t, errSinkFull, errors.Unwrap(err))
}
