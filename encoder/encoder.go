// Package encoder writes values described through the protocol package as
// XML-RPC markup.
//
// The encoder streams directly to its sink. It keeps the first failure it
// runs into, turns every following call into a no-op and reports the failure
// once the top level Encode call returns.
package encoder

import (
	"encoding/base64"
	"io"
	"math"
	"strconv"

	"github.com/tsatke/xmlrpc/protocol"
)

var _ protocol.ExtendedSerializer = (*Encoder)(nil)

// frame is an open array, struct or variant.
type frame struct {
	fields int
	// member is set while a <member> element of a struct is open.
	member bool
}

// Encoder is a protocol.Serializer that writes XML-RPC values to an
// io.Writer. An Encoder is meant for a single encoding pass and must not be
// used from multiple goroutines.
type Encoder struct {
	w         io.Writer
	precision int
	err       error

	frames []frame
	// name is set after MappingKey, the next scalar is written as the
	// member name instead of a value.
	name bool
}

// New creates an Encoder writing to w, applying all given options.
func New(w io.Writer, opts ...Option) *Encoder {
	e := &Encoder{
		w:         w,
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode lets m describe itself to the encoder and returns the first
// failure of the pass, if any.
func (e *Encoder) Encode(m protocol.Marshaler) error {
	if e.err != nil {
		return e.err
	}
	m.MarshalXMLRPC(e)
	return e.err
}

func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) Fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Raw writes s verbatim. It is used for the framing around encoded values.
func (e *Encoder) Raw(s string) {
	e.write(s)
}

func (e *Encoder) Nil() {
	if !e.expectValue("nil") {
		return
	}
	e.write("<value><nil/></value>")
}

func (e *Encoder) Bool(v bool) {
	if v {
		e.scalar("boolean", "1")
	} else {
		e.scalar("boolean", "0")
	}
}

func (e *Encoder) Int32(v int32) {
	e.scalar("int", strconv.FormatInt(int64(v), 10))
}

func (e *Encoder) Float64(v float64) {
	if e.err != nil {
		return
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.Fail(&UnsupportedValueError{Value: strconv.FormatFloat(v, 'g', -1, 64)})
		return
	}
	e.scalar("double", strconv.FormatFloat(v, 'f', e.precision, 64))
}

func (e *Encoder) Char(v rune) {
	e.String(string(v))
}

func (e *Encoder) String(v string) {
	e.scalar("string", v)
}

func (e *Encoder) DateTime(v string) {
	e.scalar("dateTime.iso8601", v)
}

func (e *Encoder) Base64(v []byte) {
	if e.err != nil {
		return
	}
	wrap := !e.name
	e.name = false
	if wrap {
		e.write("<value><base64>")
		if e.err != nil {
			return
		}
	}
	enc := base64.NewEncoder(base64.StdEncoding, e.w)
	_, err := enc.Write(v)
	if closeErr := enc.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		e.err = &SinkWriteError{Err: err}
		return
	}
	if wrap {
		e.write("</base64></value>")
	}
}

func (e *Encoder) Option(present bool) {
	if !present {
		e.Nil()
	}
}

func (e *Encoder) SequenceStart(int) {
	if !e.expectValue("array") {
		return
	}
	e.push(frame{})
	e.write("<value><array><data>")
}

func (e *Encoder) SequenceElement(int) {}

func (e *Encoder) SequenceEnd() {
	if e.err != nil {
		return
	}
	e.pop()
	e.write("</data></array></value>")
}

func (e *Encoder) MappingStart(int) {
	if !e.expectValue("struct") {
		return
	}
	e.push(frame{})
	e.write("<value><struct>")
}

func (e *Encoder) MappingKey(int) {
	if e.err != nil {
		return
	}
	e.openMember()
	e.write("<name>")
	e.name = true
}

func (e *Encoder) MappingValue(int) {
	if e.err != nil {
		return
	}
	e.name = false
	e.write("</name>")
}

func (e *Encoder) MappingEnd() {
	e.endStruct()
}

func (e *Encoder) VariantStart(name string, fields int) {
	if !e.expectValue("variant") {
		return
	}
	e.push(frame{fields: fields})
	if fields == 0 {
		e.scalar("string", name)
		return
	}
	e.write("<value><struct><member><name>variant</name><value>")
	e.text(name)
	e.write("</value></member><member><name>fields</name><value><array><data>")
}

func (e *Encoder) VariantField(int) {}

func (e *Encoder) VariantEnd() {
	if e.err != nil {
		return
	}
	if f := e.pop(); f.fields > 0 {
		e.write("</data></array></value></member></struct></value>")
	}
}

func (e *Encoder) RecordStart(string, int) {
	if !e.expectValue("struct") {
		return
	}
	e.push(frame{})
	e.write("<value><struct>")
}

func (e *Encoder) RecordField(name string, _ int) {
	if e.err != nil {
		return
	}
	e.openMember()
	e.write("<name>")
	e.text(name)
	e.write("</name>")
}

func (e *Encoder) RecordEnd() {
	e.endStruct()
}

// scalar writes text, escaped and wrapped in <value><tag>, or as a bare
// member name if one is expected.
func (e *Encoder) scalar(tag, text string) {
	if e.err != nil {
		return
	}
	if e.name {
		e.name = false
		e.text(text)
		return
	}
	e.write("<value><" + tag + ">")
	e.text(text)
	e.write("</" + tag + "></value>")
}

// expectValue reports whether a value that can't be a member name may be
// written. It fails the pass if a member name is expected.
func (e *Encoder) expectValue(what string) bool {
	if e.err != nil {
		return false
	}
	if e.name {
		e.Fail(&UnsupportedValueError{Value: what + " as member name"})
		return false
	}
	return true
}

func (e *Encoder) openMember() {
	f := e.top()
	if f == nil {
		return
	}
	if f.member {
		e.write("</member>")
	}
	e.write("<member>")
	f.member = true
}

func (e *Encoder) endStruct() {
	if e.err != nil {
		return
	}
	if f := e.pop(); f.member {
		e.write("</member>")
	}
	e.write("</struct></value>")
}

func (e *Encoder) push(f frame) {
	e.frames = append(e.frames, f)
}

func (e *Encoder) pop() frame {
	if len(e.frames) == 0 {
		return frame{}
	}
	f := e.frames[len(e.frames)-1]
	e.frames = e.frames[:len(e.frames)-1]
	return f
}

func (e *Encoder) top() *frame {
	if len(e.frames) == 0 {
		return nil
	}
	return &e.frames[len(e.frames)-1]
}

func (e *Encoder) write(s string) {
	if e.err != nil {
		return
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = &SinkWriteError{Err: err}
	}
}

func (e *Encoder) text(s string) {
	if e.err != nil {
		return
	}
	if err := writeEscaped(e.w, s); err != nil {
		e.err = &SinkWriteError{Err: err}
	}
}
