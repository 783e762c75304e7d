package xmltest

import (
	"fmt"
	"strconv"

	"github.com/tsatke/xmlrpc/protocol"
)

var _ protocol.Serializer = (*Recorder)(nil)

// Recorder is a protocol.Serializer that records every call it receives in
// a compact textual form, such as "int32(5)" or "mapping-key(0)". It does not
// implement protocol.ExtendedSerializer.
type Recorder struct {
	Calls []string
	err   error
}

func (r *Recorder) record(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) Nil()              { r.record("nil") }
func (r *Recorder) Bool(v bool)       { r.record("bool(%t)", v) }
func (r *Recorder) Int32(v int32)     { r.record("int32(%d)", v) }
func (r *Recorder) Float64(v float64) { r.record("float64(%s)", strconv.FormatFloat(v, 'g', -1, 64)) }
func (r *Recorder) Char(v rune)       { r.record("char(%q)", v) }
func (r *Recorder) String(v string)   { r.record("string(%q)", v) }
func (r *Recorder) Option(present bool) {
	r.record("option(%t)", present)
}

func (r *Recorder) SequenceStart(n int)   { r.record("sequence-start(%d)", n) }
func (r *Recorder) SequenceElement(i int) { r.record("sequence-element(%d)", i) }
func (r *Recorder) SequenceEnd()          { r.record("sequence-end") }

func (r *Recorder) MappingStart(n int) { r.record("mapping-start(%d)", n) }
func (r *Recorder) MappingKey(i int)   { r.record("mapping-key(%d)", i) }
func (r *Recorder) MappingValue(i int) { r.record("mapping-value(%d)", i) }
func (r *Recorder) MappingEnd()        { r.record("mapping-end") }

func (r *Recorder) VariantStart(name string, fields int) {
	r.record("variant-start(%s, %d)", name, fields)
}
func (r *Recorder) VariantField(i int) { r.record("variant-field(%d)", i) }
func (r *Recorder) VariantEnd()        { r.record("variant-end") }

func (r *Recorder) RecordStart(name string, fields int) {
	r.record("record-start(%s, %d)", name, fields)
}
func (r *Recorder) RecordField(name string, i int) { r.record("record-field(%s, %d)", name, i) }
func (r *Recorder) RecordEnd()                     { r.record("record-end") }

func (r *Recorder) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Recorder) Err() error {
	return r.err
}
