// Package protocol defines the callbacks a value producer uses to describe the
// shape of a value to a wire format.
//
// A producer drives a Serializer in a grammar that matches the data. Every
// Start call is followed by exactly as many element, key/value or field calls
// as it announced, and then by the matching End call. Serializers trust this
// grammar and do not check it.
//
//	s.SequenceStart(2)
//	s.SequenceElement(0)
//	s.Int32(1)
//	s.SequenceElement(1)
//	s.String("two")
//	s.SequenceEnd()
package protocol

// Serializer is the consumer side of the protocol, with one method per wire
// shape. Narrower numeric shapes are adapted onto Int32 and Float64 by the
// package level functions in adapter.go.
type Serializer interface {
	Nil()
	Bool(v bool)
	Int32(v int32)
	Float64(v float64)
	Char(v rune)
	String(v string)

	// Option announces an optional value. If present is false, the
	// serializer emits nil. Otherwise the producer emits the inner value next.
	Option(present bool)

	SequenceStart(n int)
	SequenceElement(i int)
	SequenceEnd()

	// MappingKey is followed by the key, MappingValue by the value.
	MappingStart(n int)
	MappingKey(i int)
	MappingValue(i int)
	MappingEnd()

	VariantStart(name string, fields int)
	VariantField(i int)
	VariantEnd()

	RecordStart(name string, fields int)
	RecordField(name string, i int)
	RecordEnd()

	// Fail records err as the failure of the current pass, unless a failure
	// has already been recorded. All subsequent calls are no-ops.
	Fail(err error)
	// Err returns the first recorded failure.
	Err() error
}

// ExtendedSerializer is implemented by serializers that have a native
// representation for timestamps and binary data. Producers fall back to
// String and a sequence of bytes for serializers that don't.
type ExtendedSerializer interface {
	Serializer

	DateTime(v string)
	Base64(v []byte)
}

// Marshaler is implemented by anything that can describe itself to a
// Serializer. Host records implement it by hand, listing their fields.
//
//	func (p Point) MarshalXMLRPC(s protocol.Serializer) {
//		s.RecordStart("Point", 2)
//		s.RecordField("x", 0)
//		s.Int32(p.X)
//		s.RecordField("y", 1)
//		s.Int32(p.Y)
//		s.RecordEnd()
//	}
type Marshaler interface {
	MarshalXMLRPC(s Serializer)
}

// MarshalerFunc adapts a function to the Marshaler interface.
type MarshalerFunc func(Serializer)

func (f MarshalerFunc) MarshalXMLRPC(s Serializer) { f(s) }
