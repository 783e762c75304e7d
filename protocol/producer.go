package protocol

// Variant is a tagged sum value. A variant without fields is written as its
// bare name, a variant with fields as a tagged structure.
type Variant struct {
	Name   string
	Fields []Marshaler
}

func (v Variant) MarshalXMLRPC(s Serializer) {
	s.VariantStart(v.Name, len(v.Fields))
	for i, f := range v.Fields {
		s.VariantField(i)
		f.MarshalXMLRPC(s)
	}
	s.VariantEnd()
}

// Field is a named member of a Record.
type Field struct {
	Name  string
	Value Marshaler
}

// Record is a named collection of fields, written in declaration order.
type Record struct {
	Name   string
	Fields []Field
}

func (r Record) MarshalXMLRPC(s Serializer) {
	s.RecordStart(r.Name, len(r.Fields))
	for i, f := range r.Fields {
		s.RecordField(f.Name, i)
		f.Value.MarshalXMLRPC(s)
	}
	s.RecordEnd()
}

// Optional is a value that may be absent. An absent value, or a present one
// without inner value, is written as nil.
type Optional struct {
	Present bool
	Value   Marshaler
}

// Some returns a present Optional.
func Some(m Marshaler) Optional { return Optional{Present: true, Value: m} }

// None returns an absent Optional.
func None() Optional { return Optional{} }

func (o Optional) MarshalXMLRPC(s Serializer) {
	present := o.Present && o.Value != nil
	s.Option(present)
	if present {
		o.Value.MarshalXMLRPC(s)
	}
}
