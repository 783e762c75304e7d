package encoder_test

import (
	"errors"
	"math"

	"github.com/tsatke/xmlrpc/encoder"
	"github.com/tsatke/xmlrpc/protocol"
	"github.com/tsatke/xmlrpc/value"
)

func (suite *EncoderSuite) TestScalars() {
	suite.assertEncoded(value.Nil, "<value><nil/></value>")
	suite.assertEncoded(value.True, "<value><boolean>1</boolean></value>")
	suite.assertEncoded(value.False, "<value><boolean>0</boolean></value>")
	suite.assertEncoded(value.Int(0), "<value><int>0</int></value>")
	suite.assertEncoded(value.Int(2147483647), "<value><int>2147483647</int></value>")
	suite.assertEncoded(value.Int(-2147483647), "<value><int>-2147483647</int></value>")
	suite.assertEncoded(value.Int(-2147483648), "<value><int>-2147483648</int></value>")
	suite.assertEncoded(value.Double(1.5), "<value><double>1.5</double></value>")
	suite.assertEncoded(value.Double(-0.1), "<value><double>-0.1</double></value>")
	suite.assertEncoded(value.Double(1e21), "<value><double>1000000000000000000000</double></value>")
	suite.assertEncoded(value.String(""), "<value><string></string></value>")
	suite.assertEncoded(value.String("a & b <c> \"d\""), "<value><string>a &amp; b &lt;c&gt; \"d\"</string></value>")
	suite.assertEncoded(value.DateTime("not validated"), "<value><dateTime.iso8601>not validated</dateTime.iso8601></value>")
	suite.assertEncoded(value.Base64("hi"), "<value><base64>aGk=</base64></value>")
	suite.assertEncoded(value.Base64(nil), "<value><base64></base64></value>")
}

func (suite *EncoderSuite) TestCharAndOption() {
	suite.assertEncoded(protocol.MarshalerFunc(func(s protocol.Serializer) {
		s.Char('<')
	}), "<value><string>&lt;</string></value>")
	suite.assertEncoded(protocol.None(), "<value><nil/></value>")
	suite.assertEncoded(protocol.Some(value.Int(3)), "<value><int>3</int></value>")
}

func (suite *EncoderSuite) TestPrecision() {
	suite.assertEncoded(value.Double(1.5), "<value><double>1.500</double></value>", encoder.WithPrecision(3))
	suite.assertEncoded(value.Double(2), "<value><double>2</double></value>", encoder.WithPrecision(0))
	suite.assertEncoded(value.Double(1.0/3), "<value><double>0.333333</double></value>", encoder.WithPrecision(6))
	suite.assertEncoded(value.Double(0.25), "<value><double>0.25</double></value>", encoder.WithPrecision(-5))
}

func (suite *EncoderSuite) TestNonFiniteDouble() {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := encoder.EncodeToString(value.Double(f))
		var unsupported *encoder.UnsupportedValueError
		suite.ErrorAs(err, &unsupported)
	}
}

func (suite *EncoderSuite) TestEmptyContainers() {
	suite.assertEncoded(value.Array{}, "<value><array><data></data></array></value>")
	suite.assertEncoded(value.NewStruct(), "<value><struct></struct></value>")
	suite.assertEncoded(protocol.Record{Name: "Empty"}, "<value><struct></struct></value>")
}

func (suite *EncoderSuite) TestVariantWithoutFields() {
	suite.assertEncoded(protocol.Variant{Name: "Bunny"}, "<value><string>Bunny</string></value>")
	suite.assertEncoded(protocol.Variant{Name: "A&B"}, "<value><string>A&amp;B</string></value>")
}

func (suite *EncoderSuite) TestFiles() {
	suite.runFileTests([]fileTest{
		{
			"nested.xml",
			value.NewStruct().
				With("nothing", value.Nil).
				With("name", value.String("a<b")).
				With("list", value.Array{value.Int(1), value.Double(1.5), value.True}),
		},
		{
			"variant.xml",
			protocol.Variant{
				Name:   "Kangaroo",
				Fields: []protocol.Marshaler{value.Int(34), value.String("William")},
			},
		},
		{
			"record.xml",
			protocol.Record{
				Name: "Point",
				Fields: []protocol.Field{
					{Name: "x", Value: value.Int(1)},
					{Name: "y", Value: value.Int(2)},
				},
			},
		},
		{
			"extended.xml",
			protocol.MarshalerFunc(func(s protocol.Serializer) {
				s.SequenceStart(4)
				s.SequenceElement(0)
				protocol.Variant{Name: "Bunny"}.MarshalXMLRPC(s)
				s.SequenceElement(1)
				protocol.None().MarshalXMLRPC(s)
				s.SequenceElement(2)
				value.DateTime("19980717T14:08:55").MarshalXMLRPC(s)
				s.SequenceElement(3)
				value.Base64("hello").MarshalXMLRPC(s)
				s.SequenceEnd()
			}),
		},
	})
}

func (suite *EncoderSuite) TestMemberNames() {
	suite.assertEncoded(value.NewStruct().With("a&b", value.Int(1)),
		"<value><struct><member><name>a&amp;b</name><value><int>1</int></value></member></struct></value>")

	// keys of host mappings need not be strings
	suite.assertEncoded(protocol.MarshalerFunc(func(s protocol.Serializer) {
		s.MappingStart(2)
		s.MappingKey(0)
		s.Int32(7)
		s.MappingValue(0)
		s.Bool(true)
		s.MappingKey(1)
		s.Char('x')
		s.MappingValue(1)
		s.Nil()
		s.MappingEnd()
	}), "<value><struct>"+
		"<member><name>7</name><value><boolean>1</boolean></value></member>"+
		"<member><name>x</name><value><nil/></value></member>"+
		"</struct></value>")
}

func (suite *EncoderSuite) TestCompoundMemberName() {
	err := suite.enc.Encode(protocol.MarshalerFunc(func(s protocol.Serializer) {
		s.MappingStart(1)
		s.MappingKey(0)
		s.SequenceStart(0)
		s.SequenceEnd()
		s.MappingValue(0)
		s.Nil()
		s.MappingEnd()
	}))

	var unsupported *encoder.UnsupportedValueError
	suite.Require().ErrorAs(err, &unsupported)
	suite.Equal("unsupported value: array as member name", err.Error())
	suite.Equal("<value><struct><member><name>", suite.buf.String())
}

func (suite *EncoderSuite) TestDeterministicMemberOrder() {
	members := map[string]value.Value{}
	for _, k := range []string{"q", "b", "x", "a", "m", "z", "c"} {
		members[k] = value.String(k)
	}

	first, err := encoder.EncodeToBytes(value.StructOf(members))
	suite.Require().NoError(err)
	for i := 0; i < 10; i++ {
		again, err := encoder.EncodeToBytes(value.StructOf(members))
		suite.Require().NoError(err)
		suite.Equal(string(first), string(again))
	}

	reversed := value.NewStruct()
	for _, k := range []string{"z", "x", "q", "m", "c", "b", "a"} {
		reversed = reversed.With(k, value.String(k))
	}
	fromReversed, err := encoder.EncodeToBytes(reversed)
	suite.Require().NoError(err)
	suite.Equal(string(first), string(fromReversed))
}

func (suite *EncoderSuite) TestRoundTrip() {
	suite.assertRoundTrip(value.True)
	suite.assertRoundTrip(value.False)
	suite.assertRoundTrip(value.Int(-2147483648))
	suite.assertRoundTrip(value.Int(2147483647))
	suite.assertRoundTrip(value.Double(3.141592653589793))
	suite.assertRoundTrip(value.Double(-1e-7))
	suite.assertRoundTrip(value.String("<tag> & \"quotes\" and ünïcödé"))
	suite.assertRoundTrip(value.Nil)
	suite.assertRoundTrip(value.DateTime("20201201T19:27:43"))
	suite.assertRoundTrip(value.Base64{0, 1, 2, 0xfe, 0xff})
	suite.assertRoundTrip(value.Array{})
	suite.assertRoundTrip(value.NewStruct())
	suite.assertRoundTrip(value.Array{
		value.Int(1),
		value.Array{value.String("nested"), value.Array{}},
		value.NewStruct().With("k", value.Double(0.5)),
	})
	suite.assertRoundTrip(value.NewStruct().
		With("caller", value.String("/rosout")).
		With("topics", value.Array{value.String("/a"), value.String("/b")}).
		With("inner", value.NewStruct().
			With("ok", value.True).
			With("count", value.Int(-1))))
}

func (suite *EncoderSuite) TestEncodeToStringInvalidUTF8() {
	_, err := encoder.EncodeToString(value.String("ab\xffcd"))

	var encodingErr *encoder.EncodingError
	suite.Require().ErrorAs(err, &encodingErr)
	suite.Equal(len("<value><string>ab"), encodingErr.Offset)

	b, err := encoder.EncodeToBytes(value.String("ab\xffcd"))
	suite.NoError(err)
	suite.Equal("<value><string>ab\xffcd</string></value>", string(b))
}

func (suite *EncoderSuite) TestOverflowThroughAdapter() {
	err := suite.enc.Encode(protocol.MarshalerFunc(func(s protocol.Serializer) {
		s.SequenceStart(2)
		s.SequenceElement(0)
		protocol.Int64(s, 1)
		s.SequenceElement(1)
		protocol.Int64(s, math.MaxInt32+1)
		s.SequenceEnd()
	}))

	var overflow *protocol.IntegerOverflowError
	suite.ErrorAs(err, &overflow)
	suite.Equal("<value><array><data><value><int>1</int></value>", suite.buf.String())
}

func (suite *EncoderSuite) TestFailKeepsFirstError() {
	first := errors.New("first")
	suite.enc.Fail(first)
	suite.enc.Fail(errors.New("second"))
	suite.enc.String("ignored")

	suite.Equal(first, suite.enc.Err())
	suite.Equal(first, suite.enc.Encode(value.Int(1)))
	suite.Empty(suite.buf.String())
}

func (suite *EncoderSuite) TestEscape() {
	suite.Equal("a&amp;b&lt;c&gt;d\"e'", encoder.Escape("a&b<c>d\"e'"))
	suite.Equal("plain", encoder.Escape("plain"))
}
