// Package xmltest decodes XML-RPC markup back into value trees, so that
// tests can check encoded output structurally.
package xmltest

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsatke/xmlrpc/value"
)

// Decode parses a single <value> element.
func Decode(data []byte) (value.Value, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	start, err := nextStart(d)
	if err != nil {
		return nil, err
	}
	if start.Name.Local != "value" {
		return nil, fmt.Errorf("expected <value>, but got <%s>", start.Name.Local)
	}
	return decodeValue(d)
}

// DecodeRequest parses a methodCall document and returns the method name and
// the values of all parameters.
func DecodeRequest(data []byte) (string, []value.Value, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	var method string
	var params []value.Value
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return method, params, nil
		}
		if err != nil {
			return "", nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "methodName":
			if method, err = readText(d); err != nil {
				return "", nil, err
			}
		case "value":
			v, err := decodeValue(d)
			if err != nil {
				return "", nil, err
			}
			params = append(params, v)
		}
	}
}

func decodeValue(d *xml.Decoder) (value.Value, error) {
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			v, err := decodeTyped(d, t)
			if err != nil {
				return nil, err
			}
			if err := expectEnd(d, "value"); err != nil {
				return nil, err
			}
			return v, nil
		case xml.EndElement:
			return value.String(text.String()), nil
		}
	}
}

func decodeTyped(d *xml.Decoder, start xml.StartElement) (value.Value, error) {
	switch start.Name.Local {
	case "nil":
		if err := d.Skip(); err != nil {
			return nil, err
		}
		return value.Nil, nil
	case "array":
		return decodeArray(d)
	case "struct":
		return decodeStruct(d)
	}

	text, err := readText(d)
	if err != nil {
		return nil, err
	}
	switch start.Name.Local {
	case "boolean":
		switch text {
		case "0":
			return value.False, nil
		case "1":
			return value.True, nil
		}
		return nil, fmt.Errorf("invalid boolean %q", text)
	case "int", "i4":
		i, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, err
		}
		return value.Int(i), nil
	case "double":
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return value.Double(f), nil
	case "string":
		return value.String(text), nil
	case "dateTime.iso8601":
		return value.DateTime(text), nil
	case "base64":
		b, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, err
		}
		return value.Base64(b), nil
	}
	return nil, fmt.Errorf("unknown value type <%s>", start.Name.Local)
}

func decodeArray(d *xml.Decoder) (value.Value, error) {
	start, err := nextStart(d)
	if err != nil {
		return nil, err
	}
	if start.Name.Local != "data" {
		return nil, fmt.Errorf("expected <data>, but got <%s>", start.Name.Local)
	}

	arr := value.Array{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "value" {
				return nil, fmt.Errorf("expected <value>, but got <%s>", t.Name.Local)
			}
			v, err := decodeValue(d)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		case xml.EndElement:
			return arr, expectEnd(d, "array")
		}
	}
}

func decodeStruct(d *xml.Decoder) (value.Value, error) {
	members := make(map[string]value.Value)
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "member" {
				return nil, fmt.Errorf("expected <member>, but got <%s>", t.Name.Local)
			}
			name, v, err := decodeMember(d)
			if err != nil {
				return nil, err
			}
			members[name] = v
		case xml.EndElement:
			return value.StructOf(members), nil
		}
	}
}

func decodeMember(d *xml.Decoder) (string, value.Value, error) {
	start, err := nextStart(d)
	if err != nil {
		return "", nil, err
	}
	if start.Name.Local != "name" {
		return "", nil, fmt.Errorf("expected <name>, but got <%s>", start.Name.Local)
	}
	name, err := readText(d)
	if err != nil {
		return "", nil, err
	}
	if start, err = nextStart(d); err != nil {
		return "", nil, err
	}
	if start.Name.Local != "value" {
		return "", nil, fmt.Errorf("expected <value>, but got <%s>", start.Name.Local)
	}
	v, err := decodeValue(d)
	if err != nil {
		return "", nil, err
	}
	return name, v, expectEnd(d, "member")
}

// readText reads character data up to the end of the current element.
func readText(d *xml.Decoder) (string, error) {
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			return "", fmt.Errorf("unexpected <%s> in text", t.Name.Local)
		case xml.EndElement:
			return text.String(), nil
		}
	}
}

func nextStart(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.EndElement:
			return xml.StartElement{}, fmt.Errorf("unexpected </%s>", t.Name.Local)
		}
	}
}

func expectEnd(d *xml.Decoder, name string) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("expected </%s>, but got <%s>", name, t.Name.Local)
		case xml.EndElement:
			if t.Name.Local != name {
				return fmt.Errorf("expected </%s>, but got </%s>", name, t.Name.Local)
			}
			return nil
		}
	}
}
