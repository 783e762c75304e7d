package value

import (
	"encoding/json"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var jsonConfig = jsoniter.Config{
	UseNumber: true,
}.Froze()

// FromJSON decodes a JSON document into a Value tree. Objects become
// Structs, arrays become Arrays and null becomes Nil. Integral numbers
// become Ints and are range checked, all other numbers become Doubles.
func FromJSON(data []byte) (Value, error) {
	var doc interface{}
	if err := jsonConfig.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return fromJSONValue(doc)
}

func fromJSONValue(doc interface{}) (Value, error) {
	switch v := doc.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return FromInt(i)
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", v, err)
		}
		return Double(f), nil
	case []interface{}:
		return FromSlice(v, fromJSONValue)
	case map[string]interface{}:
		return FromMap(v, fromJSONValue)
	}
	return From(doc)
}
