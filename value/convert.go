package value

import (
	"fmt"
	"reflect"
	"time"

	"github.com/tsatke/xmlrpc/protocol"
)

// Valuer is implemented by host types that know how to convert themselves
// into a Value. Records implement it instead of being reflected over.
type Valuer interface {
	XMLRPCValue() (Value, error)
}

// Integer is the set of host integer types. All of them are converted to Int.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of host float types. Both are converted to Double.
type Float interface {
	~float32 | ~float64
}

// FromInt converts v into an Int. If v is outside of
// [protocol.MinInt, protocol.MaxInt], an *protocol.IntegerOverflowError
// is returned.
func FromInt[T Integer](v T) (Int, error) {
	if v < 0 {
		if int64(v) < protocol.MinInt {
			return 0, &protocol.IntegerOverflowError{Value: v}
		}
		return Int(int64(v)), nil
	}
	if uint64(v) > protocol.MaxInt {
		return 0, &protocol.IntegerOverflowError{Value: v}
	}
	return Int(uint64(v)), nil
}

func FromFloat[T Float](v T) Double {
	return Double(v)
}

// FromSlice converts every element of xs with conv.
func FromSlice[T any](xs []T, conv func(T) (Value, error)) (Array, error) {
	arr := make(Array, len(xs))
	for i, x := range xs {
		v, err := conv(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		arr[i] = v
	}
	return arr, nil
}

// FromMap converts every value of m with conv.
func FromMap[T any](m map[string]T, conv func(T) (Value, error)) (Struct, error) {
	members := make(map[string]Value, len(m))
	for k, x := range m {
		v, err := conv(x)
		if err != nil {
			return Struct{}, fmt.Errorf("member %q: %w", k, err)
		}
		members[k] = v
	}
	return StructOf(members), nil
}

// From converts a host value into a Value.
//
// Supported are nil, Values, Valuers, booleans, all integer and float types,
// strings, byte slices (as Base64), time.Time (as DateTime), and slices,
// arrays and string keyed maps whose elements are supported themselves.
// Integers that don't fit into 32 bits are rejected with an
// *protocol.IntegerOverflowError. Any other type yields an
// *UnsupportedTypeError.
func From(x interface{}) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Nil, nil
	case Value:
		return v, nil
	case Valuer:
		return v.XMLRPCValue()
	case bool:
		return Boolean(v), nil
	case int:
		return FromInt(v)
	case int8:
		return FromInt(v)
	case int16:
		return FromInt(v)
	case int32:
		return FromInt(v)
	case int64:
		return FromInt(v)
	case uint:
		return FromInt(v)
	case uint8:
		return FromInt(v)
	case uint16:
		return FromInt(v)
	case uint32:
		return FromInt(v)
	case uint64:
		return FromInt(v)
	case float32:
		return FromFloat(v), nil
	case float64:
		return FromFloat(v), nil
	case string:
		return String(v), nil
	case []byte:
		return Base64(v), nil
	case time.Time:
		return DateTimeOf(v), nil
	case []interface{}:
		return FromSlice(v, From)
	case map[string]interface{}:
		return FromMap(v, From)
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Boolean(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromInt(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Array{}, nil
		}
		arr := make(Array, rv.Len())
		for i := range arr {
			v, err := From(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			arr[i] = v
		}
		return arr, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		members := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			v, err := From(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			members[k] = v
		}
		return StructOf(members), nil
	}
	return nil, &UnsupportedTypeError{Type: rv.Type()}
}
