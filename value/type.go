package value

//go:generate stringer -type=Type -trimprefix=Type

type Type uint8

const (
	TypeInvalid Type = iota
	TypeNil
	TypeBoolean
	TypeInt
	TypeDouble
	TypeString
	TypeDateTime
	TypeBase64
	TypeArray
	TypeStruct
)
