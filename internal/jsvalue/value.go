package jsvalue

import "fmt"

// Kind tags the dynamic type carried by a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "undefined"
	}
}

// Value is a dynamically typed operand. The zero Value is undefined.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

var (
	Undefined = Value{kind: KindUndefined}
	Null      = Value{kind: KindNull}
)

func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

func Int(i int) Value { return Number(float64(i)) }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

func (v Value) Kind() Kind { return v.kind }

// ToNumber converts v using the numeric conversion rules of dynamically typed
// arithmetic: undefined is NaN, null is 0, booleans are 0/1 and strings are
// parsed as numeric literals.
func (v Value) ToNumber() float64 {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return ParseNumber(v.str)
	case KindBoolean:
		if v.b {
			return 1
		}
		return 0
	case KindNull:
		return 0
	default:
		return nan
	}
}

// String renders v the way string conversion and template interpolation do.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num)
	case KindString:
		return v.str
	case KindBoolean:
		if v.b {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	default:
		return "undefined"
	}
}

// GoString is used by %#v and keeps strings distinguishable from numbers in logs.
func (v Value) GoString() string {
	if v.kind == KindString {
		return fmt.Sprintf("%q", v.str)
	}
	return v.String()
}
