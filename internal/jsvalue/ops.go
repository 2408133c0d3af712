package jsvalue

import (
	"fmt"
	"math"
)

// Add applies '+': concatenation when either side is a string, numeric
// addition otherwise.
func Add(a, b Value) Value {
	if a.kind == KindString || b.kind == KindString {
		return String(a.String() + b.String())
	}
	return Number(a.ToNumber() + b.ToNumber())
}

func Sub(a, b Value) Value { return Number(a.ToNumber() - b.ToNumber()) }

func Mul(a, b Value) Value { return Number(a.ToNumber() * b.ToNumber()) }

// Div follows IEEE 754: x/0 is ±Infinity and 0/0 is NaN.
func Div(a, b Value) Value { return Number(a.ToNumber() / b.ToNumber()) }

// Rem is the truncating remainder; the result takes the sign of the dividend.
func Rem(a, b Value) Value { return Number(math.Mod(a.ToNumber(), b.ToNumber())) }

// PostIncrement returns the value a postfix x++ expression yields for a
// binding holding x, along with the binding's new value.
func PostIncrement(x Value) (result, updated Value) {
	old := x.ToNumber()
	return Number(old), Number(old + 1)
}

// PostDecrement is the x-- counterpart of PostIncrement.
func PostDecrement(x Value) (result, updated Value) {
	old := x.ToNumber()
	return Number(old), Number(old - 1)
}

// Binary applies one of + - * / %.
func Binary(op string, a, b Value) (Value, error) {
	switch op {
	case "+":
		return Add(a, b), nil
	case "-":
		return Sub(a, b), nil
	case "*":
		return Mul(a, b), nil
	case "/":
		return Div(a, b), nil
	case "%":
		return Rem(a, b), nil
	default:
		return Undefined, fmt.Errorf("unknown binary operator: %s", op)
	}
}
