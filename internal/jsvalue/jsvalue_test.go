package jsvalue_test

import (
	"math"
	"testing"

	"github.com/Anthya1104/coercion-quiz/internal/jsvalue"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tenth, fifth := 0.1, 0.2
	cases := map[float64]string{
		7:                   "7",
		-3:                  "-3",
		tenth + fifth:       "0.30000000000000004",
		2.5:                 "2.5",
		1.0 / 3.0:           "0.3333333333333333",
		100:                 "100",
		1e21:                "1e+21",
		123e20:              "1.23e+22",
		1e-7:                "1e-7",
		0.000001:            "0.000001",
		-0.000123:           "-0.000123",
		math.Inf(1):         "Infinity",
		math.Inf(-1):        "-Infinity",
		math.Copysign(0, -1): "0",
		999999999999999900000: "999999999999999900000",
	}
	for in, want := range cases {
		assert.Equal(t, want, jsvalue.FormatNumber(in), "FormatNumber(%v)", in)
	}
	assert.Equal(t, "NaN", jsvalue.FormatNumber(math.NaN()))
}

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"":          0,
		"   ":       0,
		"42":        42,
		" 42\n":     42,
		"1e5":       100000,
		"5.":        5,
		".5":        0.5,
		"-7":        -7,
		"0x1f":      31,
		"0b101":     5,
		"0o17":      15,
		"Infinity":  math.Inf(1),
		"-Infinity": math.Inf(-1),
		"1e400":     math.Inf(1),
	}
	for in, want := range cases {
		assert.Equal(t, want, jsvalue.ParseNumber(in), "ParseNumber(%q)", in)
	}

	for _, in := range []string{"abc", "inf", "nan", "infinity", "1_000", "0x", "-0x1f", "0x1p3", "1e", "12ab", "0xzz"} {
		assert.True(t, math.IsNaN(jsvalue.ParseNumber(in)), "ParseNumber(%q) should be NaN", in)
	}
}

func TestIsFiniteNumeric(t *testing.T) {
	f, ok := jsvalue.IsFiniteNumeric("12")
	assert.True(t, ok)
	assert.Equal(t, 12.0, f)

	for _, in := range []string{"Infinity", "-Infinity", "NaN", "k3j9", "trueabc"} {
		_, ok := jsvalue.IsFiniteNumeric(in)
		assert.False(t, ok, in)
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "undefined", jsvalue.Undefined.String())
	assert.Equal(t, "undefined", jsvalue.Value{}.String())
	assert.Equal(t, "null", jsvalue.Null.String())
	assert.Equal(t, "true", jsvalue.Bool(true).String())
	assert.Equal(t, "false", jsvalue.Bool(false).String())
	assert.Equal(t, "4", jsvalue.Int(4).String())
	assert.Equal(t, "ab1", jsvalue.String("ab1").String())
}

func TestAddCoercion(t *testing.T) {
	cases := []struct {
		name string
		a, b jsvalue.Value
		want string
	}{
		{"numbers", jsvalue.Int(3), jsvalue.Int(4), "7"},
		{"string+number concatenates", jsvalue.String("ab"), jsvalue.Int(4), "ab4"},
		{"number+string concatenates", jsvalue.Int(4), jsvalue.String("ab"), "4ab"},
		{"boolean coerces to 1", jsvalue.Bool(true), jsvalue.Int(2), "3"},
		{"boolean+boolean", jsvalue.Bool(true), jsvalue.Bool(true), "2"},
		{"string+boolean", jsvalue.String("x"), jsvalue.Bool(false), "xfalse"},
		{"null is zero", jsvalue.Null, jsvalue.Int(5), "5"},
		{"undefined is NaN", jsvalue.Undefined, jsvalue.Int(5), "NaN"},
		{"string+null", jsvalue.String("q"), jsvalue.Null, "qnull"},
		{"string+undefined", jsvalue.String("q"), jsvalue.Undefined, "qundefined"},
		{"null+null", jsvalue.Null, jsvalue.Null, "0"},
		{"null+undefined", jsvalue.Null, jsvalue.Undefined, "NaN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, jsvalue.Add(c.a, c.b).String())
		})
	}
}

func TestNumericOperators(t *testing.T) {
	cases := []struct {
		op   string
		a, b jsvalue.Value
		want string
	}{
		{"-", jsvalue.Int(3), jsvalue.Int(9), "-6"},
		{"-", jsvalue.String("12"), jsvalue.Int(2), "10"},
		{"-", jsvalue.String("ab"), jsvalue.Int(2), "NaN"},
		{"*", jsvalue.Bool(true), jsvalue.Int(8), "8"},
		{"*", jsvalue.Null, jsvalue.Int(8), "0"},
		{"/", jsvalue.Int(7), jsvalue.Int(2), "3.5"},
		{"/", jsvalue.Int(1), jsvalue.Int(0), "Infinity"},
		{"/", jsvalue.Int(0), jsvalue.Int(0), "NaN"},
		{"/", jsvalue.Int(1), jsvalue.Bool(false), "Infinity"},
		{"/", jsvalue.Int(2), jsvalue.Int(3), "0.6666666666666666"},
		{"%", jsvalue.Int(7), jsvalue.Int(3), "1"},
		{"%", jsvalue.Int(7), jsvalue.Int(0), "NaN"},
		{"%", jsvalue.Int(-7), jsvalue.Int(3), "-1"},
		{"%", jsvalue.Bool(true), jsvalue.Null, "NaN"},
	}
	for _, c := range cases {
		got, err := jsvalue.Binary(c.op, c.a, c.b)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "%#v %s %#v", c.a, c.op, c.b)
	}

	_, err := jsvalue.Binary("**", jsvalue.Int(1), jsvalue.Int(2))
	assert.Error(t, err)
}

func TestPostfixReturnsOldNumericValue(t *testing.T) {
	res, updated := jsvalue.PostIncrement(jsvalue.Int(5))
	assert.Equal(t, "5", res.String())
	assert.Equal(t, "6", updated.String())

	res, updated = jsvalue.PostDecrement(jsvalue.Int(5))
	assert.Equal(t, "5", res.String())
	assert.Equal(t, "4", updated.String())

	res, _ = jsvalue.PostIncrement(jsvalue.String("5"))
	assert.Equal(t, jsvalue.KindNumber, res.Kind())
	assert.Equal(t, "5", res.String())

	res, _ = jsvalue.PostIncrement(jsvalue.Bool(true))
	assert.Equal(t, "1", res.String())

	res, _ = jsvalue.PostDecrement(jsvalue.Null)
	assert.Equal(t, "0", res.String())

	res, _ = jsvalue.PostIncrement(jsvalue.Undefined)
	assert.Equal(t, "NaN", res.String())

	res, _ = jsvalue.PostIncrement(jsvalue.String("zz9"))
	assert.Equal(t, "NaN", res.String())
}
