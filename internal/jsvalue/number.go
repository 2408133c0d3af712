package jsvalue

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var nan = math.NaN()

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// whitespace and line terminators stripped before numeric parsing
const numericSpace = "\t\n\v\f\r \u00a0\u1680\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200a\u2028\u2029\u202f\u205f\u3000\ufeff"

// ParseNumber converts a string to a number. The empty (or all whitespace)
// string is 0, "Infinity" with an optional sign is infinite, 0x/0o/0b prefixes
// select a radix, and anything that is not a decimal literal is NaN.
// Go-only spellings such as "inf", "nan", "1_000" or hex floats are rejected.
func ParseNumber(s string) float64 {
	s = strings.Trim(s, numericSpace)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseRadix(s[2:], base)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return nan
	}
	// out of range literals come back as ±Inf or ±0 alongside ErrRange, which is the wanted value
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseRadix(digits string, base int) float64 {
	for _, r := range digits {
		if r == '_' || r == '+' || r == '-' {
			return nan
		}
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nan
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

// FormatNumber renders f with the shortest round-trip digits, switching to
// exponent notation outside [1e-7, 1e21) exactly like Number.prototype.toString.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	// shortest digits in d.ddddde±x form
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)
	digits := strings.Replace(mantissa, ".", "", 1)
	k := len(digits)
	n := exp + 1

	var out string
	switch {
	case k <= n && n <= 21:
		out = digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		out = digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		out = "0." + strings.Repeat("0", -n) + digits
	default:
		e := n - 1
		expSign := "+"
		if e < 0 {
			expSign = "-"
			e = -e
		}
		out = digits[:1]
		if k > 1 {
			out += "." + digits[1:]
		}
		out += "e" + expSign + strconv.Itoa(e)
	}
	return sign + out
}

// IsFiniteNumeric reports whether s converts to a finite number.
func IsFiniteNumeric(s string) (float64, bool) {
	f := ParseNumber(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f, false
	}
	return f, true
}
