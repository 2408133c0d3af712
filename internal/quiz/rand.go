package quiz

import (
	"math/rand/v2"
	"time"

	"github.com/Anthya1104/coercion-quiz/internal/jsvalue"
)

// Rand is the randomness source every generator draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed is replaced by the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

const (
	tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	tokenMinLen   = 4
	tokenMaxLen   = 6

	maxOperand = 9
)

// RandomToken returns a short lowercase alphanumeric string.
func RandomToken(r Rand) string {
	n := tokenMinLen + r.IntN(tokenMaxLen-tokenMinLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[r.IntN(len(tokenAlphabet))]
	}
	return string(b)
}

// SampleValue produces one concrete operand of the given kind.
func SampleValue(r Rand, kind jsvalue.Kind) jsvalue.Value {
	switch kind {
	case jsvalue.KindNumber:
		return jsvalue.Int(r.IntN(maxOperand + 1))
	case jsvalue.KindString:
		return jsvalue.String(RandomToken(r))
	case jsvalue.KindBoolean:
		return jsvalue.Bool(r.IntN(2) == 1)
	case jsvalue.KindNull:
		return jsvalue.Null
	default:
		return jsvalue.Undefined
	}
}

// shuffle is an in-place Fisher-Yates shuffle
func shuffle(r Rand, s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
