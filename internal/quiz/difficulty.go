package quiz

import (
	"strings"

	"github.com/Anthya1104/coercion-quiz/internal/jsvalue"
)

// Difficulty tier controlling operator and operand pools
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"

	DefaultDifficulty = Medium
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

var operatorPools = map[Difficulty][]Operator{
	Easy:   {OpAdd, OpSub},
	Medium: {OpAdd, OpSub, OpMul, OpDiv, OpRem},
	Hard: {
		OpAdd, OpSub, OpMul, OpDiv, OpRem,
		OpPostInc, OpPostDec,
		OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign,
	},
}

var kindPools = map[Difficulty][]jsvalue.Kind{
	Easy:   {jsvalue.KindNumber},
	Medium: {jsvalue.KindNumber, jsvalue.KindString, jsvalue.KindBoolean},
	Hard:   {jsvalue.KindNumber, jsvalue.KindString, jsvalue.KindBoolean, jsvalue.KindNull, jsvalue.KindUndefined},
}

// ParseDifficulty maps a tier name to a Difficulty. Unknown names are a
// configuration error.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", &ConfigError{Field: "difficulty", Value: s}
	}
	return d, nil
}

func (d Difficulty) Valid() bool {
	_, ok := operatorPools[d]
	return ok
}

// Operators returns a copy of the tier's operator pool.
func (d Difficulty) Operators() []Operator {
	return append([]Operator(nil), operatorPools[d]...)
}

// ValueKinds returns a copy of the tier's operand kind pool.
func (d Difficulty) ValueKinds() []jsvalue.Kind {
	return append([]jsvalue.Kind(nil), kindPools[d]...)
}

func (d Difficulty) String() string { return string(d) }
