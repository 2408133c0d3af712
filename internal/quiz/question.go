package quiz

import (
	"fmt"

	"github.com/Anthya1104/coercion-quiz/internal/jsvalue"
	"github.com/sirupsen/logrus"
)

// expression operator
type Operator string

const (
	OpAdd       Operator = "+"
	OpSub       Operator = "-"
	OpMul       Operator = "*"
	OpDiv       Operator = "/"
	OpRem       Operator = "%"
	OpPostInc   Operator = "++"
	OpPostDec   Operator = "--"
	OpAddAssign Operator = "+="
	OpSubAssign Operator = "-="
	OpMulAssign Operator = "*="
	OpDivAssign Operator = "/="
)

// IsPostfix reports whether o only reads its first operand.
func (o Operator) IsPostfix() bool {
	return o == OpPostInc || o == OpPostDec
}

// IsAssignment reports whether o is a compound assignment.
func (o Operator) IsAssignment() bool {
	switch o {
	case OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign:
		return true
	}
	return false
}

// Apply evaluates the operator. Postfix operators ignore b and yield the
// expression value; compound assignments yield the new value of the binding.
func (o Operator) Apply(a, b jsvalue.Value) (jsvalue.Value, error) {
	switch o {
	case OpPostInc:
		res, _ := jsvalue.PostIncrement(a)
		return res, nil
	case OpPostDec:
		res, _ := jsvalue.PostDecrement(a)
		return res, nil
	case OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign:
		return jsvalue.Binary(string(o[:1]), a, b)
	default:
		return jsvalue.Binary(string(o), a, b)
	}
}

// Question structure
type Question struct {
	ArgumentA jsvalue.Value
	ArgumentB jsvalue.Value
	Operator  Operator
	Text      string
	Answer    string
}

func (q Question) String() string {
	return q.Text
}

// NewQuestionWith builds the question for fixed operands. The answer is always
// the string form of the evaluated result.
func NewQuestionWith(op Operator, a, b jsvalue.Value) (Question, error) {
	ans, err := op.Apply(a, b)
	if err != nil {
		return Question{}, err
	}

	var text string
	switch {
	case op.IsPostfix():
		text = fmt.Sprintf("What is the result of: let x = %s; x%s;", a, op)
	case op.IsAssignment():
		text = fmt.Sprintf("What is the value of x after: let x = %s; x %s %s;", a, op, b)
	default:
		text = fmt.Sprintf("What is the result of %s %s %s?", a, op, b)
	}

	return Question{
		ArgumentA: a,
		ArgumentB: b,
		Operator:  op,
		Text:      text,
		Answer:    ans.String(),
	}, nil
}

// NewQuestion draws one operator and two operand kinds (with replacement)
// from the difficulty's pools and builds the question.
func NewQuestion(r Rand, d Difficulty) (Question, error) {
	if !d.Valid() {
		return Question{}, &ConfigError{Field: "difficulty", Value: string(d)}
	}

	ops := operatorPools[d]
	kinds := kindPools[d]

	op := ops[r.IntN(len(ops))]
	kindA := kinds[r.IntN(len(kinds))]
	kindB := kinds[r.IntN(len(kinds))]

	a := SampleValue(r, kindA)
	b := SampleValue(r, kindB)

	q, err := NewQuestionWith(op, a, b)
	if err != nil {
		return Question{}, err
	}
	logrus.Debugf("Generated question [%s] %#v %s %#v = %s", d, a, op, b, q.Answer)
	return q, nil
}
