package quiz

import (
	"slices"
	"strconv"

	"github.com/Anthya1104/coercion-quiz/internal/jsvalue"
	"github.com/sirupsen/logrus"
)

const (
	OptionCount = 4

	maxVariation       = 5
	maxNumericAttempts = 64
	maxTokenAttempts   = 64
)

// QuizItem is one question with its shuffled candidate answers.
type QuizItem struct {
	Prompt       string   `yaml:"prompt" json:"prompt"`
	Options      []string `yaml:"options" json:"options"`
	CorrectIndex int      `yaml:"correctIndex" json:"correctIndex"`
}

// Answer returns the correct option text.
func (it QuizItem) Answer() string {
	return it.Options[it.CorrectIndex]
}

// IsCorrect reports whether the option at index is the correct one.
func (it QuizItem) IsCorrect(index int) bool {
	return index == it.CorrectIndex
}

// NewQuizItem pairs the question's answer with three distinct distractors,
// shuffles them and records where the answer landed.
func NewQuizItem(r Rand, q Question) QuizItem {
	options := SynthesizeOptions(r, q.Answer)
	return QuizItem{
		Prompt:       q.Text,
		Options:      options,
		CorrectIndex: slices.Index(options, q.Answer),
	}
}

// SynthesizeOptions returns OptionCount distinct strings in random order, one
// of which is correct.
//
// Answers that read as finite numbers get numeric neighbours (±1..5); all other
// answers, and numeric answers whose neighbours collapse under float precision,
// get random tokens.
func SynthesizeOptions(r Rand, correct string) []string {
	options := make([]string, 0, OptionCount)
	options = append(options, correct)

	if num, ok := jsvalue.IsFiniteNumeric(correct); ok {
		for attempt := 0; len(options) < OptionCount && attempt < maxNumericAttempts; attempt++ {
			variation := float64(r.IntN(maxVariation) + 1)
			if r.IntN(2) == 0 {
				variation = -variation
			}
			options = appendUnique(options, jsvalue.FormatNumber(num+variation))
		}
		if len(options) < OptionCount {
			logrus.Debugf("Numeric distractors exhausted for %q, falling back to tokens", correct)
		}
	}

	for attempt := 0; len(options) < OptionCount && attempt < maxTokenAttempts; attempt++ {
		options = appendUnique(options, RandomToken(r))
	}

	// a fixed sequence of distinct strings guarantees termination
	for n := 0; len(options) < OptionCount; n++ {
		options = appendUnique(options, "opt"+strconv.Itoa(n))
	}

	shuffle(r, options)
	return options
}

func appendUnique(options []string, candidate string) []string {
	if slices.Contains(options, candidate) {
		return options
	}
	return append(options, candidate)
}
