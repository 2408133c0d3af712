package quiz

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

const DefaultCount = 5

// QuizSet is the fixed, ordered list of items for one session.
type QuizSet struct {
	Difficulty Difficulty `yaml:"difficulty" json:"difficulty"`
	Items      []QuizItem `yaml:"items" json:"items"`
}

func (s QuizSet) Len() int { return len(s.Items) }

// Clone returns a deep copy so callers cannot mutate a session's set.
func (s QuizSet) Clone() QuizSet {
	items := make([]QuizItem, len(s.Items))
	for i, it := range s.Items {
		it.Options = slices.Clone(it.Options)
		items[i] = it
	}
	return QuizSet{Difficulty: s.Difficulty, Items: items}
}

// GenerateQuizSet produces count independent items at the given difficulty.
func GenerateQuizSet(r Rand, count int, d Difficulty) (QuizSet, error) {
	if !d.Valid() {
		return QuizSet{}, &ConfigError{Field: "difficulty", Value: string(d)}
	}
	if count <= 0 {
		return QuizSet{}, fmt.Errorf("question count must be positive, got %d", count)
	}

	items := make([]QuizItem, 0, count)
	for i := 0; i < count; i++ {
		q, err := NewQuestion(r, d)
		if err != nil {
			return QuizSet{}, err
		}
		items = append(items, NewQuizItem(r, q))
	}
	logrus.Debugf("Generated quiz set of %d %s questions", count, d)

	return QuizSet{Difficulty: d, Items: items}, nil
}

// Generator binds a randomness source so callers can regenerate sets on demand.
type Generator struct {
	rand Rand
}

func NewGenerator(r Rand) *Generator {
	return &Generator{rand: r}
}

func (g *Generator) Generate(count int, d Difficulty) (QuizSet, error) {
	return GenerateQuizSet(g.rand, count, d)
}
