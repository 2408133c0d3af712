package session

import "github.com/Anthya1104/coercion-quiz/internal/quiz"

// Generator produces a fresh quiz set for each start or restart.
type Generator interface {
	Generate(count int, d quiz.Difficulty) (quiz.QuizSet, error)
}
