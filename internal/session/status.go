package session

import "fmt"

// Status of a quiz session
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusCompleted:
		return "completed"
	default:
		return "not started"
	}
}

// Outcome of a single question once the session is scored.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeUnanswered
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeUnanswered:
		return "unanswered"
	default:
		return "pending"
	}
}

// Feedback is the per-question message shown after submitting.
func Feedback(o Outcome, answer string) string {
	switch o {
	case OutcomeCorrect:
		return fmt.Sprintf("Correct! The answer is %s.", answer)
	case OutcomeIncorrect:
		return fmt.Sprintf("Incorrect. The correct answer is %s.", answer)
	case OutcomeUnanswered:
		return fmt.Sprintf("Not answered. The correct answer is %s.", answer)
	default:
		return ""
	}
}

// ScoreLine summarises a completed session.
func ScoreLine(score, total int) string {
	return fmt.Sprintf("Your score: %d out of %d", score, total)
}
