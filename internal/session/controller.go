package session

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/Anthya1104/coercion-quiz/internal/quiz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyStarted   = errors.New("session already started")
	ErrNotInProgress    = errors.New("session is not in progress")
	ErrOptionOutOfRange = errors.New("option index out of range")
)

// NoSelection marks a question without a chosen option.
const NoSelection = -1

// Controller owns one quiz session: the generated set, the current question
// and the selections made so far. All transitions run synchronously.
type Controller struct {
	gen   Generator
	newID func() string

	id         string
	status     Status
	count      int
	difficulty quiz.Difficulty
	set        quiz.QuizSet
	current    int
	answers    map[int]int
	score      int
}

type Option func(*Controller)

// WithIDFunc replaces the session ID source.
func WithIDFunc(f func() string) Option {
	return func(c *Controller) { c.newID = f }
}

func New(gen Generator, opts ...Option) *Controller {
	c := &Controller{
		gen:     gen,
		newID:   uuid.NewString,
		answers: map[int]int{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start moves a fresh controller to the first question of a new set.
func (c *Controller) Start(count int, d quiz.Difficulty) error {
	if c.status != StatusNotStarted {
		return ErrAlreadyStarted
	}
	return c.Restart(count, d)
}

// Restart replaces the current set with a newly generated one and returns to
// the first question. On failure the previous state is kept.
func (c *Controller) Restart(count int, d quiz.Difficulty) error {
	set, err := c.gen.Generate(count, d)
	if err != nil {
		return fmt.Errorf("generate quiz set: %w", err)
	}

	c.id = c.newID()
	c.status = StatusInProgress
	c.count = count
	c.difficulty = d
	c.set = set
	c.current = 0
	c.answers = map[int]int{}
	c.score = 0

	logrus.Infof("Session %s started: %d %s questions", c.id, set.Len(), d)
	return nil
}

// ChangeDifficulty restarts with the same question count at a new tier.
func (c *Controller) ChangeDifficulty(d quiz.Difficulty) error {
	count := c.count
	if count <= 0 {
		count = quiz.DefaultCount
	}
	return c.Restart(count, d)
}

// Next moves forward one question; it is a no-op on the last question.
// It does not require the current question to be answered.
func (c *Controller) Next() bool {
	if c.status != StatusInProgress || c.current >= c.set.Len()-1 {
		return false
	}
	c.current++
	logrus.Debugf("Session %s: moved to Q%d", c.id, c.current+1)
	return true
}

// Previous moves back one question; it is a no-op on the first question.
func (c *Controller) Previous() bool {
	if c.status != StatusInProgress || c.current == 0 {
		return false
	}
	c.current--
	logrus.Debugf("Session %s: moved to Q%d", c.id, c.current+1)
	return true
}

// GoTo jumps to the question at index, clamped to the set bounds.
func (c *Controller) GoTo(index int) {
	if c.status != StatusInProgress {
		return
	}
	c.current = max(0, min(index, c.set.Len()-1))
}

// Select records option for the current question and advances unless the
// current question is the last one. Re-selecting replaces the earlier choice.
func (c *Controller) Select(option int) error {
	if c.status != StatusInProgress {
		return ErrNotInProgress
	}
	item := c.set.Items[c.current]
	if option < 0 || option >= len(item.Options) {
		return fmt.Errorf("%w: %d", ErrOptionOutOfRange, option)
	}

	c.answers[c.current] = option
	logrus.Debugf("Session %s: Q%d selected option %d", c.id, c.current+1, option)

	c.Next()
	return nil
}

// Submit scores the session and completes it.
func (c *Controller) Submit() (int, error) {
	if c.status != StatusInProgress {
		return 0, ErrNotInProgress
	}
	c.score = quiz.ComputeScore(c.set, c.answers)
	c.status = StatusCompleted
	logrus.Infof("Session %s completed: %s", c.id, ScoreLine(c.score, c.set.Len()))
	return c.score, nil
}

func (c *Controller) Status() Status { return c.status }

// Answers returns a copy of the selections keyed by question index.
func (c *Controller) Answers() map[int]int {
	return maps.Clone(c.answers)
}

// Set returns a copy of the current quiz set.
func (c *Controller) Set() quiz.QuizSet { return c.set.Clone() }

// ItemView is the render state of one question.
type ItemView struct {
	Index    int
	Prompt   string
	Options  []string
	Selected int
	Outcome  Outcome
	Answer   string
	Feedback string
}

func (iv ItemView) Answered() bool { return iv.Selected != NoSelection }

// View is a snapshot of everything a rendering layer needs.
type View struct {
	SessionID     string
	Status        Status
	Difficulty    quiz.Difficulty
	Current       int
	Total         int
	Answered      int
	Progress      float64
	Score         int
	Items         []ItemView
	PrevEnabled   bool
	NextEnabled   bool
	SubmitEnabled bool
}

// CurrentItem returns the item under the cursor.
func (v View) CurrentItem() (ItemView, bool) {
	if v.Current < 0 || v.Current >= len(v.Items) {
		return ItemView{}, false
	}
	return v.Items[v.Current], true
}

// View derives the render snapshot. The correct answer and outcome are only
// revealed after completion.
func (c *Controller) View() View {
	v := View{
		SessionID:  c.id,
		Status:     c.status,
		Difficulty: c.difficulty,
		Current:    c.current,
		Total:      c.set.Len(),
		Score:      c.score,
	}
	if c.status == StatusNotStarted {
		return v
	}

	v.Items = make([]ItemView, 0, v.Total)
	for i, item := range c.set.Items {
		iv := ItemView{
			Index:    i,
			Prompt:   item.Prompt,
			Options:  slices.Clone(item.Options),
			Selected: NoSelection,
		}
		if sel, ok := c.answers[i]; ok {
			iv.Selected = sel
			v.Answered++
		}
		if c.status == StatusCompleted {
			iv.Answer = item.Answer()
			switch {
			case !iv.Answered():
				iv.Outcome = OutcomeUnanswered
			case item.IsCorrect(iv.Selected):
				iv.Outcome = OutcomeCorrect
			default:
				iv.Outcome = OutcomeIncorrect
			}
			iv.Feedback = Feedback(iv.Outcome, iv.Answer)
		}
		v.Items = append(v.Items, iv)
	}

	if v.Total > 0 {
		v.Progress = float64(v.Answered) / float64(v.Total) * 100
	}

	if c.status == StatusInProgress {
		_, answered := c.answers[c.current]
		v.PrevEnabled = c.current > 0
		v.NextEnabled = c.current < v.Total-1 && answered
		v.SubmitEnabled = true
	}
	return v
}
