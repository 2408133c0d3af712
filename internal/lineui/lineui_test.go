package lineui_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/Anthya1104/coercion-quiz/internal/lineui"
	"github.com/Anthya1104/coercion-quiz/internal/quiz"
	"github.com/Anthya1104/coercion-quiz/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedSession(t *testing.T, count int) *session.Controller {
	t.Helper()
	ctrl := session.New(quiz.NewGenerator(quiz.NewRand(8)))
	require.NoError(t, ctrl.Start(count, quiz.Medium))
	return ctrl
}

func TestPlayScoresAnswers(t *testing.T) {
	ctrl := startedSession(t, 3)
	set := ctrl.Set()
	wrong := (set.Items[1].CorrectIndex + 1) % quiz.OptionCount

	// correct, wrong, skip
	input := fmt.Sprintf("%d\n%d\n\n", set.Items[0].CorrectIndex+1, wrong+1)
	var out bytes.Buffer
	require.NoError(t, lineui.Play(ctrl, strings.NewReader(input), &out))

	assert.Equal(t, session.StatusCompleted, ctrl.Status())
	text := out.String()
	assert.Contains(t, text, "Your score: 1 out of 3")
	assert.Contains(t, text, "[correct] Correct! The answer is")
	assert.Contains(t, text, "[incorrect] Incorrect. The correct answer is")
	assert.Contains(t, text, "[unanswered] Not answered. The correct answer is")
	assert.Contains(t, text, "[33%] 2. ")
}

func TestPlaySubmitsOnEOF(t *testing.T) {
	ctrl := startedSession(t, 2)
	var out bytes.Buffer
	require.NoError(t, lineui.Play(ctrl, strings.NewReader(""), &out))
	assert.Equal(t, session.StatusCompleted, ctrl.Status())
	assert.Contains(t, out.String(), "Your score: 0 out of 2")
}

func TestPlayAbort(t *testing.T) {
	ctrl := startedSession(t, 2)
	var out bytes.Buffer
	require.NoError(t, lineui.Play(ctrl, strings.NewReader("q\n"), &out))
	assert.Equal(t, session.StatusInProgress, ctrl.Status())
	assert.Contains(t, out.String(), "Quiz aborted.")
}

func TestPlayRejectsBadInput(t *testing.T) {
	ctrl := startedSession(t, 2)
	var out bytes.Buffer
	require.NoError(t, lineui.Play(ctrl, strings.NewReader("x\n9\np\ns\n"), &out))

	text := out.String()
	assert.Contains(t, text, `Unknown input "x"`)
	assert.Contains(t, text, "Choose 1-4")
	assert.Equal(t, session.StatusCompleted, ctrl.Status())
	assert.Empty(t, ctrl.Answers())
}
