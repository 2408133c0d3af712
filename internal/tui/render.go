package tui

import (
	"fmt"
	"strings"

	"github.com/Anthya1104/coercion-quiz/internal/session"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title      lipgloss.Style
	prompt     lipgloss.Style
	selected   lipgloss.Style
	muted      lipgloss.Style
	correct    lipgloss.Style
	incorrect  lipgloss.Style
	unanswered lipgloss.Style
	errText    lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title:      plain.Bold(true),
			prompt:     plain,
			selected:   plain.Bold(true),
			muted:      plain,
			correct:    plain,
			incorrect:  plain,
			unanswered: plain,
			errText:    plain,
		}
	}
	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		prompt:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		correct:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34")),
		incorrect:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		unanswered: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178")),
		errText:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
}

// View renders the current question, or the results once submitted.
func (m Model) View() string {
	v := m.ctrl.View()
	header := m.styles.title.Render(fmt.Sprintf("Quiz [%s]", v.Difficulty))
	bar := m.progress.ViewAs(v.Progress / 100)

	var body string
	switch v.Status {
	case session.StatusCompleted:
		body = m.renderResults(v)
	case session.StatusInProgress:
		body = m.renderQuestion(v)
	default:
		body = m.styles.muted.Render("No quiz running.")
	}

	parts := []string{header, bar, body, m.renderFooter(v)}
	if m.lastErr != "" {
		parts = append(parts, m.styles.errText.Render(m.lastErr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderQuestion(v session.View) string {
	item, ok := v.CurrentItem()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.prompt.Render(fmt.Sprintf("%d. %s", item.Index+1, item.Prompt)))
	b.WriteString("\n\n")
	for i, opt := range item.Options {
		line := fmt.Sprintf("  %d) %s", i+1, opt)
		if i == item.Selected {
			line = m.styles.selected.Render(fmt.Sprintf("> %d) %s", i+1, opt))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderResults(v session.View) string {
	var b strings.Builder
	for _, item := range v.Items {
		b.WriteString(fmt.Sprintf("%d. %s\n", item.Index+1, item.Prompt))
		b.WriteString("   ")
		b.WriteString(m.outcomeStyle(item.Outcome).Render(item.Feedback))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.title.Render(session.ScoreLine(v.Score, v.Total)))
	return b.String()
}

func (m Model) outcomeStyle(o session.Outcome) lipgloss.Style {
	switch o {
	case session.OutcomeCorrect:
		return m.styles.correct
	case session.OutcomeIncorrect:
		return m.styles.incorrect
	default:
		return m.styles.unanswered
	}
}

func (m Model) renderFooter(v session.View) string {
	if v.Status == session.StatusCompleted {
		return m.styles.muted.Render("r restart • tab change difficulty • q quit")
	}
	keys := []string{"1-4 answer"}
	if v.PrevEnabled {
		keys = append(keys, "← prev")
	}
	if v.NextEnabled {
		keys = append(keys, "→ next")
	}
	keys = append(keys, "enter submit", "tab difficulty", "q quit")
	return m.styles.muted.Render(fmt.Sprintf("Q%d/%d • %s", v.Current+1, v.Total, strings.Join(keys, " • ")))
}
