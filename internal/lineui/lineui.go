package lineui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Anthya1104/coercion-quiz/internal/session"
	"github.com/sirupsen/logrus"
)

// Play drives a started session from line-oriented input until it is
// submitted, aborted or the input ends. Each line is one command:
//
//	1-4   choose an option (submits after the last question)
//	blank skip to the next question (submits after the last question)
//	p     previous question
//	s     submit now
//	q     abort without scoring
func Play(ctrl *session.Controller, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for ctrl.Status() == session.StatusInProgress {
		v := ctrl.View()
		item, ok := v.CurrentItem()
		if !ok {
			break
		}
		writeQuestion(out, v, item)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			break
		}
		last := v.Current == v.Total-1
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "q":
			fmt.Fprintln(out, "Quiz aborted.")
			return nil
		case "s":
			return submit(ctrl, out)
		case "p":
			ctrl.Previous()
		case "":
			if last {
				return submit(ctrl, out)
			}
			ctrl.Next()
		default:
			n, err := strconv.Atoi(cmd)
			if err != nil {
				fmt.Fprintf(out, "Unknown input %q\n", cmd)
				continue
			}
			if err := ctrl.Select(n - 1); err != nil {
				logrus.Debugf("Rejected selection %d: %v", n, err)
				fmt.Fprintf(out, "Choose 1-%d\n", len(item.Options))
				continue
			}
			if last {
				return submit(ctrl, out)
			}
		}
	}

	if ctrl.Status() == session.StatusInProgress {
		return submit(ctrl, out)
	}
	return nil
}

func writeQuestion(out io.Writer, v session.View, item session.ItemView) {
	fmt.Fprintf(out, "\n[%.0f%%] %d. %s\n", v.Progress, item.Index+1, item.Prompt)
	for i, opt := range item.Options {
		marker := " "
		if i == item.Selected {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %d) %s\n", marker, i+1, opt)
	}
	fmt.Fprint(out, "> ")
}

func submit(ctrl *session.Controller, out io.Writer) error {
	if _, err := ctrl.Submit(); err != nil {
		return err
	}
	WriteResults(out, ctrl.View())
	return nil
}

// WriteResults prints per-question feedback followed by the score line.
func WriteResults(out io.Writer, v session.View) {
	fmt.Fprintln(out)
	for _, item := range v.Items {
		fmt.Fprintf(out, "%d. %s\n   [%s] %s\n", item.Index+1, item.Prompt, item.Outcome, item.Feedback)
	}
	fmt.Fprintln(out, session.ScoreLine(v.Score, v.Total))
}
