package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdoc/internal/history"
	"quizdoc/internal/quiz"
)

const barWidth = 20

type styles struct {
	noColor bool
}

func (s styles) title(text string) string {
	if s.noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Render(text)
}

func (s styles) muted(text string) string {
	return s.stylize(text, lipgloss.Color("244"))
}

func (s styles) good(text string) string {
	return s.stylize(text, lipgloss.Color("42"))
}

func (s styles) bad(text string) string {
	return s.stylize(text, lipgloss.Color("196"))
}

func (s styles) stylize(text string, color lipgloss.Color) string {
	if s.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// score picks a color by how well the attempt went.
func (s styles) score(result quiz.Result, text string) string {
	switch percent := result.Percent(); {
	case percent >= 80:
		return s.good(text)
	case percent >= 50:
		return s.stylize(text, lipgloss.Color("220"))
	default:
		return s.bad(text)
	}
}

func progressBar(result quiz.Result) string {
	filled := 0
	if result.Total > 0 {
		filled = result.Correct * barWidth / result.Total
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// answerLabel is A-Z for the first 26 answers and the 1-based number after.
func answerLabel(ai int) string {
	if ai >= 0 && ai < maxLetters {
		return string(rune('A' + ai))
	}
	return strconv.Itoa(ai + 1)
}

func printTakeQuestion(out io.Writer, st styles, attempt *quiz.Attempt) {
	qi, question := attempt.Current()
	total := attempt.QuestionCount()
	selected := attempt.Selected()

	fmt.Fprintln(out)
	fmt.Fprintln(out, st.muted(fmt.Sprintf("Question %d of %d", qi+1, total)))
	fmt.Fprintln(out, st.title(question.Text))
	fmt.Fprintln(out)
	for ai, answer := range question.Answers {
		marker := " "
		if ai == selected {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s. %s\n", marker, answerLabel(ai), answer.Text)
	}
	if len(question.Answers) == 0 {
		fmt.Fprintln(out, st.muted("This question has no answers and counts as wrong."))
	}
	fmt.Fprintln(out)
}

func printResult(out io.Writer, st styles, result quiz.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, st.title("Quiz complete"))
	line := fmt.Sprintf("%d of %d correct (%d%%)", result.Correct, result.Total, result.Percent())
	fmt.Fprintln(out, st.score(result, line))
	fmt.Fprintln(out, progressBar(result))
}

func printDraft(out io.Writer, st styles, q quiz.Quiz) {
	for qi, question := range q.Questions {
		fmt.Fprintf(out, "%s %s\n", st.title(fmt.Sprintf("%d.", qi+1)), question.Text)
		for ai, answer := range question.Answers {
			flag := "[ ]"
			if answer.IsCorrect {
				flag = st.good("[x]")
			}
			fmt.Fprintf(out, "   %s. %s %s\n", answerLabel(ai), flag, answer.Text)
		}
	}
}

func printHistory(out io.Writer, st styles, records []history.Record) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No attempts yet.")
		return
	}

	fmt.Fprintln(out, st.title("Past attempts"))
	for _, rec := range records {
		result := rec.Result()
		fmt.Fprintf(out, "%s  Questions: %d  Correct: %d  %s %s\n",
			st.muted(rec.Date),
			rec.TotalQuestions,
			rec.CorrectAnswers,
			progressBar(result),
			st.score(result, fmt.Sprintf("%d%%", result.Percent())),
		)
	}
}
