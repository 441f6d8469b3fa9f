package quiz

import (
	"fmt"
	"strings"
)

const msgNoQuestions = "quiz must contain at least one question"

// Issue is one structural problem found in a quiz. Question and Answer are
// 1-based; zero means the issue is not tied to that level.
type Issue struct {
	Question int    `json:"question,omitempty"`
	Answer   int    `json:"answer,omitempty"`
	Message  string `json:"message"`
}

// ValidationError reports every issue found by Validate, in quiz order.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid quiz"
	}
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Message)
	}
	return strings.Join(messages, "; ")
}

// First returns the message of the first issue, which is what the editor shows.
func (e *ValidationError) First() string {
	if len(e.Issues) == 0 {
		return e.Error()
	}
	return e.Issues[0].Message
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(question, answer int, message string) {
	c.issues = append(c.issues, Issue{Question: question, Answer: answer, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

func errNoQuestions() error {
	return &ValidationError{Issues: []Issue{{Message: msgNoQuestions}}}
}

// Validate checks q against the structural invariants that must hold before
// it is persisted. Every question is checked; each one reports only its first
// failing rule.
func Validate(q Quiz) error {
	collector := &issueCollector{}
	if len(q.Questions) == 0 {
		collector.add(0, 0, msgNoQuestions)
		return collector.result()
	}

	for idx, question := range q.Questions {
		validateQuestion(idx+1, question, collector)
	}
	return collector.result()
}

func validateQuestion(number int, question Question, collector *issueCollector) {
	if strings.TrimSpace(question.Text) == "" {
		collector.add(number, 0, fmt.Sprintf("question %d: text must not be empty", number))
		return
	}
	if len(question.Answers) < 2 {
		collector.add(number, 0, fmt.Sprintf("question %d: must have at least two answer options", number))
		return
	}
	for idx, answer := range question.Answers {
		if strings.TrimSpace(answer.Text) == "" {
			collector.add(number, idx+1, fmt.Sprintf("question %d, answer %d: text must not be empty", number, idx+1))
			return
		}
	}
	if question.correctCount() == 0 {
		collector.add(number, 0, fmt.Sprintf("question %d: must have at least one correct answer", number))
	}
}
