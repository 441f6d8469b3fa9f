package client

import (
	"context"
	"errors"
	"fmt"

	"quizdoc/internal/history"
	"quizdoc/internal/quiz"
)

func (s *session) runTake(ctx context.Context) error {
	current, err := s.gateway.LoadQuiz(ctx)
	if err != nil {
		return s.describeError(err)
	}
	attempt, err := quiz.NewAttempt(current)
	if err != nil {
		return err
	}

	for {
		done, err := s.playAttempt(attempt)
		if err != nil || !done {
			return err
		}

		result := attempt.Result()
		printResult(s.out, s.styles, result)
		if err := s.history.Append(ctx, history.NewRecord(result, s.now())); err != nil {
			fmt.Fprintf(s.out, "could not save result: %v\n", err)
		}

		again, err := s.promptYesNo("Take the quiz again? (yes/no): ")
		if err != nil || !again {
			return err
		}
		attempt.Restart()
	}
}

// playAttempt reads answers until the attempt completes or the user quits.
func (s *session) playAttempt(attempt *quiz.Attempt) (bool, error) {
	printTakeQuestion(s.out, s.styles, attempt)
	for {
		_, question := attempt.Current()
		line, err := s.prompt(takePrompt(len(question.Answers)))
		if err != nil {
			return false, err
		}

		switch {
		case line == "quit":
			fmt.Fprintln(s.out, "Attempt abandoned.")
			return false, nil
		case line == "<":
			attempt.Prev()
			printTakeQuestion(s.out, s.styles, attempt)
			continue
		case line == "":
			// Enter keeps the current selection and moves on.
		default:
			if len(question.Answers) == 0 {
				fmt.Fprintln(s.out, "This question has no answers. Press Enter to continue.")
				continue
			}
			ai, ok := parseAnswer(line, len(question.Answers))
			if !ok {
				fmt.Fprintf(s.out, "Invalid input. Please enter %s.\n", answerRange(len(question.Answers)))
				continue
			}
			if err := attempt.Select(ai); err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
				continue
			}
		}

		completed, err := attempt.Next()
		if errors.Is(err, quiz.ErrNoSelection) {
			fmt.Fprintln(s.out, "Select an answer first.")
			continue
		}
		if err != nil {
			return false, err
		}
		if completed {
			return true, nil
		}
		printTakeQuestion(s.out, s.styles, attempt)
	}
}

func takePrompt(answerCount int) string {
	if answerCount == 0 {
		return "Enter to continue (< back, quit): "
	}
	return fmt.Sprintf("Answer (%s, < back, quit): ", answerRange(answerCount))
}
