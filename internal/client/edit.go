package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quizdoc/internal/quiz"
)

const defaultImportCount = 5

func (s *session) runEdit(ctx context.Context) error {
	current, err := s.gateway.LoadQuiz(ctx)
	if err != nil {
		return s.describeError(err)
	}
	draft := quiz.NewDraft(current)

	printEditHelp(s.out)
	printDraft(s.out, s.styles, draft.Quiz())

	for {
		line, err := s.prompt("\nedit> ")
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		command, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		switch strings.ToLower(command) {
		case "help":
			printEditHelp(s.out)
		case "show":
			printDraft(s.out, s.styles, draft.Quiz())
		case "add-question":
			draft.AddQuestion()
			fmt.Fprintf(s.out, "Added question %d.\n", draft.QuestionCount())
		case "rm-question":
			s.applyEdit(rest, 1, "rm-question <q>", func(idx []int, _ string) error {
				return draft.RemoveQuestion(idx[0])
			})
		case "add-answer":
			s.applyEdit(rest, 1, "add-answer <q>", func(idx []int, _ string) error {
				return draft.AddAnswer(idx[0])
			})
		case "rm-answer":
			s.applyEdit(rest, 2, "rm-answer <q> <a>", func(idx []int, _ string) error {
				return draft.RemoveAnswer(idx[0], idx[1])
			})
		case "toggle":
			s.applyEdit(rest, 2, "toggle <q> <a>", func(idx []int, _ string) error {
				return draft.ToggleCorrect(idx[0], idx[1])
			})
		case "text":
			s.applyEdit(rest, 1, "text <q> <text>", func(idx []int, text string) error {
				return draft.SetQuestionText(idx[0], text)
			})
		case "answer-text":
			s.applyEdit(rest, 2, "answer-text <q> <a> <text>", func(idx []int, text string) error {
				return draft.SetAnswerText(idx[0], idx[1], text)
			})
		case "import":
			s.importTrivia(ctx, draft, rest)
		case "save":
			s.saveDraft(ctx, draft)
		case "reload":
			fresh, err := s.gateway.LoadQuiz(ctx)
			if err != nil {
				fmt.Fprintf(s.out, "error: %v\n", s.describeError(err))
				continue
			}
			draft = quiz.NewDraft(fresh)
			fmt.Fprintln(s.out, "Reloaded; unsaved changes discarded.")
		case "done":
			return nil
		default:
			fmt.Fprintln(s.out, "unknown editor command. type 'help' for usage.")
		}
	}
}

// applyEdit parses n leading positions (1-based question, then answer number
// or letter) and hands the rest of the line to edit as free text.
func (s *session) applyEdit(args string, n int, usage string, edit func(idx []int, text string) error) {
	idx, text, err := parsePositions(args, n)
	if err != nil {
		fmt.Fprintf(s.out, "usage: %s\n", usage)
		return
	}
	if err := edit(idx, text); err != nil {
		s.printEditError(err)
		return
	}
	fmt.Fprintln(s.out, "OK.")
}

func (s *session) printEditError(err error) {
	var guardErr *quiz.GuardError
	switch {
	case errors.As(err, &guardErr):
		fmt.Fprintf(s.out, "%s\n", s.styles.bad("Not allowed: "+guardErr.Error()))
	case errors.Is(err, quiz.ErrNoSuchQuestion), errors.Is(err, quiz.ErrNoSuchAnswer):
		fmt.Fprintf(s.out, "%v\n", err)
	default:
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

func (s *session) importTrivia(ctx context.Context, draft *quiz.Draft, args string) {
	amount := defaultImportCount
	if args != "" {
		parsed, err := parsePositiveInt(args)
		if err != nil {
			fmt.Fprintln(s.out, "usage: import [n]")
			return
		}
		amount = parsed
	}

	raw, err := s.trivia.FetchQuestions(ctx, amount)
	if err != nil {
		fmt.Fprintf(s.out, "import failed: %v\n", err)
		return
	}
	questions := quiz.FromTrivia(raw)
	draft.AppendQuestions(questions...)
	fmt.Fprintf(s.out, "Imported %d questions.\n", len(questions))
}

func (s *session) saveDraft(ctx context.Context, draft *quiz.Draft) {
	_, err := draft.Save(ctx, s.gateway)
	if err == nil {
		fmt.Fprintln(s.out, s.styles.good("Saved."))
		return
	}

	var validationErr *quiz.ValidationError
	var apiErr *APIError
	switch {
	case errors.As(err, &validationErr):
		fmt.Fprintf(s.out, "%s\n", s.styles.bad("Cannot save: "+validationErr.First()))
	case errors.As(err, &apiErr):
		fmt.Fprintf(s.out, "Save rejected: %s\n", apiErr.Message)
	default:
		fmt.Fprintf(s.out, "Save failed: %v\nYour changes are kept; try again.\n", s.describeError(err))
	}
}

func printEditHelp(out io.Writer) {
	fmt.Fprintln(out, "Editor commands:")
	fmt.Fprintln(out, "  show")
	fmt.Fprintln(out, "  add-question")
	fmt.Fprintln(out, "  rm-question <q>")
	fmt.Fprintln(out, "  add-answer <q>")
	fmt.Fprintln(out, "  rm-answer <q> <a>")
	fmt.Fprintln(out, "  text <q> <text>")
	fmt.Fprintln(out, "  answer-text <q> <a> <text>")
	fmt.Fprintln(out, "  toggle <q> <a>       mark or unmark a correct answer")
	fmt.Fprintln(out, "  import [n]           append n questions from OpenTriviaDB")
	fmt.Fprintln(out, "  save")
	fmt.Fprintln(out, "  reload               discard unsaved changes")
	fmt.Fprintln(out, "  done")
}
