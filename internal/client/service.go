package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quizdoc/internal/history"
	"quizdoc/internal/opentdb"
	"quizdoc/internal/quiz"
)

const defaultHTTPTimeout = 5 * time.Second

// TriviaSource supplies questions for the editor's import command.
type TriviaSource interface {
	FetchQuestions(ctx context.Context, amount int) ([]opentdb.RawQuestion, error)
}

type Config struct {
	ServerURL   string
	HTTPTimeout time.Duration
	NoColor     bool

	// Gateway replaces the HTTP client built from ServerURL.
	Gateway quiz.Gateway
	// History defaults to an in-memory log that is lost on exit.
	History *history.Log
	// Trivia defaults to OpenTriviaDB.
	Trivia TriviaSource
	Now    func() time.Time
}

type session struct {
	reader    *bufio.Reader
	out       io.Writer
	gateway   quiz.Gateway
	history   *history.Log
	trivia    TriviaSource
	styles    styles
	now       func() time.Time
	serverURL string
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = defaultServer
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	s := &session{
		reader:    bufio.NewReader(in),
		out:       out,
		gateway:   cfg.Gateway,
		history:   cfg.History,
		trivia:    cfg.Trivia,
		styles:    styles{noColor: cfg.NoColor},
		now:       cfg.Now,
		serverURL: serverURL,
	}
	if s.gateway == nil {
		s.gateway = NewHTTPClient(serverURL, &http.Client{Timeout: timeout})
	}
	if s.history == nil {
		s.history = history.NewLog(history.NewMemoryStore(), "")
	}
	if s.trivia == nil {
		s.trivia = opentdb.NewClient(&http.Client{Timeout: timeout})
	}
	if s.now == nil {
		s.now = time.Now
	}

	fmt.Fprintf(out, "quiz\nserver=%s\n\n", serverURL)
	printHelp(out)

	for {
		line, err := s.prompt("\n> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		switch strings.ToLower(args[0]) {
		case "help":
			printHelp(out)
		case "exit":
			return nil
		case "take":
			if err := s.runTake(ctx); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "edit":
			if err := s.runEdit(ctx); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "history":
			records, err := s.history.List(ctx)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			printHistory(out, s.styles, records)
		case "clear-history":
			if err := s.history.Clear(ctx); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "History cleared.")
		default:
			fmt.Fprintln(out, "unknown command. type 'help' for usage.")
		}
	}
}

// prompt prints p and returns the next trimmed input line. A final line
// without a newline is still returned; io.EOF comes only when nothing is left.
func (s *session) prompt(p string) (string, error) {
	fmt.Fprint(s.out, p)
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *session) describeError(err error) error {
	if errors.Is(err, ErrServiceUnavailable) {
		return fmt.Errorf("quiz service unavailable at %s", s.serverURL)
	}
	return err
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  take            take the quiz")
	fmt.Fprintln(out, "  edit            edit the quiz")
	fmt.Fprintln(out, "  history         show past attempts")
	fmt.Fprintln(out, "  clear-history")
	fmt.Fprintln(out, "  exit")
}
