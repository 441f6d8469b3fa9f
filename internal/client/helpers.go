package client

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const maxLetters = 26

// parseAnswer accepts a letter for the first 26 answers or a 1-based number
// for any answer.
func parseAnswer(input string, answerCount int) (int, bool) {
	input = strings.TrimSpace(input)
	if value, err := strconv.Atoi(input); err == nil {
		if value < 1 || value > answerCount {
			return -1, false
		}
		return value - 1, true
	}
	return parseLetter(input, min(answerCount, maxLetters))
}

// answerRange describes the accepted input for a question with answerCount
// answers.
func answerRange(answerCount int) string {
	if answerCount <= maxLetters {
		return "A-" + answerLabel(answerCount-1)
	}
	return fmt.Sprintf("A-Z or 1-%d", answerCount)
}

// parseLetter maps "a"/"A" to 0 and so on, bounded by answerCount.
func parseLetter(input string, answerCount int) (int, bool) {
	if answerCount < 1 {
		return -1, false
	}
	answer := strings.ToUpper(strings.TrimSpace(input))
	if len(answer) != 1 {
		return -1, false
	}
	ai := int(answer[0]) - 'A'
	if ai < 0 || ai >= answerCount {
		return -1, false
	}
	return ai, true
}

// parsePositions reads n 1-based positions from the front of args and returns
// them 0-based, along with the remaining text. Answer positions also accept a
// letter.
func parsePositions(args string, n int) ([]int, string, error) {
	idx := make([]int, 0, n)
	rest := strings.TrimSpace(args)
	for i := 0; i < n; i++ {
		var token string
		token, rest, _ = strings.Cut(rest, " ")
		rest = strings.TrimSpace(rest)
		if token == "" {
			return nil, "", errors.New("missing position")
		}

		pos, err := parsePosition(token, i > 0)
		if err != nil {
			return nil, "", err
		}
		idx = append(idx, pos)
	}
	return idx, rest, nil
}

func parsePosition(token string, allowLetter bool) (int, error) {
	if value, err := strconv.Atoi(token); err == nil {
		if value <= 0 {
			return 0, fmt.Errorf("position must be positive: %d", value)
		}
		return value - 1, nil
	}
	if allowLetter {
		if ai, ok := parseLetter(token, maxLetters); ok {
			return ai, nil
		}
	}
	return 0, fmt.Errorf("invalid position %q", token)
}

func parsePositiveInt(value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, errors.New("must be a positive integer")
	}
	return parsed, nil
}

func (s *session) promptYesNo(p string) (bool, error) {
	for {
		line, err := s.prompt(p)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(s.out, "Please answer yes or no.")
		}
	}
}
