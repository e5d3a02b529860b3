package eventrag

import (
	"errors"
	"strings"
)

var (
	errTooFewLines  = errors.New("expected two non-empty lines")
	errMissingColon = errors.New("line is missing its label colon")
)

// parseTwoLine splits a generation response into the labeled question and
// answer lines. The contract is structural only: two non-empty lines, each
// with a label terminated by the first colon. Label text itself is not
// checked.
func parseTwoLine(response string) (question, answer string, err error) {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 2 {
		return "", "", errTooFewLines
	}

	question, err = afterColon(lines[0])
	if err != nil {
		return "", "", err
	}
	answer, err = afterColon(lines[1])
	if err != nil {
		return "", "", err
	}
	return question, answer, nil
}

func afterColon(line string) (string, error) {
	_, rest, found := strings.Cut(line, ":")
	if !found {
		return "", errMissingColon
	}
	return strings.TrimSpace(rest), nil
}
