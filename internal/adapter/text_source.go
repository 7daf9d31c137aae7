package adapter

import (
	"fmt"
	"io"
	"os"
	"strings"

	m "bombe.dev/pkg/bombe/internal/model"
)

// TextSource reads message text for the commands that take it.
type TextSource interface {
	// Text joins args when there are any, otherwise reads file when it is
	// set, otherwise reads the whole of standard input.
	Text(args []string, file m.Path) (string, error)
}

// LocalTextSource reads text from arguments, files or a reader.
type LocalTextSource struct {
	stdin io.Reader
}

// NewLocalTextSource constructs a LocalTextSource reading from stdin.
func NewLocalTextSource(stdin io.Reader) *LocalTextSource {
	if stdin == nil {
		stdin = os.Stdin
	}

	return &LocalTextSource{stdin: stdin}
}

// Text implements TextSource.
func (s *LocalTextSource) Text(args []string, file m.Path) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if file != "" {
		data, err := os.ReadFile(string(file))
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}

		return string(data), nil
	}

	data, err := io.ReadAll(s.stdin)
	if err != nil {
		return "", fmt.Errorf("read standard input: %w", err)
	}

	return string(data), nil
}
