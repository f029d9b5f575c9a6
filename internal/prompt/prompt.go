// Package prompt reads the single line of task entries from a terminal or
// pipe.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Banner is printed before the prompt so the user knows the expected format.
var Banner = []string{
	"--- Gantt Chart Generator (Single-Paste Mode) ---",
	"Format: Task Name, YYYY-MM-DD, YYYY-MM-DD",
	"Separate multiple tasks with a semicolon ';'",
	strings.Repeat("-", 50),
}

// Label is shown right before reading input.
const Label = "Paste tasks here and press ENTER: "

// WriteBanner prints the banner lines to w.
func WriteBanner(w io.Writer) error {
	for _, line := range Banner {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ReadLine writes label to w and reads one line from r. The trailing newline
// and surrounding whitespace are removed. Reaching EOF without a newline is
// not an error; the text read so far is returned.
func ReadLine(w io.Writer, r io.Reader, label string) (string, error) {
	if label != "" {
		if _, err := io.WriteString(w, label); err != nil {
			return "", err
		}
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
