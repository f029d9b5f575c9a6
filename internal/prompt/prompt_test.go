package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims whitespace", input: "  A, 2024-01-01, 2024-01-02  \n", want: "A, 2024-01-01, 2024-01-02"},
		{name: "stops at first newline", input: "first\nsecond\n", want: "first"},
		{name: "windows line ending", input: "first\r\n", want: "first"},
		{name: "eof without newline", input: "no newline", want: "no newline"},
		{name: "empty input", input: "", want: ""},
		{name: "blank line", input: "   \n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadLine(&out, strings.NewReader(tt.input), Label)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLine() = %q, want %q", got, tt.want)
			}
			if out.String() != Label {
				t.Errorf("expected label %q to be written, got %q", Label, out.String())
			}
		})
	}
}

type brokenReader struct{}

func (brokenReader) Read(p []byte) (int, error) {
	return 0, errors.New("terminal gone")
}

func TestReadLine_ReadError(t *testing.T) {
	var out bytes.Buffer
	_, err := ReadLine(&out, brokenReader{}, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "terminal gone") {
		t.Errorf("expected wrapped read error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no label output, got %q", out.String())
	}
}

func TestWriteBanner(t *testing.T) {
	var out bytes.Buffer
	if err := WriteBanner(&out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 banner lines, got %d", len(lines))
	}
	if lines[0] != "--- Gantt Chart Generator (Single-Paste Mode) ---" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[3] != strings.Repeat("-", 50) {
		t.Errorf("unexpected rule line: %q", lines[3])
	}
}
