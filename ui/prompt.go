package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads form input line by line. Screens hold one so tests can
// feed scripted input.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter wraps an input stream and the writer prompts are printed to.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// ReadString prompts and returns one trimmed line.
func (p *Prompter) ReadString(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	if p.scanner.Scan() {
		return strings.TrimSpace(p.scanner.Text())
	}
	return ""
}

// ReadInt prompts until the input parses as an integer. Empty input returns
// zero.
func (p *Prompter) ReadInt(label string) int {
	for {
		raw := p.ReadString(label)
		if raw == "" {
			return 0
		}
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
		Warn(p.out, "Please enter a number.")
	}
}

// ReadChoice prompts for a menu selection.
func (p *Prompter) ReadChoice() string {
	fmt.Fprint(p.out, "\nEnter your choice: ")
	if p.scanner.Scan() {
		return strings.TrimSpace(p.scanner.Text())
	}
	return ""
}

// Confirm prompts for a y/n answer.
func (p *Prompter) Confirm(label string) bool {
	answer := p.ReadString(label + " (y/n)")
	return strings.EqualFold(answer, "y")
}

// ReadList prompts for a comma-separated list and splits it.
func (p *Prompter) ReadList(label string) []string {
	raw := p.ReadString(label + " (comma separated)")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
