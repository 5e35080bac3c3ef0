package console

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// errTooManyInvalid ends a choice read after repeated unparsable input.
var errTooManyInvalid = errors.New("too many invalid inputs")

// Prompter writes a one-line prompt and reads one line of reply.
type Prompter struct {
	r   *bufio.Reader
	out *Printer
}

// NewPrompter reads replies from r and writes prompts through out.
func NewPrompter(r io.Reader, out *Printer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), out: out}
}

// Prompt prints label and returns the next input line without its line
// terminator. io.EOF is returned only when no further input exists.
func (p *Prompter) Prompt(label string) (string, error) {
	p.out.Printf("%s", label)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Choice reads a menu choice, reprompting on non-integer input at most
// attempts times.
func (p *Prompter) Choice(attempts int) (int, error) {
	for i := 0; i < attempts; i++ {
		line, err := p.Prompt("Please make your choice: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		p.out.Error("Your input is invalid!")
	}
	return 0, errTooManyInvalid
}
