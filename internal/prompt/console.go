// Package prompt reads validated values from a line-oriented console.
//
// RequestValidInput asks until a line parses and passes every rule.
// RequestValidInputs does the same repeatedly, collecting values until the
// user types a sentinel such as "done". Neither gives up on bad input; they
// return early only when the input runs out.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads lines from an input stream and writes prompts and messages to
// an output stream.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole wraps in and out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Out returns the console's output stream.
func (c *Console) Out() io.Writer { return c.out }

// ReadLine writes prompt without a newline and returns the next input line
// with its line ending removed. Lines may be of any length. A final line
// without a newline is still returned. Returns io.EOF when no input is left.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		c.Print(prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Print writes s as is.
func (c *Console) Print(s string) {
	_, _ = io.WriteString(c.out, s)
}

// Println writes s followed by a newline.
func (c *Console) Println(s string) {
	_, _ = io.WriteString(c.out, s+"\n")
}
