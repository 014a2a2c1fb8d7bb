// Package console implements the judge I/O port over a line-oriented
// reader/writer pair, typically stdin and stdout.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ahrav/pairwise/internal/ports"
)

var _ ports.JudgeIO = (*Console)(nil)

// Console reads one response line per prompt from an io.Reader and
// writes prompts and progress text to an io.Writer. End of input maps
// to ports.ErrInputExhausted, which the engine treats as an abort for
// the phase in progress.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console over the given reader and writer.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt writes the prompt text, reads one line, and returns it with
// surrounding whitespace stripped. A prompt waits indefinitely; the
// context is only consulted for cancellation between reads.
func (c *Console) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, text)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			// A final unterminated line still counts as a response.
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, nil
			}
			return "", ports.ErrInputExhausted
		}
		return "", fmt.Errorf("read response: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Say writes informational text followed by a newline.
func (c *Console) Say(text string) {
	fmt.Fprintln(c.out, text)
}
