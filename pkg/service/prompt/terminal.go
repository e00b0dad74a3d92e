// Package prompt provides answer sources for the collection phase:
// an interactive terminal prompt and a static source fed from a
// pre-supplied answer set. Both implement interfaces.AnswerSource and
// never validate input themselves.
package prompt

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

var (
	questionColor = color.New(color.FgCyan, color.Bold)
	hintColor     = color.New(color.FgYellow)
)

// Terminal asks questions on an interactive terminal, one line per
// answer.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	vendor string
}

var _ interfaces.AnswerSource = &Terminal{}

// TerminalOption configures a Terminal
type TerminalOption func(*Terminal)

// WithVendorName presets the vendor name so the terminal does not ask
// for it
func WithVendorName(name string) TerminalOption {
	return func(t *Terminal) {
		t.vendor = name
	}
}

// NewTerminal creates a terminal answer source reading from in and
// writing prompts to out
func NewTerminal(in io.Reader, out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// VendorName asks for the vendor under assessment unless preset
func (t *Terminal) VendorName(ctx context.Context) (string, error) {
	if t.vendor != "" {
		return t.vendor, nil
	}

	if _, err := io.WriteString(t.out, "Enter the name of the vendor being assessed: "); err != nil {
		return "", goerr.Wrap(err, "failed to write vendor prompt")
	}
	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", goerr.New("vendor name cannot be empty")
	}
	t.vendor = line
	return line, nil
}

// Answer prints the question and reads one line. On re-asks after a
// validation failure it prints a format hint first.
func (t *Terminal) Answer(ctx context.Context, q *model.Question, attempt int) (string, error) {
	if attempt > 0 {
		if _, err := hintColor.Fprintf(t.out, "Invalid input. %s\n", formatHint(q.AnswerType)); err != nil {
			return "", goerr.Wrap(err, "failed to write hint")
		}
	} else {
		if _, err := questionColor.Fprintf(t.out, "\n%s: %s (%s)\n", q.ID, q.Text, q.AnswerType); err != nil {
			return "", goerr.Wrap(err, "failed to write question")
		}
	}

	if _, err := io.WriteString(t.out, "Your answer: "); err != nil {
		return "", goerr.Wrap(err, "failed to write answer prompt")
	}
	return t.readLine()
}

// Interactive always returns true for a terminal
func (t *Terminal) Interactive() bool {
	return true
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", goerr.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}

func formatHint(answerType types.AnswerType) string {
	switch answerType {
	case types.AnswerTypeYesNo:
		return "Please enter 'yes' or 'no'."
	case types.AnswerTypeScore1to5:
		return "Please enter a number between 1 and 5."
	default:
		return "Input cannot be empty."
	}
}
