// Package prompt reads line-oriented answers from an interactive user.
//
// Every question loops until the answer is acceptable; there is no retry
// limit. Running out of input is the only way a question fails, reported
// as ErrNoInput so callers can stop instead of spinning on EOF.
//
// # Styling
//
// Questions are rendered bold cyan and rejection messages yellow through a
// lipgloss renderer bound to the output writer, so redirected output stays
// plain. Leading and trailing whitespace of a message is written verbatim;
// only the text between is styled.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrNoInput is returned when the input stream ends before an answer.
var ErrNoInput = errors.New("no more input")

// Rule is the separator printed between report sections.
var Rule = strings.Repeat("-", 40)

// Option configures a Prompter.
type Option func(*Prompter)

// Plain disables styling regardless of the output's capabilities.
func Plain() Option {
	return func(p *Prompter) { p.plain = true }
}

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	plain bool

	question lipgloss.Style
	warning  lipgloss.Style
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	r := lipgloss.NewRenderer(out)
	p := &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		question: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		warning:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Out returns the writer answers are echoed against.
func (p *Prompter) Out() io.Writer { return p.out }

// Say writes msg followed by a newline.
func (p *Prompter) Say(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Warn writes a rejection message followed by a newline.
func (p *Prompter) Warn(msg string) {
	fmt.Fprintln(p.out, p.render(p.warning, msg))
}

// PrintRule writes the 40-dash separator.
func (p *Prompter) PrintRule() {
	fmt.Fprintln(p.out, Rule)
}

// Ask writes question exactly as given and returns the next line without
// its terminator. Nothing else is stripped.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, p.render(p.question, question))

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimTerminator(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return trimTerminator(line), nil
}

// Choose asks until parse accepts the answer, printing invalid after each
// rejection.
func (p *Prompter) Choose(question, invalid string, parse func(string) (string, bool)) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if v, ok := parse(answer); ok {
			return v, nil
		}
		p.Warn(invalid)
	}
}

// YesNo asks until the lower-cased, trimmed answer is "yes" or "no".
func (p *Prompter) YesNo(question, invalid string) (bool, error) {
	answer, err := p.Choose(question, invalid, parseYesNo)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

func parseYesNo(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "yes" || s == "no" {
		return s, true
	}
	return "", false
}

// render styles the text of msg, keeping surrounding whitespace as is.
func (p *Prompter) render(style lipgloss.Style, msg string) string {
	if p.plain {
		return msg
	}
	core := strings.TrimSpace(msg)
	if core == "" {
		return msg
	}
	start := strings.Index(msg, core)
	return msg[:start] + style.Render(core) + msg[start+len(core):]
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
