// Package terminal implements the interactive prompt surface for a live
// terminal session.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/parley-sh/parley/pkg/domain"
)

// ContentRenderer transforms prompt text before display. It decouples the
// surface from any particular markup pipeline.
type ContentRenderer func(string) (string, error)

// Surface poses questions over plain line-oriented IO: numbered menus for
// select, y/n for confirm, free text for input. EOF on the reader is treated
// as an abort, matching ctrl-d at a shell.
type Surface struct {
	reader   *bufio.Reader
	writer   io.Writer
	renderer ContentRenderer
	profile  termenv.Profile
}

// Option configures the surface.
type Option func(*Surface)

// WithRenderer sets a prompt-text renderer (e.g. markdown to ANSI).
func WithRenderer(r ContentRenderer) Option {
	return func(s *Surface) {
		s.renderer = r
	}
}

// WithColorProfile overrides the detected color profile. Mostly for tests.
func WithColorProfile(p termenv.Profile) Option {
	return func(s *Surface) {
		s.profile = p
	}
}

// New creates a terminal surface. A nil reader or writer defaults to
// stdin/stdout. Colors degrade to plain text when stdout is not a TTY.
func New(r io.Reader, w io.Writer, opts ...Option) *Surface {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}

	s := &Surface{
		reader:  bufio.NewReader(r),
		writer:  w,
		profile: termenv.Ascii,
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.profile = termenv.ColorProfile()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask poses the question and blocks until the user answers or aborts.
func (s *Surface) Ask(ctx context.Context, q domain.Question) (domain.Answer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, err
	}

	switch q.Kind {
	case domain.KindInput:
		return s.askInput(q)
	case domain.KindSelect:
		return s.askSelect(q)
	case domain.KindConfirm:
		return s.askConfirm(q)
	}
	return domain.Answer{}, fmt.Errorf("%w: unsupported question kind %q", domain.ErrInvalidConfig, q.Kind)
}

func (s *Surface) askInput(q domain.Question) (domain.Answer, error) {
	hint := ""
	if q.Default != nil {
		hint = s.faint(" (" + q.Default.Text + ")")
	}
	fmt.Fprintf(s.writer, "%s %s%s ", s.mark(), s.prompt(q.Prompt), hint)

	line, aborted, err := s.readLine()
	if err != nil {
		return domain.Answer{}, err
	}
	if aborted {
		return domain.Answer{}, nil
	}
	if line == "" && q.Default != nil {
		return *q.Default, nil
	}
	return domain.StringAnswer(line), nil
}

func (s *Surface) askConfirm(q domain.Question) (domain.Answer, error) {
	hint := "[y/n]"
	if q.Default != nil {
		if q.Default.Confirmed {
			hint = "[Y/n]"
		} else {
			hint = "[y/N]"
		}
	}

	for {
		fmt.Fprintf(s.writer, "%s %s %s ", s.mark(), s.prompt(q.Prompt), s.faint(hint))

		line, aborted, err := s.readLine()
		if err != nil {
			return domain.Answer{}, err
		}
		if aborted {
			return domain.Answer{}, nil
		}

		switch strings.ToLower(line) {
		case "y", "yes", "true":
			return domain.BoolAnswer(true), nil
		case "n", "no", "false":
			return domain.BoolAnswer(false), nil
		case "":
			if q.Default != nil {
				return *q.Default, nil
			}
		}
		fmt.Fprintln(s.writer, "Please answer y or n.")
	}
}

func (s *Surface) askSelect(q domain.Question) (domain.Answer, error) {
	if len(q.Options) == 0 {
		// Nothing valid to pick; the session ends without an answer.
		return domain.Answer{}, nil
	}

	fmt.Fprintf(s.writer, "%s %s\n", s.mark(), s.prompt(q.Prompt))
	for i, opt := range q.Options {
		marker := " "
		if q.Default != nil && q.Default.Index == i {
			marker = ">"
		}
		fmt.Fprintf(s.writer, " %s %d) %s\n", marker, i+1, opt)
	}

	for {
		fmt.Fprintf(s.writer, "%s ", s.faint(fmt.Sprintf("Choose 1-%d:", len(q.Options))))

		line, aborted, err := s.readLine()
		if err != nil {
			return domain.Answer{}, err
		}
		if aborted {
			return domain.Answer{}, nil
		}

		if line == "" && q.Default != nil {
			return *q.Default, nil
		}
		if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(q.Options) {
			return domain.ItemAnswer(n-1, q.Options[n-1]), nil
		}
		// Exact label match as a convenience.
		for i, opt := range q.Options {
			if line == opt {
				return domain.ItemAnswer(i, opt), nil
			}
		}
		fmt.Fprintln(s.writer, "Invalid choice.")
	}
}

// readLine reads one trimmed line. The aborted flag is set on EOF, which is
// the user closing the stream rather than an IO failure.
func (s *Surface) readLine() (line string, aborted bool, err error) {
	text, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(text) == "" {
				return "", true, nil
			}
			// A final unterminated line still counts as input.
			return strings.TrimSpace(text), false, nil
		}
		return "", false, err
	}
	return strings.TrimSpace(text), false, nil
}

// prompt renders the question text through the configured renderer, falling
// back to the raw text when rendering fails.
func (s *Surface) prompt(text string) string {
	if s.renderer != nil {
		if rendered, err := s.renderer(text); err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return text
}

func (s *Surface) mark() string {
	if s.profile == termenv.Ascii {
		return "?"
	}
	return termenv.String("?").Foreground(s.profile.Color("2")).Bold().String()
}

func (s *Surface) faint(text string) string {
	if s.profile == termenv.Ascii {
		return text
	}
	return termenv.String(text).Faint().String()
}
