// Package iostreams bundles the standard streams of the loxo CLI with TTY
// detection and colored status markers.
package iostreams

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IOStreams holds the output streams and display options of one CLI run.
type IOStreams struct {
	Out    io.Writer
	ErrOut io.Writer

	terminal     bool
	colorEnabled bool
	profile      termenv.Profile
}

// New returns IOStreams wired to stdout and stderr. Color is enabled when
// stdout is a terminal and NO_COLOR is not set.
func New() *IOStreams {
	terminal := isTerminal(os.Stdout)

	return &IOStreams{
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		terminal:     terminal,
		colorEnabled: terminal && os.Getenv("NO_COLOR") == "",
		profile:      termenv.ColorProfile(),
	}
}

// Test returns IOStreams writing to in-memory buffers, with color disabled.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return &IOStreams{
		Out:     out,
		ErrOut:  errOut,
		profile: termenv.Ascii,
	}, out, errOut
}

// IsTerminal reports whether Out is connected to a terminal.
func (s *IOStreams) IsTerminal() bool {
	return s.terminal
}

func (s *IOStreams) Printf(format string, a ...any) {
	fmt.Fprintf(s.Out, format, a...)
}

func (s *IOStreams) Errorf(format string, a ...any) {
	fmt.Fprintf(s.ErrOut, format, a...)
}

// Success returns text in green.
func (s *IOStreams) Success(text string) string {
	if !s.colorEnabled {
		return text
	}
	return termenv.String(text).Foreground(s.profile.Color("2")).String()
}

// Failure returns text in red.
func (s *IOStreams) Failure(text string) string {
	if !s.colorEnabled {
		return text
	}
	return termenv.String(text).Foreground(s.profile.Color("1")).String()
}

// Muted returns faint text.
func (s *IOStreams) Muted(text string) string {
	if !s.colorEnabled {
		return text
	}
	return termenv.String(text).Faint().String()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
