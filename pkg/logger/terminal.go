package logger

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is a terminal (or a Cygwin/MSYS pty).
// NO_COLOR turns it off regardless.
func IsTerminal(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewColor returns a color that is applied only when w is a terminal.
func NewColor(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if IsTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
