package util

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is a terminal, including Cygwin/MSYS ptys.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// InitColor turns colour off when asked to or when stdout is not a terminal.
func InitColor(noColor bool) {
	if noColor || !IsTTY() {
		color.NoColor = true
	}
}
