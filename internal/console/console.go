// Package console prepares the process terminal for UTF-8 output.
package console

import (
	"os"

	"github.com/mattn/go-isatty"
)

// EnableUTF8 switches stdout and stderr to UTF-8 where the platform needs and
// allows it. Failures are ignored and the platform default stays in effect.
func EnableUTF8() {
	if !IsTerminal(os.Stdout) && !IsTerminal(os.Stderr) {
		return
	}
	_ = enableUTF8()
}

// IsTerminal reports whether f is an interactive terminal, including Cygwin
// and MSYS ptys.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
