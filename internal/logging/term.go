package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is backed by a terminal. It recognizes
// os.File and any wrapper exposing an Fd method.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI escapes make sense on w.
//
// NO_COLOR (https://no-color.org) always wins. CLICOLOR_FORCE turns
// color on even for pipes, which CI systems use to keep colored
// output. TERM=dumb and non-terminal writers stay plain.
func SupportsColor(w io.Writer) bool {
	return colorMode(IsTTY(w))
}

func colorMode(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
