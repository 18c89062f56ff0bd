package cli

import (
	"io"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/skeltool/skel/internal/logging"
)

// Highlight writes source to w with syntax coloring when w supports
// color. On plain writers, and whenever highlighting fails, the bytes
// pass through untouched.
func Highlight(w io.Writer, source, lexer string) error {
	if !logging.SupportsColor(w) {
		_, err := io.WriteString(w, source)
		return err
	}

	if err := quick.Highlight(w, source, lexer, "terminal256", "monokai"); err != nil {
		_, werr := io.WriteString(w, source)
		return werr
	}
	return nil
}
