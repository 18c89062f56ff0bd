package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	skelerrors "github.com/skeltool/skel/internal/errors"
)

// ErrInvalidAnswer is returned when a confirmation reply is not
// understood.
var ErrInvalidAnswer = errors.New("invalid answer")

// Prompter asks yes/no questions.
type Prompter struct {
	reader io.Reader
	writer io.Writer
}

// NewPrompter creates a Prompter using stdin and stdout.
func NewPrompter() *Prompter {
	return &Prompter{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewPrompterWithIO creates a Prompter with custom reader and writer for testing.
func NewPrompterWithIO(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: r,
		writer: w,
	}
}

// Confirm asks question and reads a y/n reply. An empty reply selects
// def. EOF with no input (e.g. Ctrl+D) returns skelerrors.ErrAborted.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	fmt.Fprintf(p.writer, "%s %s: ", question, suffix)

	input, err := bufio.NewReader(p.reader).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, errors.Wrap(err, "reading confirmation")
		}
		if strings.TrimSpace(input) == "" {
			return false, skelerrors.ErrAborted
		}
		// A final line without a newline still counts as an answer.
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidAnswer, "%q", strings.TrimSpace(input))
	}
}
