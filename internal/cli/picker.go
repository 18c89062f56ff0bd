package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"

	skelerrors "github.com/skeltool/skel/internal/errors"
	"github.com/skeltool/skel/internal/store"
)

// PickTemplate lets the user fuzzy-pick one template name from
// summaries. Dismissing the picker returns skelerrors.ErrAborted.
func PickTemplate(summaries []store.Summary) (string, error) {
	if len(summaries) == 0 {
		return "", errors.New("no templates to pick from")
	}

	idx, err := fuzzyfinder.Find(
		summaries,
		func(i int) string {
			s := summaries[i]
			if s.Description == "" {
				return s.Name
			}
			return fmt.Sprintf("%s: %s", s.Name, s.Description)
		},
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			s := summaries[i]
			return fmt.Sprintf("Name: %s\nVersion: %s\n\n%s", s.Name, s.Version, s.Description)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", skelerrors.ErrAborted
		}
		return "", errors.Wrap(err, "selecting template")
	}

	return summaries[idx].Name, nil
}
