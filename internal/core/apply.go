package core

import (
	"strings"

	"github.com/kilupskalvis/mdlevel/internal/document"
)

// Changes returns the edits needed to rewrite every header whose
// level changed. Each edit replaces the old hash run plus the first
// separator character with the new hash run and a single space,
// touching nothing else on the line. Edits target distinct lines and
// never change the line count, so the batch is order-independent;
// they are emitted in descending line order anyway, which legacy
// single-range hosts relied on to avoid position invalidation.
func Changes(f *Forest) []document.Edit {
	var edits []document.Edit
	for i := len(f.Headers) - 1; i >= 0; i-- {
		h := f.Headers[i]
		if h.Level == h.OriginalLevel {
			continue
		}
		edits = append(edits, document.Edit{
			Line:     h.Line,
			StartCol: 0,
			EndCol:   h.OriginalLevel + 1,
			Text:     strings.Repeat("#", h.Level) + " ",
		})
	}
	return edits
}

// Apply writes the forest's pending changes to the buffer as one
// batch and returns the number of lines changed. A forest with no
// level changes writes nothing.
func Apply(buf document.Buffer, f *Forest) (int, error) {
	edits := Changes(f)
	if len(edits) == 0 {
		return 0, nil
	}
	if err := buf.Replace(edits); err != nil {
		return 0, err
	}
	return len(edits), nil
}
