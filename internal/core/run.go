package core

import (
	"errors"

	"github.com/kilupskalvis/mdlevel/internal/document"
)

// Outcomes reported to the caller without touching the buffer.
var (
	ErrBadRange          = errors.New("start line is after end line")
	ErrZeroMagnitude     = errors.New("magnitude is zero, nothing to do")
	ErrNegativeMagnitude = errors.New("magnitude must be positive")
	ErrNoHeaders         = errors.New("no headers found in range")
)

// WholeDocument as the to bound selects everything from from to the
// last line of the buffer.
const WholeDocument = -1

// Result reports what an adjustment run did. HeadersChanged can be
// zero with headers present when every header was already at its
// constrained target level.
type Result struct {
	HeadersFound   int
	HeadersChanged int
}

// Run performs one full adjustment: validate the request, parse the
// range into a forest, renumber it, and write the changed header
// markers back as a single batch. The buffer is untouched unless at
// least one header actually changes level.
func Run(buf document.Buffer, op Op, magnitude, from, to int) (*Result, error) {
	if to == WholeDocument {
		to = buf.LineCount() - 1
		if to < 0 {
			to = 0
		}
	}

	if from > to {
		return nil, ErrBadRange
	}
	if magnitude == 0 {
		return nil, ErrZeroMagnitude
	}
	if magnitude < 0 {
		return nil, ErrNegativeMagnitude
	}

	forest := Parse(buf, from, to)
	if forest.Len() == 0 {
		return nil, ErrNoHeaders
	}

	Adjust(forest, op, magnitude)

	changed, err := Apply(buf, forest)
	if err != nil {
		return nil, err
	}

	return &Result{HeadersFound: forest.Len(), HeadersChanged: changed}, nil
}
