package core

import (
	"regexp"

	"github.com/kilupskalvis/mdlevel/internal/document"
)

// headerPattern matches an ATX header: one to six hashes followed by
// at least one whitespace character. Seven or more hashes do not
// match, same as CommonMark.
var headerPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

// Parse scans the inclusive zero-based line range [from, to] and
// returns the headers found there as a forest in document order.
// Bounds outside the buffer are clamped. Lines that do not match the
// header pattern are skipped entirely.
//
// Parent resolution is a single forward pass tracking the most
// recently emitted header: a deeper header becomes its child, an
// equal-or-shallower one walks up the ancestor chain until a strictly
// shallower ancestor is found. Headers whose enclosing header lies
// outside the range come out as roots.
func Parse(src document.LineSource, from, to int) *Forest {
	f := &Forest{}

	count := src.LineCount()
	if count == 0 {
		return f
	}
	if from < 0 {
		from = 0
	}
	if from > count-1 {
		from = count - 1
	}
	if to < 0 {
		to = 0
	}
	if to > count-1 {
		to = count - 1
	}

	last := -1
	for line := from; line <= to; line++ {
		m := headerPattern.FindStringSubmatch(src.Line(line))
		if m == nil {
			continue
		}

		level := len(m[1])
		idx := len(f.Headers)
		h := &Header{
			Level:         level,
			OriginalLevel: level,
			Line:          line,
			Content:       m[2],
			Parent:        -1,
		}

		if last >= 0 {
			if level > f.Headers[last].Level {
				h.Parent = last
			} else {
				p := f.Headers[last].Parent
				for p >= 0 && f.Headers[p].Level >= level {
					p = f.Headers[p].Parent
				}
				h.Parent = p
			}
			if h.Parent >= 0 {
				parent := f.Headers[h.Parent]
				parent.Children = append(parent.Children, idx)
			}
		}

		f.Headers = append(f.Headers, h)
		last = idx
	}

	return f
}
