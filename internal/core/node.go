// Package core implements the domain logic for mdlevel: parsing ATX
// headers into a hierarchy, renumbering their levels under parent/child
// constraints, and producing the minimal set of buffer edits.
package core

// Header level bounds of the ATX marker syntax.
const (
	MinLevel = 1
	MaxLevel = 6
)

// Header is one matched header line. Parent and Children are indices
// into the owning Forest's node arena; Parent is -1 for roots.
type Header struct {
	Level         int    // current nesting depth, mutated by Adjust
	OriginalLevel int    // depth at parse time, basis for deltas
	Line          int    // zero-based buffer line at parse time
	Content       string // text after the marker and its whitespace
	Parent        int
	Children      []int
}

// Forest holds the headers of one scan in document order. It is built
// fresh per invocation and discarded after the edits are applied.
type Forest struct {
	Headers []*Header
}

// Len returns the number of headers in the forest.
func (f *Forest) Len() int {
	return len(f.Headers)
}

// ParentOf returns the parent node of the header at index i, or nil
// if it is a root.
func (f *Forest) ParentOf(i int) *Header {
	p := f.Headers[i].Parent
	if p < 0 {
		return nil
	}
	return f.Headers[p]
}

// Depth returns the number of ancestors of the header at index i.
func (f *Forest) Depth(i int) int {
	depth := 0
	for p := f.Headers[i].Parent; p >= 0; p = f.Headers[p].Parent {
		depth++
	}
	return depth
}
