package core

// Op selects the direction of a level adjustment.
type Op int

const (
	// Decrease moves headers toward the root (fewer hashes).
	Decrease Op = iota
	// Increase moves headers toward the leaves (more hashes).
	Increase
)

// String returns the operation name used in CLI output.
func (op Op) String() string {
	if op == Increase {
		return "increase"
	}
	return "decrease"
}

// Adjust renumbers every header in the forest by magnitude in the
// direction of op, mutating Level in place. The traversal order is
// what keeps parent.Level < child.Level without a second pass:
//
//   - Decrease walks document order, parents first, so each child sees
//     its parent's already-adjusted level as a floor.
//   - Increase walks reverse document order, children first, so each
//     parent sees its children's already-adjusted levels as a ceiling.
//
// Each node starts from its OriginalLevel; only cross-node reads use
// mutated values. Levels saturate silently at 1 and 6 when the
// requested magnitude exceeds the available room.
//
// Magnitude must be positive; zero and negative values are rejected
// by Run before this is reached.
func Adjust(f *Forest, op Op, magnitude int) {
	switch op {
	case Decrease:
		for i := 0; i < len(f.Headers); i++ {
			adjustDown(f, i, magnitude)
		}
	case Increase:
		for i := len(f.Headers) - 1; i >= 0; i-- {
			adjustUp(f, i, magnitude)
		}
	}
}

func adjustDown(f *Forest, i, magnitude int) {
	h := f.Headers[i]

	candidate := h.OriginalLevel - magnitude
	if candidate < MinLevel {
		candidate = MinLevel
	}
	if parent := f.ParentOf(i); parent != nil && candidate <= parent.Level {
		candidate = parent.Level + 1
	}
	if candidate > MaxLevel {
		candidate = MaxLevel
	}
	h.Level = candidate
}

func adjustUp(f *Forest, i, magnitude int) {
	h := f.Headers[i]

	candidate := h.OriginalLevel + magnitude
	if candidate > MaxLevel {
		candidate = MaxLevel
	}
	for _, c := range h.Children {
		if child := f.Headers[c]; candidate >= child.Level {
			candidate = child.Level - 1
		}
	}
	if candidate < MinLevel {
		candidate = MinLevel
	}
	h.Level = candidate
}
