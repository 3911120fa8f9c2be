package core

import (
	"testing"

	"github.com/kilupskalvis/mdlevel/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanges_OnlyChangedHeaders(t *testing.T) {
	f := parseAll("# A\n## B\n")
	f.Headers[1].Level = 3 // only B moves

	edits := Changes(f)
	require.Len(t, edits, 1)
	assert.Equal(t, document.Edit{Line: 1, StartCol: 0, EndCol: 3, Text: "### "}, edits[0])
}

func TestChanges_DescendingLineOrder(t *testing.T) {
	f := parseAll("# A\ntext\n## B\n### C\n")
	Adjust(f, Increase, 1)

	edits := Changes(f)
	require.Len(t, edits, 3)
	for i := 1; i < len(edits); i++ {
		assert.Greater(t, edits[i-1].Line, edits[i].Line)
	}
}

func TestApply_RewritesMarkers(t *testing.T) {
	d := doc("# A\n\nbody text\n## B\n### C\n")
	f := Parse(d, 0, lastLine(d))
	Adjust(f, Increase, 1)

	changed, err := Apply(d, f)
	require.NoError(t, err)
	assert.Equal(t, 3, changed)
	assert.Equal(t, "## A\n\nbody text\n### B\n#### C\n", d.String())
}

func TestApply_NothingToDo(t *testing.T) {
	d := doc("# A\n")
	f := Parse(d, 0, lastLine(d))
	Adjust(f, Decrease, 1) // already at level 1

	changed, err := Apply(d, f)
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
	assert.Equal(t, "# A\n", d.String())
}

func TestApply_PreservesExtraWhitespace(t *testing.T) {
	// Only the marker and the first separator character are touched;
	// additional whitespace stays.
	d := doc("#  double spaced\n")
	f := Parse(d, 0, lastLine(d))
	Adjust(f, Increase, 1)

	_, err := Apply(d, f)
	require.NoError(t, err)
	assert.Equal(t, "##  double spaced\n", d.String())
}

func TestApply_NormalizesTabSeparator(t *testing.T) {
	d := doc("#\tTabbed\n")
	f := Parse(d, 0, lastLine(d))
	Adjust(f, Increase, 1)

	_, err := Apply(d, f)
	require.NoError(t, err)
	assert.Equal(t, "## Tabbed\n", d.String())
}
