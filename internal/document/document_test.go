package document

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines int
	}{
		{"empty", "", 0},
		{"single line no newline", "# A", 1},
		{"single line with newline", "# A\n", 1},
		{"multi line", "# A\ntext\n## B\n", 3},
		{"blank lines kept", "# A\n\n\ntext\n", 4},
		{"no trailing newline", "# A\ntext", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Load([]byte(tt.text))
			assert.Equal(t, tt.lines, d.LineCount())
			assert.Equal(t, tt.text, d.String())
			assert.Equal(t, []byte(tt.text), d.Bytes())
		})
	}
}

func TestLine_OutOfBounds(t *testing.T) {
	d := Load([]byte("# A\n"))

	assert.Equal(t, "# A", d.Line(0))
	assert.Equal(t, "", d.Line(-1))
	assert.Equal(t, "", d.Line(1))
}

func TestReplace_Batch(t *testing.T) {
	d := Load([]byte("## A\ntext\n### B\n"))

	err := d.Replace([]Edit{
		{Line: 2, StartCol: 0, EndCol: 4, Text: "#### "},
		{Line: 0, StartCol: 0, EndCol: 3, Text: "### "},
	})
	require.NoError(t, err)
	assert.Equal(t, "### A\ntext\n#### B\n", d.String())
}

func TestReplace_InvalidBatchLeavesBufferUntouched(t *testing.T) {
	d := Load([]byte("# A\n## B\n"))

	err := d.Replace([]Edit{
		{Line: 0, StartCol: 0, EndCol: 2, Text: "## "},
		{Line: 5, StartCol: 0, EndCol: 1, Text: "#"},
	})
	require.Error(t, err)
	assert.Equal(t, "# A\n## B\n", d.String())

	err = d.Replace([]Edit{{Line: 0, StartCol: 2, EndCol: 1, Text: "x"}})
	require.Error(t, err)
	assert.Equal(t, "# A\n## B\n", d.String())

	err = d.Replace([]Edit{{Line: 0, StartCol: 0, EndCol: 99, Text: "x"}})
	require.Error(t, err)
	assert.Equal(t, "# A\n## B\n", d.String())
}

func TestRead_FromReader(t *testing.T) {
	d, err := Read(strings.NewReader("# A\n## B\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.LineCount())
	assert.Equal(t, "## B", d.Line(1))
}

func TestReadFile_WriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	out := filepath.Join(dir, "out.md")

	src := Load([]byte("# Title\n\nbody\n"))
	require.NoError(t, src.WriteFile(path))

	d, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody\n", d.String())

	require.NoError(t, d.Replace([]Edit{{Line: 0, StartCol: 0, EndCol: 2, Text: "## "}}))
	require.NoError(t, d.WriteFile(out))

	back, err := ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "## Title\n\nbody\n", back.String())
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}
