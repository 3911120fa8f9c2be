// Package document provides the line-addressable text buffer that the
// outline core reads and edits. A Document holds the file contents as
// lines and applies batched in-place range replacements without ever
// changing the line count.
package document

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Edit replaces the byte columns [StartCol, EndCol) of a single line
// with Text. Edits never insert or delete lines.
type Edit struct {
	Line     int
	StartCol int
	EndCol   int
	Text     string
}

// LineSource is the read side of a line buffer.
type LineSource interface {
	LineCount() int
	Line(i int) string
}

// Buffer is a line buffer that also accepts batched edits.
type Buffer interface {
	LineSource
	Replace(edits []Edit) error
}

// Document is an in-memory line buffer loaded from a file, a reader,
// or raw bytes. It remembers whether the source ended with a newline
// so a round trip reproduces the input byte for byte.
type Document struct {
	lines           []string
	trailingNewline bool
}

// Load builds a Document from raw bytes.
func Load(data []byte) *Document {
	d := &Document{}
	if len(data) == 0 {
		return d
	}

	text := string(data)
	if strings.HasSuffix(text, "\n") {
		d.trailingNewline = true
		text = strings.TrimSuffix(text, "\n")
	}
	d.lines = strings.Split(text, "\n")
	return d
}

// Read builds a Document from a reader, consuming it fully.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Load(data), nil
}

// ReadFile builds a Document from a file on disk.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Load(data), nil
}

// LineCount returns the number of lines in the buffer.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the content of a single line without its terminator.
// Returns an empty string if the line is out of bounds.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Replace applies a batch of in-place edits as a single logical
// change. All edits are validated against the current buffer before
// any of them is applied, so an invalid batch leaves the buffer
// untouched.
func (d *Document) Replace(edits []Edit) error {
	for _, e := range edits {
		if e.Line < 0 || e.Line >= len(d.lines) {
			return fmt.Errorf("edit targets line %d, buffer has %d lines", e.Line, len(d.lines))
		}
		if e.StartCol < 0 || e.StartCol > e.EndCol || e.EndCol > len(d.lines[e.Line]) {
			return fmt.Errorf("edit range [%d,%d) out of bounds on line %d", e.StartCol, e.EndCol, e.Line)
		}
	}

	for _, e := range edits {
		line := d.lines[e.Line]
		d.lines[e.Line] = line[:e.StartCol] + e.Text + line[e.EndCol:]
	}
	return nil
}

// String returns the full buffer contents.
func (d *Document) String() string {
	if len(d.lines) == 0 {
		return ""
	}
	text := strings.Join(d.lines, "\n")
	if d.trailingNewline {
		text += "\n"
	}
	return text
}

// Bytes returns the full buffer contents as bytes.
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

// WriteFile writes the buffer contents to a file.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, d.Bytes(), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
