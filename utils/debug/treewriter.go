// Package debug renders indented tree dumps for troubleshooting output.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// Line writes one indented formatted line.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Text writes an indented label with a quoted value, so control characters
// and surrounding whitespace survive inspection.
func (tw TreeWriter) Text(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	if value != "" {
		tw.w.WriteString(strconv.Quote(value))
	}
	tw.w.WriteByte('\n')
}

// List writes an indented label with comma-joined items, nothing when the
// list is empty.
func (tw TreeWriter) List(depth int, label string, items []string) {
	if len(items) == 0 {
		return
	}
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(strings.Join(items, ", "))
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}
