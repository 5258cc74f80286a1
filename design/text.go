package design

import "strings"

// Rich text flattening. Source documents nest text runs arbitrarily deep;
// downstream only plain strings with node-level typography survive.

// FlattenRuns concatenates leaf text of a run tree in document order. A nil
// run yields the empty string.
func FlattenRuns(run *TextRun) string {
	if run == nil {
		return ""
	}
	var b strings.Builder
	flattenRun(run, &b)
	return b.String()
}

func flattenRun(run *TextRun, b *strings.Builder) {
	b.WriteString(run.Text)
	for i := range run.Children {
		flattenRun(&run.Children[i], b)
	}
}

// FlattenValue flattens a raw, schema-untyped run structure as decoded from
// JSON: a {text} leaf, a {children:[...]} container, a bare string, or a list
// of any of those. Shapes it does not recognize contribute nothing - the
// source documents are not guaranteed to be internally consistent and a
// partial result beats a failed one.
func FlattenValue(v any) string {
	var b strings.Builder
	flattenValue(v, &b)
	return b.String()
}

func flattenValue(v any, b *strings.Builder) {
	switch t := v.(type) {
	case string:
		b.WriteString(t)
	case []any:
		for _, item := range t {
			flattenValue(item, b)
		}
	case map[string]any:
		if s, ok := t["text"].(string); ok {
			b.WriteString(s)
		}
		if children, ok := t["children"]; ok {
			flattenValue(children, b)
		}
	}
}

// RunsFromValue converts a raw run structure into the typed IR tree,
// preserving document order. Unrecognized shapes are dropped; the result is
// nil when nothing textual was found.
func RunsFromValue(v any) *TextRun {
	run, ok := runFromValue(v)
	if !ok {
		return nil
	}
	return &run
}

func runFromValue(v any) (TextRun, bool) {
	switch t := v.(type) {
	case string:
		return TextRun{Text: t}, true
	case []any:
		var out TextRun
		for _, item := range t {
			if child, ok := runFromValue(item); ok {
				out.Children = append(out.Children, child)
			}
		}
		return out, len(out.Children) > 0
	case map[string]any:
		var out TextRun
		found := false
		if s, ok := t["text"].(string); ok {
			out.Text = s
			found = true
		}
		if raw, ok := t["children"].([]any); ok {
			for _, item := range raw {
				if child, ok := runFromValue(item); ok {
					out.Children = append(out.Children, child)
					found = true
				}
			}
		}
		return out, found
	}
	return TextRun{}, false
}
