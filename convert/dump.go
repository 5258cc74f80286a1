package convert

import (
	"fmt"

	"uic/utils/debug"
)

// DumpTree renders the compiled element tree as indented text for the dump
// command and troubleshooting sessions.
func DumpTree(result *Result) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "document %q, %d page(s)", result.DocumentName, len(result.Pages))
	for _, w := range result.Warnings {
		tw.Line(0, "warning: %s", w)
	}
	for _, page := range result.Pages {
		dumpElement(tw, page, 0)
	}
	if len(result.Assets) > 0 {
		tw.Line(0, "assets:")
		for _, a := range result.Assets {
			tw.Line(1, "%s %s (node %s)", a.Kind, a.Reference, a.NodeID)
		}
	}
	return tw.String()
}

func dumpElement(tw *debug.TreeWriter, el *Element, depth int) {
	tw.Line(depth, "%s %s %q", el.Role, el.NodeID, el.Name)
	if el.Text != "" {
		tw.Text(depth+1, "text", el.Text)
	}
	tw.List(depth+1, "layout", el.LayoutClasses)
	if len(el.Style) > 0 {
		props := make([]string, 0, len(el.Style))
		for _, k := range el.Style.SortedKeys() {
			props = append(props, fmt.Sprintf("%s=%s", k, el.Style[k]))
		}
		tw.List(depth+1, "style", props)
	}
	if el.AssetRef != "" {
		tw.Line(depth+1, "asset: %s", el.AssetRef)
	}
	for _, child := range el.Children {
		dumpElement(tw, child, depth+1)
	}
}
