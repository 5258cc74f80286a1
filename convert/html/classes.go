package html

import (
	"fmt"

	"github.com/gosimple/slug"

	"uic/convert"
)

// classTable assigns one stable stylesheet class per emitted element. Names
// derive from node names so the output stays readable; collisions get a
// numeric suffix in emission order, which keeps repeated runs identical.
type classTable struct {
	used  map[string]int
	order []classEntry
}

type classEntry struct {
	name  string
	style convert.StyleMap
}

func newClassTable() *classTable {
	return &classTable{used: make(map[string]int)}
}

// assign registers the element's style under a fresh class name and returns
// the name. Elements without any style still get a class so that the markup
// shape does not depend on styling.
func (t *classTable) assign(el *convert.Element) string {
	base := slug.Make(el.Name)
	if base == "" {
		base = el.Role.String()
	}
	t.used[base]++
	name := base
	if n := t.used[base]; n > 1 {
		name = fmt.Sprintf("%s-%d", base, n)
	}
	t.order = append(t.order, classEntry{name: name, style: styleFor(el)})
	return name
}

// styleFor completes the element style for the stylesheet. An asset reference
// on anything but an <img> element maps to the background-image property that
// the compiler's cover/center placeholder expects; the element itself is
// never mutated.
func styleFor(el *convert.Element) convert.StyleMap {
	if el.AssetRef == "" || el.Role == convert.RoleImage {
		return el.Style
	}
	style := make(convert.StyleMap, len(el.Style)+1)
	style.Merge(el.Style)
	style["background-image"] = fmt.Sprintf("url(%q)", assetHref(el.AssetRef))
	return style
}
