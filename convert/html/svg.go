package html

import (
	"github.com/beevik/etree"

	"uic/convert"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// emitVector renders a vector element. When the node carried path data the
// geometry is inlined as SVG; otherwise a sized placeholder block stands in
// so the layout does not collapse around the missing graphic.
func emitVector(parent *etree.Element, el *convert.Element, cls string) {
	if el.SVGPath == "" {
		div := parent.CreateElement("div")
		div.CreateAttr("class", classAttr(cls, el)+" vector-placeholder")
		div.CreateAttr("data-asset", el.NodeID)
		return
	}

	svg := parent.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNamespace)
	svg.CreateAttr("class", classAttr(cls, el))
	if vb := viewBox(el.Style); vb != "" {
		svg.CreateAttr("viewBox", vb)
	}
	path := svg.CreateElement("path")
	path.CreateAttr("d", el.SVGPath)
	if fill, ok := el.Style["background-color"]; ok {
		path.CreateAttr("fill", fill)
	}
}

// viewBox derives a viewBox from the resolved width/height, empty when the
// element is sizeless.
func viewBox(style convert.StyleMap) string {
	w, okW := style["width"]
	h, okH := style["height"]
	if !okW || !okH {
		return ""
	}
	return "0 0 " + trimPx(w) + " " + trimPx(h)
}

func trimPx(v string) string {
	if len(v) > 2 && v[len(v)-2:] == "px" {
		return v[:len(v)-2]
	}
	return v
}
