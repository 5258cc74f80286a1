package html

import (
	"strings"

	"github.com/beevik/etree"

	"uic/convert"
)

// buildMarkup renders the compiled element tree into a single HTML document.
// Every element carries its generated style class plus any flow layout
// utility classes; the classTable collects styles for the companion
// stylesheet as a side effect of the walk.
func buildMarkup(result *convert.Result, classes *classTable) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	htmlEl := doc.CreateElement("html")
	htmlEl.CreateAttr("lang", "en")

	head := htmlEl.CreateElement("head")
	meta := head.CreateElement("meta")
	meta.CreateAttr("charset", "utf-8")
	viewport := head.CreateElement("meta")
	viewport.CreateAttr("name", "viewport")
	viewport.CreateAttr("content", "width=device-width, initial-scale=1")
	title := head.CreateElement("title")
	title.SetText(result.DocumentName)
	link := head.CreateElement("link")
	link.CreateAttr("rel", "stylesheet")
	link.CreateAttr("href", stylesheetName)

	body := htmlEl.CreateElement("body")
	for _, page := range result.Pages {
		emitElement(body, page, classes)
	}

	doc.Indent(2)
	return doc
}

func emitElement(parent *etree.Element, el *convert.Element, classes *classTable) {
	cls := classes.assign(el)

	switch el.Role {
	case convert.RoleText:
		p := parent.CreateElement("p")
		p.CreateAttr("class", classAttr(cls, el))
		p.SetText(el.Text)
	case convert.RoleImage:
		img := parent.CreateElement("img")
		img.CreateAttr("class", classAttr(cls, el))
		img.CreateAttr("src", assetHref(el.AssetRef))
		img.CreateAttr("alt", el.Name)
	case convert.RoleVector:
		emitVector(parent, el, cls)
	default:
		// Containers and leaves. An empty container still renders: its size
		// and background are layout-significant.
		div := parent.CreateElement("div")
		div.CreateAttr("class", classAttr(cls, el))
		for _, child := range el.Children {
			emitElement(div, child, classes)
		}
	}
}

// classAttr joins the generated style class with the element's flow layout
// utility classes.
func classAttr(cls string, el *convert.Element) string {
	if len(el.LayoutClasses) == 0 {
		return cls
	}
	return cls + " " + strings.Join(el.LayoutClasses, " ")
}
