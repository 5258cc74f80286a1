package convert

import (
	"fmt"
	"strconv"

	"uic/design"
)

// Style resolution: a pure function from one IR node to its flat semantic
// style map. Policy decisions here are deliberate simplifications of the
// source model and are documented where they happen.

// ResolveStyle computes the style map of a node. When the node's topmost
// paint is an image fill, a placeholder style is emitted and needAsset
// reports that the caller must record an external asset reference.
func ResolveStyle(n *design.Node) (style StyleMap, needAsset *design.Paint) {
	style = make(StyleMap)

	if n.Geometry.HasSize {
		style["width"] = fmtPx(n.Geometry.Width)
		style["height"] = fmtPx(n.Geometry.Height)
	}

	// Fill: the last paint layer is the topmost and wins. Paint alpha below 1
	// is blended into the color itself instead of stacking a second opacity
	// layer - that is how paint opacity and node opacity compose visually.
	if p := n.TopPaint(); p != nil {
		switch p.Kind {
		case design.PaintSolid:
			style["background-color"] = cssColor(p.Hex, p.Alpha)
		case design.PaintImage:
			style["background-size"] = "cover"
			style["background-position"] = "center"
			needAsset = p
		}
	}

	// Border: single-border model, only the first stroke is honored. Multiple
	// simultaneous strokes are not representable in the output.
	if s := n.FirstStroke(); s != nil && s.Width > 0 {
		style["border-width"] = fmtPx(s.Width)
		style["border-style"] = "solid"
		style["border-color"] = cssColor(s.Hex, s.Alpha)
	}

	if !n.Radii.IsZero() {
		style["border-radius"] = cssRadius(n.Radii)
	}

	// Node opacity is distinct from fill-color alpha blending and stays a
	// separate property.
	if n.Opacity < 1 {
		style["opacity"] = fmtNum(n.Opacity)
	}

	return style, needAsset
}

// cssRadius collapses uniform radii to a scalar; otherwise the four-value
// shorthand in top-left, top-right, bottom-right, bottom-left order.
func cssRadius(r design.CornerRadii) string {
	if r.Uniform() {
		return fmtPx(r.TopLeft)
	}
	return fmt.Sprintf("%s %s %s %s", fmtPx(r.TopLeft), fmtPx(r.TopRight), fmtPx(r.BottomRight), fmtPx(r.BottomLeft))
}

// cssColor renders a hex color, switching to rgba() when alpha blending is
// required.
func cssColor(hex string, alpha float64) string {
	if alpha >= 1 {
		return hex
	}
	r, g, b, ok := design.HexToRGB(hex)
	if !ok {
		return hex
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, fmtNum(alpha))
}

func fmtPx(v float64) string {
	return fmtNum(v) + "px"
}

// fmtNum renders a number the shortest exact way, no trailing zeros.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
