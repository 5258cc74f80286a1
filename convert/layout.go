package convert

import "uic/design"

// Layout classification: flow-layout tokens for containers that arrange
// children automatically, free absolute positioning for everything else.
// The owning side of positioning is always the parent - a node never
// positions itself inside a flow container.

// FlowClasses maps a flow layout onto canonical class tokens plus the
// numeric pieces (gap, padding) that do not tokenize.
func FlowClasses(l *design.Layout) ([]string, StyleMap) {
	if l == nil || l.Mode != design.LayoutFlow {
		return nil, nil
	}

	classes := []string{"flex"}
	if l.Direction == design.DirectionColumn {
		classes = append(classes, "flex-col")
	} else {
		classes = append(classes, "flex-row")
	}
	classes = append(classes, "justify-"+justifyToken(l.Justify), "items-"+alignToken(l.Align))

	style := make(StyleMap)
	if !l.Gap.IsZero() {
		if l.Gap.Uniform() {
			style["gap"] = fmtPx(l.Gap.Row)
		} else {
			style["row-gap"] = fmtPx(l.Gap.Row)
			style["column-gap"] = fmtPx(l.Gap.Column)
		}
	}
	if !l.Padding.IsZero() {
		if l.Padding.Uniform() {
			style["padding"] = fmtPx(l.Padding.Top)
		} else {
			style["padding"] = fmtPx(l.Padding.Top) + " " + fmtPx(l.Padding.Right) + " " +
				fmtPx(l.Padding.Bottom) + " " + fmtPx(l.Padding.Left)
		}
	}
	return classes, style
}

func justifyToken(j design.Justify) string {
	switch j {
	case design.JustifyEnd:
		return "end"
	case design.JustifyCenter:
		return "center"
	case design.JustifySpaceBetween:
		return "between"
	case design.JustifySpaceAround:
		return "around"
	case design.JustifySpaceEvenly:
		return "evenly"
	default:
		return "start"
	}
}

func alignToken(a design.Align) string {
	switch a {
	case design.AlignEnd:
		return "end"
	case design.AlignCenter:
		return "center"
	case design.AlignStretch:
		return "stretch"
	default:
		return "start"
	}
}

// PositionWithin decides how a node is placed inside its parent. A flow
// parent owns child positions, so the node gets no coordinates, only a
// relative anchor for its own absolutely positioned descendants; otherwise
// the node is positioned freely using its offset relative to the parent.
// Page roots anchor their absolutely positioned descendants the same way.
func PositionWithin(n, parent *design.Node) StyleMap {
	if parent == nil {
		return StyleMap{"position": "relative"}
	}
	if parent.Layout != nil && parent.Layout.Mode == design.LayoutFlow {
		return StyleMap{"position": "relative"}
	}
	return StyleMap{
		"position": "absolute",
		"left":     fmtPx(n.Geometry.X - parent.Geometry.X),
		"top":      fmtPx(n.Geometry.Y - parent.Geometry.Y),
	}
}
