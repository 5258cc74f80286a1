// Package penpot adapts Penpot export documents into the design IR.
//
// Unlike the Figma schema this one stores objects in a flat map keyed by
// uuid, references children by id lists and keeps colors in hex form, which
// passes through normalization unchanged. The page's housekeeping wrapper is
// a frame with the all-zero uuid named "Root Frame"; the root selector
// downstream knows how to discard it.
package penpot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"uic/design"
)

// ZeroID is the synthetic root wrapper id used by this schema.
const ZeroID = "00000000-0000-0000-0000-000000000000"

const defaultFill = "#000000"

// Sniff reports whether the data looks like a Penpot export.
func Sniff(data []byte) bool {
	return bytes.Contains(data, []byte(`"objects"`)) && bytes.Contains(data, []byte(`"pages"`))
}

// Parse adapts the first page of a Penpot export into a design document.
func Parse(data []byte, log *zap.Logger) (*design.Document, error) {
	return ParsePage(data, 0, log)
}

// ParsePage adapts a single page of a Penpot export. Pages are independent
// canvases; multi-page files are compiled one page at a time.
func ParsePage(data []byte, page int, log *zap.Logger) (*design.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("penpot")

	var file rawFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to decode penpot document: %w", err)
	}
	if page < 0 || page >= len(file.Pages) {
		return nil, fmt.Errorf("penpot document has no page %d", page)
	}
	if len(file.Pages) > 1 {
		log.Debug("multi-page document, adapting single page", zap.Int("page", page), zap.Int("pages", len(file.Pages)))
	}

	raw := file.Pages[page]
	if len(raw.Objects) == 0 {
		return nil, fmt.Errorf("penpot page %q has no objects", raw.Name)
	}

	name := file.Name
	if name == "" {
		name = raw.Name
	}
	doc := design.NewDocument(name, ZeroID)
	for id, obj := range raw.Objects {
		if obj.ID == "" {
			obj.ID = id
		}
		doc.Add(adaptObject(obj, log))
	}
	return doc, nil
}

func adaptObject(obj rawObject, log *zap.Logger) *design.Node {
	node := &design.Node{
		ID:       obj.ID,
		Kind:     kindOf(obj.Type, log),
		Name:     obj.Name,
		ParentID: obj.ParentID,
		Children: obj.Shapes,
		Hidden:   obj.Hidden,
		Opacity:  1,
		PathData: obj.PathData,
	}
	if obj.Opacity != nil {
		node.Opacity = clamp01(*obj.Opacity)
	}

	node.Geometry = design.Geometry{X: obj.X, Y: obj.Y}
	if obj.Width != nil && obj.Height != nil {
		node.Geometry.Width = *obj.Width
		node.Geometry.Height = *obj.Height
		node.Geometry.HasSize = true
	}

	for _, f := range obj.Fills {
		if paint, ok := adaptFill(f); ok {
			node.Paints = append(node.Paints, paint)
		}
	}
	for _, s := range obj.Strokes {
		if stroke, ok := adaptStroke(s); ok {
			node.Strokes = append(node.Strokes, stroke)
		}
	}

	node.Radii = adaptRadii(obj)
	node.Layout = adaptLayout(obj)

	if node.Kind == design.KindText {
		node.Runs = design.RunsFromValue(obj.Content)
		node.Text = design.Typography{
			FontSize:      obj.FontSize,
			FontFamily:    obj.FontFamily,
			FontWeight:    obj.FontWeight,
			LineHeight:    obj.LineHeight,
			LetterSpacing: obj.LetterSpacing,
			Align:         obj.TextAlign,
		}
	}
	return node
}

func kindOf(t string, log *zap.Logger) design.Kind {
	switch t {
	case "frame":
		return design.KindFrame
	case "group", "bool":
		return design.KindGroup
	case "rect", "image":
		return design.KindRectangle
	case "circle":
		return design.KindEllipse
	case "line":
		return design.KindLine
	case "path", "svg-raw":
		return design.KindPath
	case "text":
		return design.KindText
	case "component", "instance":
		return design.KindComponentInstance
	default:
		log.Debug("unrecognized object type, substituting generic", zap.String("type", t))
		return design.KindGeneric
	}
}

func adaptFill(f rawFill) (design.Paint, bool) {
	if f.Image != nil && f.Image.ID != "" {
		return design.Paint{
			Kind:      design.PaintImage,
			Alpha:     fillAlpha(f.Opacity),
			Reference: f.Image.ID,
		}, true
	}
	if f.Color == "" {
		return design.Paint{}, false
	}
	hex, ok := design.NormalizeHex(f.Color)
	if !ok {
		// Malformed color, substitute the default rather than dropping the
		// whole node.
		hex = defaultFill
	}
	return design.Paint{Kind: design.PaintSolid, Hex: hex, Alpha: fillAlpha(f.Opacity)}, true
}

func adaptStroke(s rawStroke) (design.Stroke, bool) {
	if s.Color == "" || s.Width <= 0 {
		return design.Stroke{}, false
	}
	hex, ok := design.NormalizeHex(s.Color)
	if !ok {
		hex = defaultFill
	}
	return design.Stroke{Hex: hex, Alpha: fillAlpha(s.Opacity), Width: s.Width}, true
}

func fillAlpha(opacity *float64) float64 {
	if opacity == nil {
		return 1
	}
	return clamp01(*opacity)
}

func adaptRadii(obj rawObject) design.CornerRadii {
	if obj.R1 != 0 || obj.R2 != 0 || obj.R3 != 0 || obj.R4 != 0 {
		return design.CornerRadii{TopLeft: obj.R1, TopRight: obj.R2, BottomRight: obj.R3, BottomLeft: obj.R4}
	}
	if obj.RX > 0 {
		return design.UniformRadii(obj.RX)
	}
	return design.CornerRadii{}
}

func adaptLayout(obj rawObject) *design.Layout {
	if obj.Layout != "flex" {
		return nil
	}
	l := &design.Layout{Mode: design.LayoutFlow}
	switch obj.LayoutFlexDir {
	case "column", "column-reverse":
		l.Direction = design.DirectionColumn
	default:
		l.Direction = design.DirectionRow
	}
	if g := obj.LayoutGap; g != nil {
		l.Gap = design.Gap{Row: g.RowGap, Column: g.ColumnGap}
	}
	if p := obj.LayoutPadding; p != nil {
		l.Padding = design.Padding{Top: p.P1, Right: p.P2, Bottom: p.P3, Left: p.P4}
	}
	switch obj.LayoutJustify {
	case "end":
		l.Justify = design.JustifyEnd
	case "center":
		l.Justify = design.JustifyCenter
	case "space-between":
		l.Justify = design.JustifySpaceBetween
	case "space-around":
		l.Justify = design.JustifySpaceAround
	case "space-evenly":
		l.Justify = design.JustifySpaceEvenly
	default:
		l.Justify = design.JustifyStart
	}
	switch obj.LayoutAlign {
	case "end":
		l.Align = design.AlignEnd
	case "center":
		l.Align = design.AlignCenter
	case "stretch":
		l.Align = design.AlignStretch
	default:
		l.Align = design.AlignStart
	}
	return l
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
