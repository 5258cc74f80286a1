// Package figma adapts Figma REST file documents into the design IR.
//
// The adapter owns all schema-specific knowledge: UPPERCASE node types,
// colors as 0-1 floats, absolute bounding boxes and auto-layout attributes.
// Unrecognized node types become generic placeholder nodes; a document is
// rejected only when there is nothing parseable at all.
package figma

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uic/design"
)

// Sniff reports whether the data looks like a Figma REST file response.
func Sniff(data []byte) bool {
	return bytes.Contains(data, []byte(`"DOCUMENT"`)) && bytes.Contains(data, []byte(`"document"`))
}

// Parse decodes a Figma file into a design document.
func Parse(data []byte, log *zap.Logger) (*design.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("figma")

	var file rawFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to decode figma document: %w", err)
	}
	if file.Document == nil {
		return nil, fmt.Errorf("figma document has no root node")
	}

	rootID := file.Document.ID
	if rootID == "" {
		rootID = "0:0"
		file.Document.ID = rootID
	}

	doc := design.NewDocument(file.Name, rootID)
	adaptNode(doc, file.Document, "", log)
	return doc, nil
}

func adaptNode(doc *design.Document, raw *rawNode, parentID string, log *zap.Logger) string {
	if raw == nil {
		return ""
	}
	id := raw.ID
	if id == "" {
		// The service always assigns ids, but partial exports may not.
		id = uuid.NewString()
	}

	node := &design.Node{
		ID:       id,
		Kind:     kindOf(raw.Type, log),
		Name:     raw.Name,
		ParentID: parentID,
		Opacity:  1,
		Hidden:   raw.Visible != nil && !*raw.Visible,
	}
	if raw.Opacity != nil {
		node.Opacity = clamp01(*raw.Opacity)
	}
	if box := raw.AbsoluteBoundingBox; box != nil {
		node.Geometry = design.Geometry{
			X: box.X, Y: box.Y,
			Width: box.Width, Height: box.Height,
			HasSize: box.Width > 0 || box.Height > 0,
		}
	}

	node.Paints = adaptPaints(raw.Fills, log)
	for _, s := range raw.Strokes {
		if stroke, ok := adaptStroke(s, raw.StrokeWeight); ok {
			node.Strokes = append(node.Strokes, stroke)
		}
	}
	node.Radii = adaptRadii(raw)
	node.Layout = adaptLayout(raw)

	if node.Kind == design.KindText {
		node.Runs = &design.TextRun{Text: raw.Characters}
		node.Text = adaptTypography(raw.Style)
	}
	if node.Kind == design.KindPath || node.Kind == design.KindLine {
		node.PathData = firstPath(raw)
	}

	for _, child := range raw.Childs {
		if childID := adaptNode(doc, child, id, log); childID != "" {
			node.Children = append(node.Children, childID)
		}
	}

	doc.Add(node)
	return id
}

func kindOf(t string, log *zap.Logger) design.Kind {
	switch t {
	case "DOCUMENT", "CANVAS", "FRAME", "SECTION", "COMPONENT", "COMPONENT_SET":
		return design.KindFrame
	case "GROUP":
		return design.KindGroup
	case "RECTANGLE":
		return design.KindRectangle
	case "ELLIPSE":
		return design.KindEllipse
	case "LINE":
		return design.KindLine
	case "VECTOR", "BOOLEAN_OPERATION", "STAR", "REGULAR_POLYGON":
		return design.KindPath
	case "TEXT":
		return design.KindText
	case "INSTANCE":
		return design.KindComponentInstance
	default:
		log.Debug("unrecognized node type, substituting generic", zap.String("type", t))
		return design.KindGeneric
	}
}

// adaptPaints keeps the source stacking order: the last visible layer stays
// last and wins downstream. Gradient and other unsupported paint types are
// dropped.
func adaptPaints(fills []rawPaint, log *zap.Logger) []design.Paint {
	var out []design.Paint
	for _, f := range fills {
		if f.Visible != nil && !*f.Visible {
			continue
		}
		switch f.Type {
		case "SOLID":
			if f.Color == nil {
				continue
			}
			out = append(out, design.Paint{
				Kind:  design.PaintSolid,
				Hex:   design.HexFromFloats(f.Color.R, f.Color.G, f.Color.B),
				Alpha: paintAlpha(f),
			})
		case "IMAGE":
			if f.ImageRef == "" {
				continue
			}
			out = append(out, design.Paint{
				Kind:      design.PaintImage,
				Alpha:     paintAlpha(f),
				Reference: f.ImageRef,
			})
		default:
			log.Debug("unsupported paint type, dropping layer", zap.String("type", f.Type))
		}
	}
	return out
}

func paintAlpha(p rawPaint) float64 {
	a := 1.0
	if p.Color != nil {
		a = p.Color.A
	}
	if p.Opacity != nil {
		a *= *p.Opacity
	}
	return clamp01(a)
}

func adaptStroke(s rawPaint, weight float64) (design.Stroke, bool) {
	if s.Visible != nil && !*s.Visible {
		return design.Stroke{}, false
	}
	if s.Type != "SOLID" || s.Color == nil {
		return design.Stroke{}, false
	}
	return design.Stroke{
		Hex:   design.HexFromFloats(s.Color.R, s.Color.G, s.Color.B),
		Alpha: paintAlpha(s),
		Width: weight,
	}, true
}

func adaptRadii(raw *rawNode) design.CornerRadii {
	if len(raw.RectangleCornerRadii) == 4 {
		return design.CornerRadii{
			TopLeft:     raw.RectangleCornerRadii[0],
			TopRight:    raw.RectangleCornerRadii[1],
			BottomRight: raw.RectangleCornerRadii[2],
			BottomLeft:  raw.RectangleCornerRadii[3],
		}
	}
	if raw.CornerRadius > 0 {
		return design.UniformRadii(raw.CornerRadius)
	}
	return design.CornerRadii{}
}

func adaptLayout(raw *rawNode) *design.Layout {
	if raw.LayoutMode != "HORIZONTAL" && raw.LayoutMode != "VERTICAL" {
		return nil
	}
	l := &design.Layout{Mode: design.LayoutFlow}
	main := raw.ItemSpacing
	cross := main
	if raw.CounterAxisSpacing != nil {
		cross = *raw.CounterAxisSpacing
	}
	if raw.LayoutMode == "VERTICAL" {
		l.Direction = design.DirectionColumn
		l.Gap = design.Gap{Row: main, Column: cross}
	} else {
		l.Direction = design.DirectionRow
		l.Gap = design.Gap{Row: cross, Column: main}
	}
	l.Justify = adaptJustify(raw.PrimaryAxisAlignItems)
	l.Align = adaptAlign(raw.CounterAxisAlignItems)
	l.Padding = design.Padding{
		Top:    raw.PaddingTop,
		Right:  raw.PaddingRight,
		Bottom: raw.PaddingBottom,
		Left:   raw.PaddingLeft,
	}
	return l
}

func adaptJustify(v string) design.Justify {
	switch v {
	case "CENTER":
		return design.JustifyCenter
	case "MAX":
		return design.JustifyEnd
	case "SPACE_BETWEEN":
		return design.JustifySpaceBetween
	default:
		return design.JustifyStart
	}
}

func adaptAlign(v string) design.Align {
	switch v {
	case "CENTER":
		return design.AlignCenter
	case "MAX":
		return design.AlignEnd
	default:
		return design.AlignStart
	}
}

func adaptTypography(s *rawTypeStyle) design.Typography {
	if s == nil {
		return design.Typography{}
	}
	var align string
	switch s.TextAlignHorizontal {
	case "LEFT":
		align = "left"
	case "CENTER":
		align = "center"
	case "RIGHT":
		align = "right"
	case "JUSTIFIED":
		align = "justify"
	}
	return design.Typography{
		FontSize:      s.FontSize,
		FontFamily:    s.FontFamily,
		FontWeight:    int(s.FontWeight),
		LineHeight:    s.LineHeightPx,
		LetterSpacing: s.LetterSpacing,
		Align:         align,
	}
}

func firstPath(raw *rawNode) string {
	if len(raw.FillGeometry) > 0 && raw.FillGeometry[0].Path != "" {
		return raw.FillGeometry[0].Path
	}
	if len(raw.StrokeGeometry) > 0 {
		return raw.StrokeGeometry[0].Path
	}
	return ""
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
