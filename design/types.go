package design

// Type definitions for the canonical design IR. Format adapters normalize
// tool-specific documents into these structures; nothing downstream of the
// adapters is allowed to see source schema field names.

// Kind enumerates every node variety the IR can represent. The set is closed:
// adapters map anything they do not recognize to KindGeneric instead of
// failing the document.
type Kind int

const (
	KindGeneric Kind = iota
	KindFrame
	KindGroup
	KindRectangle
	KindEllipse
	KindLine
	KindPath
	KindText
	KindComponentInstance
)

func (k Kind) String() string {
	switch k {
	case KindFrame:
		return "frame"
	case KindGroup:
		return "group"
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	case KindLine:
		return "line"
	case KindPath:
		return "path"
	case KindText:
		return "text"
	case KindComponentInstance:
		return "componentInstance"
	default:
		return "generic"
	}
}

// IsContainer reports whether nodes of this kind arrange child content.
func (k Kind) IsContainer() bool {
	switch k {
	case KindFrame, KindGroup, KindComponentInstance, KindGeneric:
		return true
	default:
		return false
	}
}

// Geometry holds node placement in document units (pixels). Coordinates are
// absolute within the document; relative offsets are computed against the
// parent during compilation. HasSize is false for groups that size to content.
type Geometry struct {
	X, Y          float64
	Width, Height float64
	HasSize       bool
}

// PaintKind discriminates fill layer varieties.
type PaintKind int

const (
	PaintSolid PaintKind = iota
	PaintImage
)

// Paint is a single fill layer. Multiple paints stack with the last entry
// being the topmost visible layer.
type Paint struct {
	Kind      PaintKind
	Hex       string  // normalized "#rrggbb", solid paints only
	Alpha     float64 // [0,1]
	Reference string  // external image reference, image paints only
}

// Stroke is a border descriptor. Only the first stroke of a node is honored
// downstream (single-border model).
type Stroke struct {
	Hex   string
	Alpha float64
	Width float64
}

// CornerRadii holds four independent corner values in top-left, top-right,
// bottom-right, bottom-left order.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// UniformRadii builds radii with the same value on all four corners.
func UniformRadii(v float64) CornerRadii {
	return CornerRadii{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v}
}

// Uniform reports whether all four corners carry the same value.
func (r CornerRadii) Uniform() bool {
	return r.TopLeft == r.TopRight && r.TopRight == r.BottomRight && r.BottomRight == r.BottomLeft
}

// IsZero reports whether no corner is rounded.
func (r CornerRadii) IsZero() bool {
	return r == CornerRadii{}
}

// LayoutMode tells whether a container arranges children automatically.
type LayoutMode int

const (
	LayoutNone LayoutMode = iota
	LayoutFlow
)

// Direction is the main axis of a flow container.
type Direction int

const (
	DirectionRow Direction = iota
	DirectionColumn
)

// Justify is main-axis distribution inside a flow container.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align is cross-axis alignment inside a flow container.
type Align int

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch
)

// Gap holds per-axis spacing between flow children.
type Gap struct {
	Row, Column float64
}

// Uniform reports whether both axes carry the same spacing.
func (g Gap) Uniform() bool { return g.Row == g.Column }

// IsZero reports whether no spacing is requested.
func (g Gap) IsZero() bool { return g.Row == 0 && g.Column == 0 }

// Padding holds inner spacing of a flow container in top, right, bottom,
// left order.
type Padding struct {
	Top, Right, Bottom, Left float64
}

func (p Padding) IsZero() bool { return p == Padding{} }

func (p Padding) Uniform() bool {
	return p.Top == p.Right && p.Right == p.Bottom && p.Bottom == p.Left
}

// Layout is present only on container nodes that arrange children
// automatically.
type Layout struct {
	Mode      LayoutMode
	Direction Direction
	Justify   Justify
	Align     Align
	Gap       Gap
	Padding   Padding
}

// Typography holds flat text attributes of a text node. Run-level overrides
// such as partial bolding are not represented; this is a documented loss of
// fidelity.
type Typography struct {
	FontSize      float64
	FontFamily    string
	FontWeight    int
	LineHeight    float64
	LetterSpacing float64
	Align         string // "left", "center", "right", "justify" or empty
}

// TextRun is one node of the rich text content tree: either a text leaf or a
// container of child runs. Adapters build these from arbitrarily nested
// source structures.
type TextRun struct {
	Text     string
	Children []TextRun
}

// Node is the IR's core entity: one shape, frame, text or group from the
// source document. Nodes are read-only once parsed; ownership belongs to the
// Document, ParentID is a navigational back-reference only.
type Node struct {
	ID       string
	Kind     Kind
	Name     string
	Geometry Geometry
	Paints   []Paint
	Strokes  []Stroke
	Radii    CornerRadii
	Opacity  float64 // [0,1], 1 when absent in the source
	Layout   *Layout // nil unless the node arranges children automatically
	Children []string
	ParentID string
	Runs     *TextRun   // text nodes only
	Text     Typography // text nodes only
	PathData string     // path nodes only, SVG path data when available
	Hidden   bool
}

// TopPaint returns the topmost visible fill layer, nil when the node has no
// fill at all (which is valid, not an error).
func (n *Node) TopPaint() *Paint {
	if len(n.Paints) == 0 {
		return nil
	}
	return &n.Paints[len(n.Paints)-1]
}

// FirstStroke returns the only honored border descriptor, nil when the node
// has no strokes.
func (n *Node) FirstStroke() *Stroke {
	if len(n.Strokes) == 0 {
		return nil
	}
	return &n.Strokes[0]
}
