package penpot

// Raw wire structures for the Penpot export schema: kebab-case field names,
// colors already in hex form, objects stored in a flat per-page map keyed by
// uuid with a zero-uuid "Root Frame" wrapper. These mirror the export JSON
// and never leave this package.

type rawFile struct {
	Name  string    `json:"name"`
	Pages []rawPage `json:"pages"`
}

type rawPage struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Objects map[string]rawObject `json:"objects"`
}

type rawObject struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	ParentID string   `json:"parent-id"`
	Shapes   []string `json:"shapes,omitempty"` // child object ids, in order
	Hidden   bool     `json:"hidden,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty"`

	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	Fills   []rawFill   `json:"fills,omitempty"`
	Strokes []rawStroke `json:"strokes,omitempty"`

	// Corner radii, top-left, top-right, bottom-right, bottom-left. RX is
	// the uniform shorthand older exports carry instead.
	RX float64 `json:"rx,omitempty"`
	R1 float64 `json:"r1,omitempty"`
	R2 float64 `json:"r2,omitempty"`
	R3 float64 `json:"r3,omitempty"`
	R4 float64 `json:"r4,omitempty"`

	// Flex layout
	Layout        string      `json:"layout,omitempty"` // "flex" or absent
	LayoutFlexDir string      `json:"layout-flex-dir,omitempty"`
	LayoutGap     *rawGap     `json:"layout-gap,omitempty"`
	LayoutPadding *rawPadding `json:"layout-padding,omitempty"`
	LayoutJustify string      `json:"layout-justify-content,omitempty"`
	LayoutAlign   string      `json:"layout-align-items,omitempty"`

	// Text nodes carry a nested content tree plus flat typography fields.
	Content       any     `json:"content,omitempty"`
	FontFamily    string  `json:"font-family,omitempty"`
	FontSize      float64 `json:"font-size,omitempty"`
	FontWeight    int     `json:"font-weight,omitempty"`
	LineHeight    float64 `json:"line-height,omitempty"`
	LetterSpacing float64 `json:"letter-spacing,omitempty"`
	TextAlign     string  `json:"text-align,omitempty"`

	PathData string `json:"path-data,omitempty"`
}

type rawFill struct {
	Color   string    `json:"fill-color,omitempty"`
	Opacity *float64  `json:"fill-opacity,omitempty"`
	Image   *rawImage `json:"fill-image,omitempty"`
}

type rawStroke struct {
	Color   string   `json:"stroke-color,omitempty"`
	Opacity *float64 `json:"stroke-opacity,omitempty"`
	Width   float64  `json:"stroke-width,omitempty"`
}

type rawImage struct {
	ID string `json:"id"`
}

type rawGap struct {
	RowGap    float64 `json:"row-gap"`
	ColumnGap float64 `json:"column-gap"`
}

// rawPadding sides are p1..p4 in top, right, bottom, left order.
type rawPadding struct {
	P1 float64 `json:"p1"`
	P2 float64 `json:"p2"`
	P3 float64 `json:"p3"`
	P4 float64 `json:"p4"`
}
