package figma

// Raw wire structures for the Figma REST file schema. These mirror the
// service JSON verbatim and never leave this package; everything downstream
// works on the design IR.

type rawFile struct {
	Name          string   `json:"name"`
	SchemaVersion int      `json:"schemaVersion"`
	Document      *rawNode `json:"document"`
}

type rawNode struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Type    string     `json:"type"`
	Visible *bool      `json:"visible,omitempty"`
	Opacity *float64   `json:"opacity,omitempty"`
	Childs  []*rawNode `json:"children,omitempty"`

	AbsoluteBoundingBox *rawRect `json:"absoluteBoundingBox,omitempty"`

	Fills                []rawPaint `json:"fills,omitempty"`
	Strokes              []rawPaint `json:"strokes,omitempty"`
	StrokeWeight         float64    `json:"strokeWeight,omitempty"`
	CornerRadius         float64    `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64  `json:"rectangleCornerRadii,omitempty"`

	// Auto-layout
	LayoutMode            string   `json:"layoutMode,omitempty"`
	PrimaryAxisAlignItems string   `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string   `json:"counterAxisAlignItems,omitempty"`
	ItemSpacing           float64  `json:"itemSpacing,omitempty"`
	CounterAxisSpacing    *float64 `json:"counterAxisSpacing,omitempty"`
	PaddingTop            float64  `json:"paddingTop,omitempty"`
	PaddingRight          float64  `json:"paddingRight,omitempty"`
	PaddingBottom         float64  `json:"paddingBottom,omitempty"`
	PaddingLeft           float64  `json:"paddingLeft,omitempty"`

	// Text
	Characters string        `json:"characters,omitempty"`
	Style      *rawTypeStyle `json:"style,omitempty"`

	// Vector geometry (present when the file is fetched with geometry=paths)
	FillGeometry   []rawPath `json:"fillGeometry,omitempty"`
	StrokeGeometry []rawPath `json:"strokeGeometry,omitempty"`
}

type rawRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type rawPaint struct {
	Type     string    `json:"type"`
	Visible  *bool     `json:"visible,omitempty"`
	Opacity  *float64  `json:"opacity,omitempty"`
	Color    *rawColor `json:"color,omitempty"`
	ImageRef string    `json:"imageRef,omitempty"`
}

// rawColor channels are 0-1 floats in this schema.
type rawColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type rawTypeStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontSize            float64 `json:"fontSize"`
	FontWeight          float64 `json:"fontWeight"`
	LineHeightPx        float64 `json:"lineHeightPx"`
	LetterSpacing       float64 `json:"letterSpacing"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
}

type rawPath struct {
	Path string `json:"path"`
}
