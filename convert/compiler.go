// Package convert turns a canonical design document into a resolved UI
// element tree. One compile pass is a pure, synchronous transform: adapters
// run before it, serialization and asset resolution run after it, and
// independent documents may be compiled concurrently because nothing here
// holds shared mutable state.
package convert

import (
	"fmt"

	"go.uber.org/zap"

	"uic/design"
)

// DefaultMaxDepth bounds tree traversal so that malformed cyclic references
// terminate. Branches past the ceiling are truncated, never reported as a
// compile failure.
const DefaultMaxDepth = 50

// Options is the complete configuration surface of the compiler. No other
// global or environment-derived state affects a compile pass.
type Options struct {
	MaxDepth         int
	CanvasWidthHint  float64 // 0 means "use built-in canvas presets"
	FlattenEmptyText bool
}

// DefaultOptions returns compiler defaults.
func DefaultOptions() Options {
	return Options{
		MaxDepth:         DefaultMaxDepth,
		FlattenEmptyText: true,
	}
}

// Compiler runs compile passes with fixed options. Safe for concurrent use.
type Compiler struct {
	opts Options
	log  *zap.Logger
}

// New creates a compiler. Zero option fields are replaced with defaults.
func New(opts Options, log *zap.Logger) *Compiler {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{opts: opts, log: log.Named("compiler")}
}

// accumulator threads per-pass output through the recursion explicitly; the
// compiler never appends to captured outer-scope state.
type accumulator struct {
	assets   []AssetRef
	warnings []string
}

func (a *accumulator) warnf(format string, args ...any) {
	a.warnings = append(a.warnings, fmt.Sprintf(format, args...))
}

// Compile transforms one document into a resolved element tree plus the side
// list of external asset references. The only failure is a document with
// nothing to compile; every in-tree problem degrades locally instead.
func (c *Compiler) Compile(doc *design.Document) (*Result, error) {
	if doc == nil || len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("no parseable document")
	}

	roots, fallback := SelectRoots(doc, c.opts, c.log)
	acc := &accumulator{}
	if fallback {
		acc.warnf("no root frame candidate survived selection, emitting all top-level nodes")
	}

	var pages []*Element
	for _, n := range roots {
		if el := c.build(doc, n, nil, 0, acc); el != nil {
			pages = append(pages, el)
		}
	}

	return &Result{
		DocumentName: doc.Name,
		Pages:        pages,
		Assets:       acc.assets,
		Warnings:     acc.warnings,
	}, nil
}

// build resolves one node and its subtree. It returns nil when the node
// produces no output: hidden, suppressed empty text, a dangling reference or
// a branch truncated by the depth ceiling.
func (c *Compiler) build(doc *design.Document, n, parent *design.Node, depth int, acc *accumulator) *Element {
	if n == nil || n.Hidden {
		return nil
	}
	if depth > c.opts.MaxDepth {
		c.log.Debug("depth ceiling exceeded, truncating branch",
			zap.String("id", n.ID), zap.Int("depth", depth))
		return nil
	}

	var text string
	if n.Kind == design.KindText {
		text = design.FlattenRuns(n.Runs)
		if text == "" && c.opts.FlattenEmptyText {
			// Carries no visual meaning - drop the element entirely.
			return nil
		}
	}

	style, imagePaint := ResolveStyle(n)
	style.Merge(PositionWithin(n, parent))

	el := &Element{
		Role:   roleOf(n, imagePaint != nil),
		NodeID: n.ID,
		Name:   n.Name,
		Style:  style,
		Text:   text,
	}

	if imagePaint != nil {
		el.AssetRef = imagePaint.Reference
		acc.assets = append(acc.assets, AssetRef{
			Reference: imagePaint.Reference,
			NodeID:    n.ID,
			Kind:      "image",
		})
	}

	if el.Role == RoleVector {
		el.SVGPath = n.PathData
		if n.PathData == "" {
			// No inlineable geometry; record the node for external export.
			acc.assets = append(acc.assets, AssetRef{
				Reference: n.ID,
				NodeID:    n.ID,
				Kind:      "vector",
			})
		}
	}

	if classes, extra := FlowClasses(n.Layout); classes != nil {
		el.LayoutClasses = classes
		el.Style.Merge(extra)
	}

	if el.Role == RoleContainer || n.Kind.IsContainer() {
		for _, id := range n.Children {
			child := doc.NodeByID(id)
			if child == nil {
				// Dangling reference: skip, do not fail.
				continue
			}
			if built := c.build(doc, child, n, depth+1, acc); built != nil {
				el.Children = append(el.Children, built)
			}
		}
	}

	// Typography stays on the element style so the emitter does not need the
	// IR node again. A text node's fill paints the glyphs, not a box behind
	// them.
	if el.Role == RoleText {
		if v, ok := el.Style["background-color"]; ok {
			delete(el.Style, "background-color")
			el.Style["color"] = v
		}
		mergeTypography(el.Style, n.Text)
	}

	return el
}

// roleOf derives the element role from the node kind. An image fill turns a
// leaf into an image element; container kinds keep their role so children
// survive, with the fill becoming the container's background.
func roleOf(n *design.Node, imageFill bool) Role {
	switch n.Kind {
	case design.KindText:
		return RoleText
	case design.KindPath, design.KindLine:
		return RoleVector
	case design.KindRectangle, design.KindEllipse:
		if imageFill {
			return RoleImage
		}
		return RoleLeaf
	default:
		return RoleContainer
	}
}

func mergeTypography(style StyleMap, t design.Typography) {
	if t.FontFamily != "" {
		style["font-family"] = fmt.Sprintf("%q", t.FontFamily)
	}
	if t.FontSize > 0 {
		style["font-size"] = fmtPx(t.FontSize)
	}
	if t.FontWeight > 0 {
		style["font-weight"] = fmt.Sprintf("%d", t.FontWeight)
	}
	if t.LineHeight > 0 {
		style["line-height"] = fmtPx(t.LineHeight)
	}
	if t.LetterSpacing != 0 {
		style["letter-spacing"] = fmtPx(t.LetterSpacing)
	}
	if t.Align != "" {
		style["text-align"] = t.Align
	}
}
